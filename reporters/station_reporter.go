package reporters

import (
	"fmt"
	"io"

	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
)

// StationStats the most popular stations and trip
type StationStats struct {
	MostUsedStart string
	MostUsedEnd   string
	MostUsedRoute string
}

// StationReporter reports the popular stations and then lets the user browse the raw trips
type StationReporter struct {
	out   io.Writer
	pager *Pager
}

func NewStationReporter(out io.Writer, pager *Pager) *StationReporter {
	return &StationReporter{
		out:   out,
		pager: pager,
	}
}

func (sr *StationReporter) GetName() string {
	return stationReporterName
}

func (sr *StationReporter) Report(df dataframe.DataFrame) error {
	logReport(sr.GetName(), df.Nrow())
	s := startStage(sr.out, "Calculating The Most Popular Stations and Trip...")

	stats, err := ComputeStationStats(df)
	if err != nil {
		return err
	}

	fmt.Fprintln(sr.out, "Most used start: ", stats.MostUsedStart)
	fmt.Fprintln(sr.out, "Most used end: ", stats.MostUsedEnd)
	fmt.Fprintln(sr.out, "Most common used combination concerning start- and end-station: ", stats.MostUsedRoute)

	s.finish()
	return sr.pager.Browse(df)
}

func ComputeStationStats(df dataframe.DataFrame) (StationStats, error) {
	if err := checkNotEmpty(df); err != nil {
		return StationStats{}, err
	}

	mostUsedStart, err := columnMode(df, trip.StartStation)
	if err != nil {
		return StationStats{}, err
	}

	mostUsedEnd, err := columnMode(df, trip.EndStation)
	if err != nil {
		return StationStats{}, err
	}

	mostUsedRoute, err := columnMode(df, trip.Route)
	if err != nil {
		return StationStats{}, err
	}

	return StationStats{
		MostUsedStart: mostUsedStart,
		MostUsedEnd:   mostUsedEnd,
		MostUsedRoute: mostUsedRoute,
	}, nil
}
