package reporters

import (
	"fmt"
	"io"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
)

// TripDurationStats total and average trip duration, in seconds
type TripDurationStats struct {
	TotalDuration   float64
	AverageDuration float64
}

type TripDurationReporter struct {
	out io.Writer
}

func NewTripDurationReporter(out io.Writer) *TripDurationReporter {
	return &TripDurationReporter{
		out: out,
	}
}

func (dr *TripDurationReporter) GetName() string {
	return tripDurationReporterName
}

func (dr *TripDurationReporter) Report(df dataframe.DataFrame) error {
	logReport(dr.GetName(), df.Nrow())
	s := startStage(dr.out, "Calculating Trip Duration...")

	stats, err := ComputeTripDurationStats(df)
	if err != nil {
		return err
	}

	fmt.Fprintln(dr.out, "Total time of travel: ", stats.TotalDuration)
	fmt.Fprintln(dr.out, "The average travel-time: ", stats.AverageDuration)

	s.finish()
	return nil
}

func ComputeTripDurationStats(df dataframe.DataFrame) (TripDurationStats, error) {
	if err := checkNotEmpty(df); err != nil {
		return TripDurationStats{}, err
	}

	durations, err := getColumn(df, trip.Duration)
	if err != nil {
		return TripDurationStats{}, err
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range durations.Float() {
		accumulator.UpdateAccumulator(duration)
	}

	if accumulator.Counter == 0 {
		return TripDurationStats{}, fmt.Errorf("%w: column %s has no values", ErrEmptyDataset, trip.Duration)
	}

	return TripDurationStats{
		TotalDuration:   accumulator.GetTotalDuration(),
		AverageDuration: accumulator.GetAverageDuration(),
	}, nil
}
