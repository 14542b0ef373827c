package reporters

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"bikeshare/domain/business/tally"
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
)

// TimeStats the most frequent times of travel
type TimeStats struct {
	MostCommonMonth string
	MostCommonDay   string
	MostCommonHour  int
}

type TimeReporter struct {
	out io.Writer
}

func NewTimeReporter(out io.Writer) *TimeReporter {
	return &TimeReporter{
		out: out,
	}
}

func (tr *TimeReporter) GetName() string {
	return timeReporterName
}

func (tr *TimeReporter) Report(df dataframe.DataFrame) error {
	logReport(tr.GetName(), df.Nrow())
	s := startStage(tr.out, "Calculating The Most Frequent Times of Travel...")

	stats, err := ComputeTimeStats(df)
	if err != nil {
		return err
	}

	fmt.Fprintln(tr.out, "Most common month: ", stats.MostCommonMonth)
	fmt.Fprintln(tr.out, "Most common day: ", stats.MostCommonDay)
	fmt.Fprintln(tr.out, "Most common hour: ", stats.MostCommonHour)

	s.finish()
	return nil
}

// ComputeTimeStats returns the mode of the derived month, weekday and start hour columns.
// The month is returned as its capitalized name.
func ComputeTimeStats(df dataframe.DataFrame) (TimeStats, error) {
	if err := checkNotEmpty(df); err != nil {
		return TimeStats{}, err
	}

	monthMode, err := columnMode(df, trip.Month)
	if err != nil {
		return TimeStats{}, err
	}
	month, err := strconv.Atoi(monthMode)
	if err != nil || month < 1 || month > 12 {
		return TimeStats{}, fmt.Errorf("%w: month %s", ErrInvalidValue, monthMode)
	}

	weekDayMode, err := columnMode(df, trip.WeekDay)
	if err != nil {
		return TimeStats{}, err
	}

	hourMode, err := columnMode(df, trip.StartHour)
	if err != nil {
		return TimeStats{}, err
	}
	hour, err := strconv.Atoi(hourMode)
	if err != nil {
		return TimeStats{}, fmt.Errorf("%w: hour %s", ErrInvalidValue, hourMode)
	}

	return TimeStats{
		MostCommonMonth: time.Month(month).String(),
		MostCommonDay:   weekDayMode,
		MostCommonHour:  hour,
	}, nil
}

// columnMode returns the most frequent value of column, the first one seen wins a tie
func columnMode(df dataframe.DataFrame, column string) (string, error) {
	values, err := getColumn(df, column)
	if err != nil {
		return "", err
	}

	mode, ok := tally.NewTallyWithValues(presentRecords(values)).Mode()
	if !ok {
		return "", fmt.Errorf("%w: column %s has no values", ErrEmptyDataset, column)
	}
	return mode, nil
}
