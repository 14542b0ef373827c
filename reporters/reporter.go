package reporters

import (
	"fmt"
	"io"
	"time"

	"bikeshare/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

const (
	timeReporterName         = "time-stats"
	stationReporterName      = "station-stats"
	tripDurationReporterName = "trip-duration-stats"
	userReporterName         = "user-stats"
)

// Reporter prints one category of statistics of the filtered trips
type Reporter interface {
	GetName() string
	Report(df dataframe.DataFrame) error
}

// NewReporters returns the reporters in the order they must run:
// times of travel, stations, trip duration and users
func NewReporters(out io.Writer, asker YesNoAsker, pagerConfig PagerConfig) []Reporter {
	return []Reporter{
		NewTimeReporter(out),
		NewStationReporter(out, NewPager(pagerConfig, asker, out)),
		NewTripDurationReporter(out),
		NewUserReporter(out),
	}
}

func getLogMessage(reporter string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[reporter: %s][method: %s][status: ERROR] %s: %s", reporter, method, message, err.Error())
	}
	return fmt.Sprintf("[reporter: %s][method: %s][status: OK] %s", reporter, method, message)
}

// stage prints the heading of a reporter and keeps when it started
type stage struct {
	out       io.Writer
	startTime time.Time
}

func startStage(out io.Writer, heading string) *stage {
	fmt.Fprintf(out, "\n%s\n\n", heading)
	return &stage{
		out:       out,
		startTime: time.Now(),
	}
}

func (s *stage) finish() {
	fmt.Fprintf(s.out, "\nThis took %v seconds.\n", time.Since(s.startTime).Seconds())
	fmt.Fprintln(s.out, utils.SeparatorLine)
}

func checkNotEmpty(df dataframe.DataFrame) error {
	if df.Nrow() == 0 {
		return ErrEmptyDataset
	}
	return nil
}

func hasColumn(df dataframe.DataFrame, column string) bool {
	return utils.ContainsString(column, df.Names())
}

// getColumn returns the column or ErrMissingColumn
func getColumn(df dataframe.DataFrame, column string) (series.Series, error) {
	if !hasColumn(df, column) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	return df.Col(column), nil
}

// presentRecords returns the values of the column that are not missing
func presentRecords(column series.Series) []string {
	records := column.Records()
	missing := column.IsNaN()

	values := make([]string, 0, len(records))
	for idx := range records {
		if missing[idx] || records[idx] == "" {
			continue
		}
		values = append(values, records[idx])
	}
	return values
}

func logReport(reporter string, rows int) {
	log.Debug(getLogMessage(reporter, "Report", fmt.Sprintf("reporting %v trips", rows), nil))
}
