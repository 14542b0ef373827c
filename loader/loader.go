package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
)

const (
	component    = "loader"
	unnamedIndex = "Unnamed: 0"
)

// missingValues are the raw values read as NaN
var missingValues = []string{"", "NA", "NaN", "nan", "<nil>"}

// Loader reads the trips of a city into memory. Every call reads the file again, nothing is cached.
type Loader struct {
	config Config
}

func NewLoader(config Config) *Loader {
	if len(config.TimestampLayouts) == 0 {
		config.TimestampLayouts = DefaultTimestampLayouts()
	}

	return &Loader{
		config: config,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", component, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", component, method, message)
}

// LoadData loads the trips of city and keeps the ones that match month and day.
// Month and day are ignored when they are selection.AllOption.
// The returned DataFrame has the raw columns of the file plus the derived columns of trip.
func (l *Loader) LoadData(city string, month string, day string) (dataframe.DataFrame, error) {
	filename, ok := l.config.CityFiles[city]
	if !ok {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	tripsFilepath := filepath.Join(l.config.DataDir, filename)
	records, err := readRecords(tripsFilepath)
	if err != nil {
		log.Error(l.getLogMessage("LoadData", "error reading "+tripsFilepath, err))
		return dataframe.DataFrame{}, err
	}

	df := dataframe.LoadRecords(
		records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			trip.Duration:  series.Float,
			trip.BirthYear: series.Float,
		}),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %s", ErrParsingData, tripsFilepath, df.Err)
	}

	if err := checkColumns(df); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", tripsFilepath, err)
	}

	df, err = l.addDerivedColumns(df)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", tripsFilepath, err)
	}
	loadedTrips := df.Nrow()

	df, err = filterTrips(df, month, day)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	log.Info(l.getLogMessage("LoadData", fmt.Sprintf("city: %s | loaded trips: %v | trips after filters (month: %s, day: %s): %v", city, loadedTrips, month, day, df.Nrow()), nil))
	return df, nil
}

// readRecords reads the whole csv file. The leading unnamed row-index column, when present, is dismissed.
func readRecords(tripsFilepath string) ([][]string, error) {
	tripsFile, err := os.Open(tripsFilepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrOpeningData, err)
	}
	defer tripsFile.Close()

	records, err := csv.NewReader(tripsFile).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParsingData, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrParsingData, tripsFilepath)
	}

	header := records[0]
	if len(header) > 0 && (header[0] == "" || header[0] == unnamedIndex) {
		for idx := range records {
			if len(records[idx]) > 0 {
				records[idx] = records[idx][1:]
			}
		}
	}

	return records, nil
}

func checkColumns(df dataframe.DataFrame) error {
	columns := df.Names()
	var missing []string
	for _, column := range trip.RequiredColumns() {
		if !utils.ContainsString(column, columns) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// addDerivedColumns adds month, weekday, start hour and route columns
func (l *Loader) addDerivedColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	startTimes := df.Col(trip.StartTime).Records()
	startStations := df.Col(trip.StartStation).Records()
	endStations := df.Col(trip.EndStation).Records()

	months := make([]int, len(startTimes))
	weekDays := make([]string, len(startTimes))
	startHours := make([]int, len(startTimes))
	routes := make([]string, len(startTimes))

	for idx, rawStartTime := range startTimes {
		startTime, err := l.parseStartTime(rawStartTime)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("row %v: %w", idx, err)
		}

		months[idx] = int(startTime.Month())
		weekDays[idx] = startTime.Weekday().String()
		startHours[idx] = startTime.Hour()
		routes[idx] = trip.GetRoute(startStations[idx], endStations[idx])
	}

	df = df.Mutate(series.New(months, series.Int, trip.Month)).
		Mutate(series.New(weekDays, series.String, trip.WeekDay)).
		Mutate(series.New(startHours, series.Int, trip.StartHour)).
		Mutate(series.New(routes, series.String, trip.Route))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error adding derived columns: %w", df.Err)
	}

	return df, nil
}

// parseStartTime parses a timezone-naive timestamp
func (l *Loader) parseStartTime(rawStartTime string) (time.Time, error) {
	rawStartTime = strings.TrimSpace(rawStartTime)
	for _, layout := range l.config.TimestampLayouts {
		startTime, err := time.Parse(layout, rawStartTime)
		if err == nil {
			return startTime, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, rawStartTime)
}

func filterTrips(df dataframe.DataFrame, month string, day string) (dataframe.DataFrame, error) {
	if month != selection.AllOption {
		monthIndex, ok := selection.MonthIndex(month)
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("%w: month %s", ErrInvalidFilter, month)
		}
		df = filterByColumn(df, trip.Month, monthIndex)
	}

	if day != selection.AllOption {
		dayName, ok := selection.DayName(day)
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("%w: day %s", ErrInvalidFilter, day)
		}
		df = filterByColumn(df, trip.WeekDay, dayName)
	}

	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error filtering trips: %w", df.Err)
	}
	return df, nil
}

func filterByColumn(df dataframe.DataFrame, column string, value interface{}) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}

	return df.Filter(dataframe.F{
		Colname:    column,
		Comparator: series.Eq,
		Comparando: value,
	})
}
