package reporters

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"bikeshare/domain/business/tally"
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChicagoTrips returns 10 trips with the derived columns already set
func newChicagoTrips() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{10, 20, 30, 10, 10, 15, 25, 10, 5, 10}, series.Float, trip.Duration),
		series.New([]string{"Canal St", "Clark St", "Canal St", "Wells St", "Clark St", "Canal St", "Clark St", "Wells St", "Canal St", "Clark St"}, series.String, trip.StartStation),
		series.New([]string{"Clark St", "Canal St", "Wells St", "Canal St", "Wells St", "Clark St", "Canal St", "Canal St", "Clark St", "Wells St"}, series.String, trip.EndStation),
		series.New([]string{"Subscriber", "Customer", "Subscriber", "Subscriber", "Customer", "Subscriber", "Subscriber", "Dependent", "Customer", "Subscriber"}, series.String, trip.UserType),
		series.New([]string{"Male", "Male", "Female", "Other", "Male", "Female", "Male", "NaN", "Female", "Male"}, series.String, trip.Gender),
		series.New([]float64{1985, 1990, 1985, 2000, math.NaN(), 1972, 1990, 1985, 2001, 1999}, series.Float, trip.BirthYear),
		series.New([]int{3, 3, 6, 6, 6, 1, 6, 3, 2, 6}, series.Int, trip.Month),
		series.New([]string{"Monday", "Tuesday", "Monday", "Friday", "Tuesday", "Monday", "Sunday", "Friday", "Monday", "Tuesday"}, series.String, trip.WeekDay),
		series.New([]int{8, 17, 8, 9, 17, 17, 8, 12, 17, 23}, series.Int, trip.StartHour),
		series.New([]string{"Canal St to Clark St", "Clark St to Canal St", "Canal St to Wells St", "Wells St to Canal St", "Clark St to Wells St", "Canal St to Clark St", "Clark St to Canal St", "Wells St to Canal St", "Canal St to Clark St", "Clark St to Wells St"}, series.String, trip.Route),
	)
}

func newWashingtonTrips() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{100, 300}, series.Float, trip.Duration),
		series.New([]string{"Union Station", "Union Station"}, series.String, trip.StartStation),
		series.New([]string{"15th & P St NW", "Union Station"}, series.String, trip.EndStation),
		series.New([]string{"Customer", "Subscriber"}, series.String, trip.UserType),
		series.New([]int{2, 2}, series.Int, trip.Month),
		series.New([]string{"Tuesday", "Wednesday"}, series.String, trip.WeekDay),
		series.New([]int{7, 18}, series.Int, trip.StartHour),
		series.New([]string{"Union Station to 15th & P St NW", "Union Station to Union Station"}, series.String, trip.Route),
	)
}

func TestComputeTimeStats(t *testing.T) {
	stats, err := ComputeTimeStats(newChicagoTrips())
	require.NoError(t, err)

	assert.Equal(t, "June", stats.MostCommonMonth)
	assert.Equal(t, "Monday", stats.MostCommonDay)
	assert.Equal(t, 17, stats.MostCommonHour)
}

func TestComputeTimeStatsTieGoesToFirstSeen(t *testing.T) {
	stats, err := ComputeTimeStats(newWashingtonTrips())
	require.NoError(t, err)

	assert.Equal(t, "February", stats.MostCommonMonth)
	assert.Equal(t, "Tuesday", stats.MostCommonDay)
	assert.Equal(t, 7, stats.MostCommonHour)
}

func TestComputeStationStats(t *testing.T) {
	stats, err := ComputeStationStats(newChicagoTrips())
	require.NoError(t, err)

	assert.Equal(t, "Canal St", stats.MostUsedStart)
	assert.Equal(t, "Canal St", stats.MostUsedEnd)
	assert.Equal(t, "Canal St to Clark St", stats.MostUsedRoute)
}

func TestComputeTripDurationStats(t *testing.T) {
	stats, err := ComputeTripDurationStats(newChicagoTrips())
	require.NoError(t, err)

	assert.Equal(t, 145.0, stats.TotalDuration)
	assert.Equal(t, 14.5, stats.AverageDuration)
}

func TestComputeUserStats(t *testing.T) {
	df := newChicagoTrips()
	stats, err := ComputeUserStats(df)
	require.NoError(t, err)

	assert.Equal(t, []tally.ValueCount{
		{Value: "Subscriber", Count: 6},
		{Value: "Customer", Count: 3},
		{Value: "Dependent", Count: 1},
	}, stats.UserTypes)

	total := 0
	for _, userType := range stats.UserTypes {
		total += userType.Count
	}
	assert.Equal(t, df.Nrow(), total)

	assert.True(t, stats.HasGender)
	assert.Equal(t, 5, stats.MaleCount)
	assert.Equal(t, 3, stats.FemaleCount)

	assert.True(t, stats.HasBirthYear)
	assert.Equal(t, 1972, stats.EarliestBirthYear)
	assert.Equal(t, 2001, stats.MostRecentBirthYear)
	assert.Equal(t, 1985, stats.MostCommonBirthYear)
}

func TestComputeUserStatsGenderOutsideBinaryIsExcluded(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Subscriber", "Subscriber", "Customer", "Subscriber"}, series.String, trip.UserType),
		series.New([]string{"Male", "Male", "Female", "Other"}, series.String, trip.Gender),
		series.New([]float64{1985, 1990, 1985, 2000}, series.Float, trip.BirthYear),
	)

	stats, err := ComputeUserStats(df)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.MaleCount)
	assert.Equal(t, 1, stats.FemaleCount)
	assert.Equal(t, 1985, stats.EarliestBirthYear)
	assert.Equal(t, 2000, stats.MostRecentBirthYear)
	assert.Equal(t, 1985, stats.MostCommonBirthYear)
}

func TestComputeUserStatsSkipsMissingUserTypes(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Subscriber", "", "Customer", "Subscriber"}, series.String, trip.UserType),
	)

	stats, err := ComputeUserStats(df)
	require.NoError(t, err)

	assert.Equal(t, []tally.ValueCount{
		{Value: "Subscriber", Count: 2},
		{Value: "Customer", Count: 1},
	}, stats.UserTypes)

	total := 0
	for _, userType := range stats.UserTypes {
		total += userType.Count
	}
	assert.Equal(t, df.Nrow()-1, total)
}

func TestComputeUserStatsWithoutDemographics(t *testing.T) {
	stats, err := ComputeUserStats(newWashingtonTrips())
	require.NoError(t, err)

	assert.False(t, stats.HasGender)
	assert.False(t, stats.HasBirthYear)
	assert.Len(t, stats.UserTypes, 2)
}

func TestComputeStatsEmptyDataset(t *testing.T) {
	empty := newChicagoTrips().Filter(dataframe.F{Colname: trip.Month, Comparator: series.Eq, Comparando: 12})
	require.Equal(t, 0, empty.Nrow())

	_, err := ComputeTimeStats(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ComputeStationStats(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ComputeTripDurationStats(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = ComputeUserStats(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	err = NewTimeReporter(&bytes.Buffer{}).Report(empty)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestComputeStatsMissingColumn(t *testing.T) {
	df := newWashingtonTrips().Drop(trip.Duration)

	_, err := ComputeTripDurationStats(df)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTripDurationReporterOutput(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewTripDurationReporter(out).Report(newChicagoTrips()))

	output := out.String()
	assert.Contains(t, output, "Calculating Trip Duration...")
	assert.Contains(t, output, "Total time of travel:  145\n")
	assert.Contains(t, output, "The average travel-time:  14.5\n")
	assert.Contains(t, output, "This took ")
	assert.True(t, strings.HasSuffix(output, strings.Repeat("-", 40)+"\n"))
}

func TestTimeReporterOutput(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewTimeReporter(out).Report(newChicagoTrips()))

	output := out.String()
	assert.Contains(t, output, "Most common month:  June\n")
	assert.Contains(t, output, "Most common day:  Monday\n")
	assert.Contains(t, output, "Most common hour:  17\n")
}

func TestUserReporterAlwaysReportsElapsedTime(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewUserReporter(out).Report(newWashingtonTrips()))

	output := out.String()
	assert.Contains(t, output, "Customer\t1\n")
	assert.NotContains(t, output, "Male persons")
	assert.NotContains(t, output, "year of birth")
	assert.Contains(t, output, "This took ")

	out.Reset()
	require.NoError(t, NewUserReporter(out).Report(newChicagoTrips()))
	output = out.String()
	assert.Contains(t, output, "Subscriber\t6\n")
	assert.Contains(t, output, "Male persons:  5\n")
	assert.Contains(t, output, "Female persons:  3\n")
	assert.Contains(t, output, "Earliest year of birth:  1972\n")
	assert.Contains(t, output, "Most common year of birth:  1985\n")
	assert.Contains(t, output, "This took ")
}

func TestNewReportersOrder(t *testing.T) {
	reporters := NewReporters(&bytes.Buffer{}, &scriptedAsker{}, DefaultPagerConfig())

	var names []string
	for _, reporter := range reporters {
		names = append(names, reporter.GetName())
	}
	assert.Equal(t, []string{timeReporterName, stationReporterName, tripDurationReporterName, userReporterName}, names)
}
