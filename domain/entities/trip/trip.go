package trip

// Raw columns of a city trip file. Gender and BirthYear are only present for some cities.
const (
	StartTime    = "Start Time"
	EndTime      = "End Time"
	Duration     = "Trip Duration"
	StartStation = "Start Station"
	EndStation   = "End Station"
	UserType     = "User Type"
	Gender       = "Gender"
	BirthYear    = "Birth Year"
)

// Columns derived from the raw data every time a city file is loaded
// + Month: month number of StartTime, 1 to 12
// + WeekDay: weekday name of StartTime, e.g. Monday
// + StartHour: hour of StartTime, 0 to 23
// + Route: StartStation + " to " + EndStation
const (
	Month     = "month"
	WeekDay   = "week_day"
	StartHour = "start_hour"
	Route     = "start_end"
)

const routeSeparator = " to "

// RequiredColumns are the raw columns every city file must have
func RequiredColumns() []string {
	return []string{StartTime, EndTime, Duration, StartStation, EndStation, UserType}
}

// GetRoute returns the label used for the combination of start and end station
func GetRoute(startStation string, endStation string) string {
	return startStation + routeSeparator + endStation
}
