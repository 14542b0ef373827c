package selection

import (
	"fmt"
	"strings"
)

// AllOption disables the month or day filter
const AllOption = "all"

var (
	cities = []string{"new york city", "chicago", "washington"}
	months = []string{"january", "february", "march", "april", "may", "june", AllOption}
	days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", AllOption}
)

// Options contains the values a user can choose from
// + Cities: supported cities
// + Months: month names plus AllOption
// + Days: weekday names plus AllOption
type Options struct {
	Cities []string
	Months []string
	Days   []string
}

// DefaultOptions returns a fresh copy of the supported vocabularies, callers may not mutate the originals
func DefaultOptions() Options {
	return Options{
		Cities: Cities(),
		Months: Months(),
		Days:   Days(),
	}
}

func Cities() []string {
	return append([]string(nil), cities...)
}

func Months() []string {
	return append([]string(nil), months...)
}

func Days() []string {
	return append([]string(nil), days...)
}

// Selection is the validated filter triple for one session pass. Once built, it cannot change.
type Selection struct {
	city  string
	month string
	day   string
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		city:  city,
		month: month,
		day:   day,
	}
}

func (s Selection) GetCity() string {
	return s.city
}

func (s Selection) GetMonth() string {
	return s.month
}

func (s Selection) GetDay() string {
	return s.day
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.city, s.month, s.day)
}

// MonthIndex returns the 1-based position of month in the month list. The boolean is false
// for AllOption or an unknown month.
func MonthIndex(month string) (int, bool) {
	if month == AllOption {
		return 0, false
	}

	for idx := range months {
		if months[idx] == month {
			return idx + 1, true
		}
	}
	return 0, false
}

// DayName returns the capitalized weekday name used by the derived weekday column, e.g: monday -> Monday.
// The boolean is false for AllOption or an unknown day.
func DayName(day string) (string, bool) {
	if day == AllOption {
		return "", false
	}

	for idx := range days {
		if days[idx] == day {
			return strings.ToUpper(day[:1]) + day[1:], true
		}
	}
	return "", false
}
