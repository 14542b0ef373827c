package reporters

import (
	"fmt"
	"io"

	"bikeshare/domain/business/birthyearaccumulator"
	"bikeshare/domain/business/tally"
	"bikeshare/domain/entities/trip"

	"github.com/go-gota/gota/dataframe"
)

const (
	maleGender   = "Male"
	femaleGender = "Female"
)

// UserStats statistics of the users. Gender and birth year fields are only filled when the
// city data has those columns.
type UserStats struct {
	UserTypes           []tally.ValueCount
	HasGender           bool
	MaleCount           int
	FemaleCount         int
	HasBirthYear        bool
	EarliestBirthYear   int
	MostRecentBirthYear int
	MostCommonBirthYear int
}

type UserReporter struct {
	out io.Writer
}

func NewUserReporter(out io.Writer) *UserReporter {
	return &UserReporter{
		out: out,
	}
}

func (ur *UserReporter) GetName() string {
	return userReporterName
}

// Report prints the user stats. Unlike the other sections, gender and birth year are skipped
// when the city has no such columns. The elapsed time is always printed.
func (ur *UserReporter) Report(df dataframe.DataFrame) error {
	logReport(ur.GetName(), df.Nrow())
	s := startStage(ur.out, "Calculating User Stats...")

	stats, err := ComputeUserStats(df)
	if err != nil {
		return err
	}

	fmt.Fprintln(ur.out, "Count of user types: ")
	for _, userType := range stats.UserTypes {
		fmt.Fprintf(ur.out, "%s\t%v\n", userType.Value, userType.Count)
	}

	if stats.HasGender {
		fmt.Fprintln(ur.out, "\nCounts concerning client`s gender")
		fmt.Fprintln(ur.out, "Male persons: ", stats.MaleCount)
		fmt.Fprintln(ur.out, "Female persons: ", stats.FemaleCount)
	}

	if stats.HasBirthYear {
		fmt.Fprintln(ur.out, "\nEarliest year of birth: ", stats.EarliestBirthYear)
		fmt.Fprintln(ur.out, "Most recent year of birth: ", stats.MostRecentBirthYear)
		fmt.Fprintln(ur.out, "Most common year of birth: ", stats.MostCommonBirthYear)
	}

	s.finish()
	return nil
}

func ComputeUserStats(df dataframe.DataFrame) (UserStats, error) {
	if err := checkNotEmpty(df); err != nil {
		return UserStats{}, err
	}

	userTypes, err := getColumn(df, trip.UserType)
	if err != nil {
		return UserStats{}, err
	}

	stats := UserStats{
		UserTypes: tally.NewTallyWithValues(presentRecords(userTypes)).ValueCounts(),
	}

	if hasColumn(df, trip.Gender) {
		genders := tally.NewTallyWithValues(presentRecords(df.Col(trip.Gender)))
		stats.HasGender = true
		stats.MaleCount = genders.GetCounter(maleGender)
		stats.FemaleCount = genders.GetCounter(femaleGender)
	}

	if hasColumn(df, trip.BirthYear) {
		accumulator := birthyearaccumulator.NewBirthYearAccumulator()
		for _, birthYear := range df.Col(trip.BirthYear).Float() {
			accumulator.UpdateAccumulator(birthYear)
		}

		if accumulator.HasData() {
			stats.HasBirthYear = true
			stats.EarliestBirthYear = accumulator.Earliest
			stats.MostRecentBirthYear = accumulator.MostRecent
			stats.MostCommonBirthYear = accumulator.GetMostCommon()
		}
	}

	return stats, nil
}
