package birthyearaccumulator

import "math"

// BirthYearAccumulator struct that collects the birth years of the users.
// + Counter: counts the amount of birth years collected
// + Earliest: oldest birth year seen
// + MostRecent: newest birth year seen
// + counters: amount of users born each year
// + order: years in the order they were first seen. Used to break ties
type BirthYearAccumulator struct {
	Counter    int `json:"counter"`
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	counters   map[int]int
	order      []int
}

func NewBirthYearAccumulator() *BirthYearAccumulator {
	return &BirthYearAccumulator{
		counters: make(map[int]int),
	}
}

// UpdateAccumulator adds a birth year, truncated to an integer. Missing years (NaN) are skipped.
func (ba *BirthYearAccumulator) UpdateAccumulator(birthYear float64) {
	if math.IsNaN(birthYear) {
		return
	}

	year := int(birthYear)
	if ba.Counter == 0 || year < ba.Earliest {
		ba.Earliest = year
	}
	if ba.Counter == 0 || year > ba.MostRecent {
		ba.MostRecent = year
	}

	if _, seen := ba.counters[year]; !seen {
		ba.order = append(ba.order, year)
	}
	ba.counters[year] += 1
	ba.Counter += 1
}

func (ba *BirthYearAccumulator) HasData() bool {
	return ba.Counter > 0
}

// GetMostCommon returns the most frequent birth year. On a tie the year seen first wins.
func (ba *BirthYearAccumulator) GetMostCommon() int {
	if ba.Counter == 0 {
		panic("[BirthYearAccumulator] cannot get most common year, counter is zero")
	}

	mostCommon := ba.order[0]
	for _, year := range ba.order[1:] {
		if ba.counters[year] > ba.counters[mostCommon] {
			mostCommon = year
		}
	}
	return mostCommon
}
