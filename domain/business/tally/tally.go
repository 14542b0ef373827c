package tally

import "sort"

// ValueCount is the amount of times Value was seen
type ValueCount struct {
	Value string
	Count int
}

// Tally counts how many times each value appears.
// + order: values in the order they were first seen. Used to break ties
// + counters: amount of times each value was seen
// + total: amount of values counted
type Tally struct {
	order    []string
	counters map[string]int
	total    int
}

func NewTally() *Tally {
	return &Tally{
		counters: make(map[string]int),
	}
}

// NewTallyWithValues returns a Tally that already counted values
func NewTallyWithValues(values []string) *Tally {
	t := NewTally()
	for _, value := range values {
		t.UpdateCounter(value)
	}
	return t
}

func (t *Tally) UpdateCounter(value string) {
	if _, seen := t.counters[value]; !seen {
		t.order = append(t.order, value)
	}
	t.counters[value] += 1
	t.total += 1
}

func (t *Tally) GetCounter(value string) int {
	return t.counters[value]
}

func (t *Tally) GetTotal() int {
	return t.total
}

// Mode returns the most frequent value. On a tie the value seen first wins.
// The boolean is false when nothing was counted.
func (t *Tally) Mode() (string, bool) {
	if t.total == 0 {
		return "", false
	}

	mode := t.order[0]
	for _, value := range t.order[1:] {
		if t.counters[value] > t.counters[mode] {
			mode = value
		}
	}
	return mode, true
}

// ValueCounts returns every value with its counter, most frequent first. Ties keep the order
// in which the values were first seen.
func (t *Tally) ValueCounts() []ValueCount {
	valueCounts := make([]ValueCount, 0, len(t.order))
	for _, value := range t.order {
		valueCounts = append(valueCounts, ValueCount{Value: value, Count: t.counters[value]})
	}

	sort.SliceStable(valueCounts, func(i, j int) bool {
		return valueCounts[i].Count > valueCounts[j].Count
	})
	return valueCounts
}
