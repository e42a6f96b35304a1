package domain

import (
	"fmt"
	"sort"
	"time"
)

// FrequencyOnce is the frequency of tasks that never recur.
const FrequencyOnce = "once"

// Frequency describes how often a task recurs and where its list is shown.
// Fields are ordered to minimize memory padding.
type Frequency struct {
	Name     string `toml:"-"`
	Priority int    `toml:"priority"` // Display order; lower comes first
	Days     int    `toml:"days,omitempty"`
	Months   int    `toml:"months,omitempty"`
}

// Recurs returns true if the frequency has a period.
func (f Frequency) Recurs() bool {
	return f.Days > 0 || f.Months > 0
}

// NextAfter returns the first day after one full period starting at from.
// For non-recurring frequencies it returns the zero time.
func (f Frequency) NextAfter(from time.Time) time.Time {
	if !f.Recurs() {
		return time.Time{}
	}
	return Day(from).AddDate(0, f.Months, f.Days)
}

// Elapsed returns true if a full period has passed between from and today.
func (f Frequency) Elapsed(from, today time.Time) bool {
	if !f.Recurs() {
		return false
	}
	return !Day(today).Before(f.NextAfter(from))
}

// Period returns a short human-readable period.
func (f Frequency) Period() string {
	switch {
	case f.Months > 0 && f.Days > 0:
		return fmt.Sprintf("%d months %d days", f.Months, f.Days)
	case f.Months == 1:
		return "1 month"
	case f.Months > 0:
		return fmt.Sprintf("%d months", f.Months)
	case f.Days == 1:
		return "1 day"
	case f.Days > 0:
		return fmt.Sprintf("%d days", f.Days)
	default:
		return "never"
	}
}

// Frequencies is the set of frequencies a task may use.
type Frequencies map[string]Frequency

// DefaultFrequencies returns the built-in frequencies.
func DefaultFrequencies() Frequencies {
	return Frequencies{
		FrequencyOnce: {Name: FrequencyOnce, Priority: 0},
		"daily":       {Name: "daily", Priority: 1, Days: 1},
		"weekly":      {Name: "weekly", Priority: 2, Days: 7},
		"biweekly":    {Name: "biweekly", Priority: 3, Days: 14},
		"monthly":     {Name: "monthly", Priority: 4, Months: 1},
		"yearly":      {Name: "yearly", Priority: 5, Months: 12},
	}
}

// Get returns the named frequency or ErrUnknownFrequency.
func (fs Frequencies) Get(name string) (Frequency, error) {
	f, ok := fs[name]
	if !ok {
		return Frequency{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, name)
	}
	return f, nil
}

// Priorities returns the frequency → priority map used to order frequency lists.
func (fs Frequencies) Priorities() map[string]int {
	m := make(map[string]int, len(fs))
	for name, f := range fs {
		m[name] = f.Priority
	}
	return m
}

// Sorted returns the frequencies ordered by priority, then name.
func (fs Frequencies) Sorted() []Frequency {
	out := make([]Frequency, 0, len(fs))
	for name, f := range fs {
		f.Name = name
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}
