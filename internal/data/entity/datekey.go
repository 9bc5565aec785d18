package entity

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DateKey is a calendar date in "2006-01-02" form. Schedule maps and the
// holiday table are keyed by it so keys stay comparable and gob-stable.
type DateKey string

// TimeKey is a wall-clock time in "15:04" form.
type TimeKey string

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateLayout))
}

func NewTimeKey(t time.Time) TimeKey {
	return TimeKey(t.Format(timeLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return NewDateKey(t), nil
}

func ParseTimeKey(s string) (TimeKey, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", err
	}
	return NewTimeKey(t), nil
}

// Time returns the date at midnight local time. A malformed key yields
// the zero time; keys built through NewDateKey or ParseDateKey never are.
func (d DateKey) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

func (d DateKey) IsWeekend() bool {
	wd := d.Time().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
