package comparator

import "time"

// TimeFields exposes the calendar and clock components of time.Time as
// integer fields: Year, Month, Day, Hour, Minute, Second, Nanosecond,
// YearDay, Weekday and Unix.
func TimeFields() Fields[time.Time] {
	return Fields[time.Time]{
		"Year":       IntField(time.Time.Year),
		"Month":      IntField(time.Time.Month),
		"Day":        IntField(time.Time.Day),
		"Hour":       IntField(time.Time.Hour),
		"Minute":     IntField(time.Time.Minute),
		"Second":     IntField(time.Time.Second),
		"Nanosecond": IntField(time.Time.Nanosecond),
		"YearDay":    IntField(time.Time.YearDay),
		"Weekday":    IntField(time.Time.Weekday),
		"Unix":       IntField(time.Time.Unix),
	}
}
