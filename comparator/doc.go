// Package comparator builds typed natural-order comparators.
//
// A comparator is configured once and validated eagerly: asking for a
// comparator that could never work (a struct without a field, a field of a
// disallowed type, an empty field name) fails at construction, never in the
// middle of a sort.
//
//	byName, err := comparator.Direct[string]()
//	if err != nil {
//	    return err
//	}
//
//	slices.SortStableFunc(names, byName.Compare) // "2" < "10" < "a"
//
// Composite values (structs, time.Time, ...) are ordered by one of their
// primitive fields, described through a FieldAccessor:
//
//	byMonth, err := comparator.ForField[time.Time]("Month", comparator.TimeFields())
//
// A Registry caches comparators per (type, field) pair and is safe for
// concurrent use. Comparators themselves hold no mutable state.
package comparator
