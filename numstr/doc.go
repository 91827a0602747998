// Package numstr implements the unit of natural-order comparison: a value
// that remembers its text, its numeric interpretation when the whole text is
// a number, and (lazily) the parts the text splits into.
//
// Two values whose texts are both numbers compare numerically, so "3" sorts
// before "10". Otherwise both texts are split with segment.Split and the
// parts are compared position by position: numerically when both parts are
// numbers, as text otherwise. When one part list is a prefix of the other,
// the shorter list sorts first.
//
// Text parts are ordered by a TextOrder. The default, Collated, uses the
// locale-neutral Unicode root collation, so letters compare case-insensitively
// first ("A" < "c" < "X") and lower case precedes upper case on ties
// ("ab" < "Ab"). Ordinal compares bytes.
package numstr
