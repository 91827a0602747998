// Package segment splits values that mix digits and other characters into
// ordered parts suitable for natural ("number aware") ordering.
//
// A part is either a maximal run of ASCII decimal digits or a maximal run of
// everything else. Comma separated lists and whole numbers are not shredded:
//
//	segment.Split("22AA1aa")   // ["22", "AA", "1", "aa"]
//	segment.Split("1,2, 3, ")  // ["1", "2", "3"]
//	segment.Split("3.14")      // ["3.14"]
//	segment.Split("")          // []
//
// Everything in this package is pure and safe for concurrent use.
package segment
