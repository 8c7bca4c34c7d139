// Package counted provides List, an ordered sequence that knows its own
// length and prints a bounded preview of its contents.
//
// A List renders as "(#<count>) [<items>]". Short lists fit on one line:
//
//	l := counted.New([]int{1, 2, 3})
//	fmt.Println(l) // (#3) [1, 2, 3]
//
// Lists that do not fit within MaxWidth are printed one element per line,
// aligned under the opening bracket. When there are more than MaxLines
// elements only the first MaxLines-1 are shown, followed by "..." and the
// last element:
//
//	(#1000) [0,
//	         1,
//	         2,
//	         3,
//	         ...
//	         999]
//
// Slicing, picking and sampling return new Lists that keep the display
// parameters of the list they were taken from.
package counted
