// Package dimtable reads quantity tables.
//
// A quantity table is a CSV file where each non-blank row names a physical
// quantity followed by seven exponent cells, one per SI base dimension, each
// formatted as "{num,den}". Rows are returned in file order; the first
// malformed row aborts reading.
package dimtable
