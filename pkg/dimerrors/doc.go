// Package dimerrors provides error definitions shared by the dimensionality
// table generator.
//
// Every failure the generator can report wraps one of these sentinels, so
// callers can classify errors with [errors.Is] regardless of which stage
// produced them.
package dimerrors
