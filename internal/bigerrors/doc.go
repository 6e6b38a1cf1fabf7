// Package bigerrors defines structured application error types, allowing
// for a clear distinction between error classes (configuration, parsing,
// division, overflow) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// CalculationError carries an underlying cause and implements Unwrap() so that
// errors.Is() and errors.As() can see through it; the other types carry no cause.
package bigerrors
