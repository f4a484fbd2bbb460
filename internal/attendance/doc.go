// Package attendance computes attendance metrics from lecture counts.
//
// Callers pass RawInputs through Normalize (or a single-field edit through
// Apply) and hand the result to Evaluate. Neither step performs I/O or
// holds state.
package attendance
