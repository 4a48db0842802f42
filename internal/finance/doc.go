// Package finance derives budget and financial-health figures from a
// user's profile and expense records. Every function here is pure: the
// same inputs always produce the same outputs, nothing touches storage,
// and nothing returns an error. Degenerate input (no income, no spending)
// yields zero-valued results that callers can render as "not enough data".
package finance
