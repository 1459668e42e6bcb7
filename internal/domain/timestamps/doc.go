// Package timestamps defines the structures and contracts for creating and
// verifying timestamp tokens asserting that data existed at a claimed time.

package timestamps
