package entity

import "errors"

// Sentinel errors shared across the catalog, ledger, accounts and
// snapshot packages. Callers distinguish recoverable failures
// (ErrNotFound, ErrDuplicateKey) from fatal ones (ErrValidation,
// ErrCorruptSnapshot) with errors.Is.

// ErrNotFound is returned when a cineplex, cinema, movie or customer
// key does not exist. The console layer surfaces a message and lets the
// user retry.
var ErrNotFound = errors.New("not found")

// ErrDuplicateKey is returned when adding an entity under a key that
// already exists (cineplex name, movie title, customer username) or
// scheduling a showtime that collides on (cinema, date, time).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrValidation is returned when loaded data violates a structural
// invariant, such as a price table whose entry count does not match the
// enum cardinality. The process must not continue with such state.
var ErrValidation = errors.New("validation failed")

// ErrCorruptSnapshot is returned when the snapshot file exists but
// cannot be decoded. There is no partial recovery.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
