package datastore

import "errors"

// Store-level sentinel errors. Controllers map these onto HTTP statuses;
// nothing here is retried or recovered internally.
var (
	ErrNotFound      = errors.New("record not found")
	ErrNoPreferences = errors.New("no user preferences found")
	ErrNoCandidates  = errors.New("no candidate quotes")
)
