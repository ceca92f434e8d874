package domain

import "errors"

// ErrNotFound is returned by repositories when no record matches the query
// for the requesting user.
var ErrNotFound = errors.New("record not found")
