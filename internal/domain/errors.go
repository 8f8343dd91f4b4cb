package domain

import "errors"

// ErrAlreadyExists is returned by repositories when an insert collides with
// an existing row's primary key or unique constraint.
var ErrAlreadyExists = errors.New("already exists")
