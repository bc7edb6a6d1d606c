package idgen

import "github.com/google/uuid"

// NewFunc mints a new globally unique identifier. Tests can stub it to make
// correlation ids deterministic.
var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }
