package repository

import "time"

// Clock is the only time source the mutation path uses; wall clock in
// production, fixed in tests so timestamp assignment is deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func SystemClock() Clock { return systemClock{} }
