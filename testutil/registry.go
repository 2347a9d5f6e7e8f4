package testutil

import (
	"time"

	"fmpmcp"
)

// NewTestRegistry returns a Registry with a long timeout and panic recovery
// enabled, suitable for tests. Registration failures panic since they indicate
// a broken test fixture.
func NewTestRegistry(tools ...fmpmcp.Tool) *fmpmcp.Registry {
	reg := fmpmcp.NewRegistry(
		fmpmcp.WithDefaultTimeout(30*time.Second),
		fmpmcp.WithRecoverPanics(true),
	)
	for _, t := range tools {
		if err := reg.Register(t); err != nil {
			panic(err)
		}
	}
	return reg
}
