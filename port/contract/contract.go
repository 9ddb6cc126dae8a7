// Package contract defines the role interface of reusable behavior contracts.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is meant to create a new instance of the testing subject.
// In testing suites we often focus on the behavior of an interface,
// so the contract receives a constructor instead of a concrete value,
// which lets every test case work with a fresh, isolated subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioral specification towards a supplier
// implementation. Any expectation a consumer has towards a supplied
// dependency should be defined in a contract, so different supplier
// implementations can be verified against the same expectations.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark expresses what performance aspects matter for the consumer of the role.
	Benchmark(*testing.B)
}
