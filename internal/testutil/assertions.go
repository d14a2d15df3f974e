package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertInstances checks the instance report within a HarnessResult for the
// instance count of a component.
func AssertInstances(t *testing.T, result *HarnessResult, name string, count int) {
	t.Helper()

	line := fmt.Sprintf("%s: %d instance(s)\n", name, count)
	require.Contains(t, result.Output, line,
		"expected %d instance(s) of '%s' in the report", count, name,
	)
}
