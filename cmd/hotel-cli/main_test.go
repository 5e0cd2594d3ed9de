package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addTestCommand registers a command that starts telemetry with a counting
// flush and then returns runErr.
func addTestCommand(t *testing.T, name string, runErr error, flushed *int) {
	t.Helper()
	cmd := &cobra.Command{
		Use: name,
		RunE: func(cmd *cobra.Command, args []string) error {
			current.flush = func(context.Context) error {
				*flushed++
				return nil
			}
			return runErr
		},
	}
	rootCmd.AddCommand(cmd)
	t.Cleanup(func() { rootCmd.RemoveCommand(cmd) })
}

func TestExecuteFlushesTelemetryAfterFailedCommand(t *testing.T) {
	flushed := 0
	addTestCommand(t, "failing-call", errors.New("booking service unavailable"), &flushed)

	err := execute([]string{"failing-call"})

	require.EqualError(t, err, "booking service unavailable")
	assert.Equal(t, 1, flushed)
	assert.Nil(t, current.flush)
}

func TestExecuteFlushesTelemetryAfterSuccess(t *testing.T) {
	flushed := 0
	addTestCommand(t, "passing-call", nil, &flushed)

	require.NoError(t, execute([]string{"passing-call"}))
	assert.Equal(t, 1, flushed)
}

func TestTeardownRunsOnce(t *testing.T) {
	calls := 0
	current.flush = func(context.Context) error {
		calls++
		return errors.New("collector down")
	}

	teardown()
	teardown()

	assert.Equal(t, 1, calls)
}
