package cmd

import (
	"errors"
	"fmt"

	"github.com/rogersnm/taskcli/internal/id"
	"github.com/rogersnm/taskcli/internal/store"
	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad command lines: wrong arity, malformed ids, unknown
// statuses or commands.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

func isUsage(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case isUsage(err):
		return ExitUsage
	default:
		return ExitError
	}
}

// usageArgs wraps a cobra positional-arg validator so its failures count as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func parseID(s string) (int, error) {
	n, err := id.Parse(s)
	if err != nil {
		return 0, usageError{err}
	}
	return n, nil
}

// reportSoft prints the user-facing message for failures that leave the store
// untouched and are not fatal. It returns err unchanged for anything else.
func reportSoft(cmd *cobra.Command, id int, err error) error {
	out := cmd.OutOrStdout()
	switch {
	case errors.Is(err, store.ErrDuplicateDescription):
		fmt.Fprintln(out, "Task with this description already exists. Please add a unique task.")
		return nil
	case errors.Is(err, store.ErrTaskNotFound):
		fmt.Fprintf(out, "Task %d not found.\n", id)
		return nil
	case errors.Is(err, store.ErrEmptyDescription):
		return usageError{err}
	}
	return err
}
