package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rogersnm/taskcli/internal/editor"
	"github.com/rogersnm/taskcli/internal/markdown"
	"github.com/rogersnm/taskcli/internal/store"
	"github.com/spf13/cobra"
)

const checkoutDir = ".task-cli"

func checkoutPath(dir string, id int) string {
	return filepath.Join(dir, strconv.Itoa(id)+".md")
}

// writeCheckout writes task id to dir/<id>.md and returns the path.
func writeCheckout(cmd *cobra.Command, id int, dir string) (string, error) {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	t, err := st.Get(ctx, id)
	if err != nil {
		return "", err
	}
	data, err := markdown.MarshalTask(t)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	path := checkoutPath(dir, id)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// applyCheckout writes the edited description and status back in one
// transaction. It reports whether anything changed.
func applyCheckout(cmd *cobra.Command, id int, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	edited, err := markdown.ParseTask(f)
	f.Close()
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if edited.ID != id {
		return false, fmt.Errorf("%s holds task %d, not %d", path, edited.ID, id)
	}
	if err := edited.Validate(); err != nil {
		return false, err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	current, err := st.Get(ctx, id)
	if err != nil {
		return false, err
	}
	var edit store.TaskEdit
	if edited.Description != current.Description {
		edit.Description = &edited.Description
	}
	if edited.Status != current.Status {
		edit.Status = &edited.Status
	}
	if edit.Description == nil && edit.Status == nil {
		return false, nil
	}
	if _, err := st.Apply(ctx, id, edit); err != nil {
		return false, err
	}
	return true, nil
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout <id>",
	Short: "Copy a task to " + checkoutDir + "/ in the current directory for local editing",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		path, err := writeCheckout(cmd, id, checkoutDir)
		if err != nil {
			return reportSoft(cmd, id, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <id>",
	Short: "Write a locally edited task back to the store and remove the local copy",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		path := checkoutPath(checkoutDir, id)
		changed, err := applyCheckout(cmd, id, path)
		if err != nil {
			return reportSoft(cmd, id, err)
		}
		os.Remove(path)
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Checked in task %d\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No changes to task %d\n", id)
		}
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task in $EDITOR",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		dir, err := os.MkdirTemp("", "task-cli-edit-")
		if err != nil {
			return fmt.Errorf("creating edit dir: %w", err)
		}
		defer os.RemoveAll(dir)

		path, err := writeCheckout(cmd, id, dir)
		if err != nil {
			return reportSoft(cmd, id, err)
		}
		if err := editor.Open(cmd.Context(), path); err != nil {
			return err
		}
		changed, err := applyCheckout(cmd, id, path)
		if err != nil {
			return reportSoft(cmd, id, err)
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No changes to task %d\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(editCmd)
}
