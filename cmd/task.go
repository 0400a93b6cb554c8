package cmd

import (
	"fmt"

	"github.com/rogersnm/taskcli/internal/markdown"
	"github.com/rogersnm/taskcli/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		t, err := st.Add(ctx, args[0])
		if err != nil {
			return reportSoft(cmd, 0, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d)\n", t.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Change a task's description",
	Args:  usageArgs(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if _, err := st.Update(ctx, id, args[1]); err != nil {
			return reportSoft(cmd, id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated successfully.\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		removed, err := st.Delete(ctx, id)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted successfully.\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d not found, nothing deleted.\n", id)
		}
		return nil
	},
}

func newStatusCmd(use, short string, status model.Status) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if _, err := st.ChangeStatus(ctx, id, status); err != nil {
				return reportSoft(cmd, id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d status changed to %s.\n", id, status)
			return nil
		},
	}
}

var (
	markInProgressCmd = newStatusCmd("mark-in-progress", "Mark a task as in progress", model.StatusInProgress)
	markDoneCmd       = newStatusCmd("mark-done", "Mark a task as done", model.StatusDone)
	markTodoCmd       = newStatusCmd("mark-todo", "Move a task back to todo", model.StatusTodo)
)

var listCmd = &cobra.Command{
	Use:       "list [status]",
	Short:     "List tasks, optionally only those with a status (todo, in-progress, done)",
	Args:      usageArgs(cobra.RangeArgs(0, 1)),
	ValidArgs: []string{string(model.StatusTodo), string(model.StatusInProgress), string(model.StatusDone)},
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter model.Status
		if len(args) == 1 {
			filter = model.Status(args[0])
			if err := model.ValidateStatus(filter); err != nil {
				return usageErrorf("list: %w", err)
			}
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		tasks, err := st.List(ctx, filter)
		if err != nil {
			return err
		}

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderTaskLines(tasks))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderTaskTable(tasks))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		t, err := st.Get(ctx, id)
		if err != nil {
			return reportSoft(cmd, id, err)
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if !pretty {
			data, err := markdown.MarshalTask(t)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), markdown.RenderTask(t))
		rendered, err := markdown.RenderMarkdown(t.Description)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("plain", false, "one line per task instead of a table")
	showCmd.Flags().Bool("pretty", false, "render with ANSI styling")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markDoneCmd)
	rootCmd.AddCommand(markTodoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
