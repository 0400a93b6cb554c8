package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/taskcli/internal/config"
	"github.com/rogersnm/taskcli/internal/logging"
	"github.com/rogersnm/taskcli/internal/markdown"
	"github.com/rogersnm/taskcli/internal/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	dataDir   string
	storeFile string
	debug     bool
	noColor   bool
	st        store.Store
	cfg       *config.Config

	// started is set once argument validation has passed; errors before
	// that point are usage errors.
	started bool
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".task-cli")
	}
	return filepath.Join(home, ".task-cli")
}

var rootCmd = &cobra.Command{
	Use:     "task-cli",
	Short:   "Track short text tasks in a local JSON file",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		started = true

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logging.Init(debug || cfg.Debug, noColor || cfg.NoColor)
		markdown.SetColor(!(noColor || cfg.NoColor))

		path := resolveStoreFile()
		log.Debug().Str("store", path).Str("data_dir", dataDir).Msg("opening store")
		st = store.New(path, store.WithLockRetry(cfg.LockRetry))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.EnableCaseInsensitive = true

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "config directory path")
	rootCmd.PersistentFlags().StringVarP(&storeFile, "file", "f", "", "task file path (default "+store.DefaultFile+" in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "task-cli add \"Buy groceries\""},
				},
			},
			"update": {
				Examples: []mtp.Example{
					{Description: "Change a task's description", Command: "task-cli update 1 \"Buy groceries and cook dinner\""},
				},
			},
			"delete": {
				Examples: []mtp.Example{
					{Description: "Delete a task", Command: "task-cli delete 1"},
				},
			},
			"mark-in-progress": {
				Examples: []mtp.Example{
					{Description: "Start a task", Command: "task-cli mark-in-progress 1"},
				},
			},
			"mark-done": {
				Examples: []mtp.Example{
					{Description: "Finish a task", Command: "task-cli mark-done 1"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with ID, description, status and timestamps, or one line per task with --plain",
				},
				Examples: []mtp.Example{
					{Description: "List all tasks", Command: "task-cli list"},
					{Description: "List finished tasks", Command: "task-cli list done"},
					{Description: "List in the classic line format", Command: "task-cli list todo --plain"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Task metadata as YAML frontmatter followed by the description",
				},
			},
			"checkout": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Local file path where the task was checked out (e.g. .task-cli/3.md)",
				},
				Examples: []mtp.Example{
					{Description: "Checkout a task for local editing", Command: "task-cli checkout 3"},
				},
			},
			"checkin": {
				Examples: []mtp.Example{
					{Description: "Write a checked-out task back", Command: "task-cli checkin 3"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

// Execute runs the command tree and prints any error. Use ExitCode to map
// the returned error to a process status.
func Execute() error {
	started = false
	c, err := rootCmd.ExecuteContextC(context.Background())
	if err == nil {
		return nil
	}
	if !started && !isUsage(err) {
		err = usageError{err}
	}
	if c == nil {
		c = rootCmd
	}
	if isUsage(err) {
		fmt.Fprintf(c.ErrOrStderr(), "Invalid command or arguments: %v\n", err)
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
	} else {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func resolveStoreFile() string {
	if storeFile != "" {
		return storeFile
	}
	if cfg != nil && cfg.StoreFile != "" {
		return cfg.StoreFile
	}
	return store.DefaultFile
}

// commandContext bounds how long a command may wait for the store lock.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := config.DefaultLockTimeout
	if cfg != nil && cfg.LockTimeout > 0 {
		timeout = cfg.LockTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
