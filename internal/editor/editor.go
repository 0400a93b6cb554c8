package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the editor argv, honouring $EDITOR then $VISUAL.
// Values such as "code --wait" are split on whitespace.
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.Fields(os.Getenv(env)); len(e) > 0 {
			return e
		}
	}
	return []string{"vi"}
}

// Open blocks until the editor exits.
func Open(ctx context.Context, path string) error {
	argv := append(Command(), path)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", argv[0], err)
	}
	return nil
}
