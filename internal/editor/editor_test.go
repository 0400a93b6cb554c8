package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Default(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	assert.Equal(t, []string{"vi"}, Command())
}

func TestCommand_EditorWithArgs(t *testing.T) {
	t.Setenv("EDITOR", "code --wait")
	t.Setenv("VISUAL", "nano")
	assert.Equal(t, []string{"code", "--wait"}, Command())
}

func TestCommand_VisualFallback(t *testing.T) {
	t.Setenv("EDITOR", "  ")
	t.Setenv("VISUAL", "nano")
	assert.Equal(t, []string{"nano"}, Command())
}

func TestOpen_PropagatesFailure(t *testing.T) {
	t.Setenv("EDITOR", "false")
	assert.Error(t, Open(context.Background(), "/dev/null"))
}

func TestOpen_Success(t *testing.T) {
	t.Setenv("EDITOR", "true")
	assert.NoError(t, Open(context.Background(), "/dev/null"))
}
