package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitWriter_Debug(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, true, true)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("path", "task_data.json").Msg("loaded store")
	assert.Contains(t, buf.String(), "loaded store")
	assert.Contains(t, buf.String(), "path=task_data.json")
}

func TestInitWriter_InfoSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, false, true)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
