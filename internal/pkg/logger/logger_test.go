package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf).With().Str("app", "campusadmin").Logger()

	session := Component(parent, "session")
	session.Info().Msg("User logged in successfully")

	out := buf.String()
	require.Contains(t, out, `"component":"session"`)
	require.Contains(t, out, `"app":"campusadmin"`)
}

func TestParseConfig(t *testing.T) {
	cfg := ParseConfig(" DEBUG ", "text")
	require.Equal(t, DebugLevel, cfg.Level)
	require.True(t, cfg.Pretty)

	require.False(t, ParseConfig("info", "json").Pretty)
}
