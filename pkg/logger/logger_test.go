package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("invoice_id", "INV-1").Msg("invoice created")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "invoice created", output["message"])
	assert.Equal(t, "INV-1", output["invoice_id"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, Service, output["service"])
	assert.Contains(t, output, "time")
}

func TestComponent_TagsChild(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "settlement")

	log.Info().Msg("settled")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "settlement", output["component"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level      string
		debugShown bool
		infoShown  bool
		errorShown bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"WARN", false, false, true},
		{"error", false, false, true},
		{"off", false, false, false},
		{"bogus", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var debugBuf, infoBuf, errBuf bytes.Buffer
			debugLog := NewWithWriter(tt.level, &debugBuf)
			debugLog.Debug().Msg("d")
			infoLog := NewWithWriter(tt.level, &infoBuf)
			infoLog.Info().Msg("i")
			errLog := NewWithWriter(tt.level, &errBuf)
			errLog.Error().Msg("e")

			assert.Equal(t, tt.debugShown, debugBuf.Len() > 0)
			assert.Equal(t, tt.infoShown, infoBuf.Len() > 0)
			assert.Equal(t, tt.errorShown, errBuf.Len() > 0)
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
