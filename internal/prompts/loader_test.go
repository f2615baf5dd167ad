package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	preamble, err := Get("analysis.json", "preamble")
	require.NoError(t, err)
	assert.Contains(t, preamble, "ground truth")

	_, err = Get("analysis.json", "no-such-key")
	assert.Error(t, err)

	_, err = Get("no-such-file.json", "preamble")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.NotPanics(t, func() { MustGet("analysis.json", "response_format") })
	assert.Panics(t, func() { MustGet("analysis.json", "no-such-key") })
}

func TestFormat(t *testing.T) {
	out := Format("stay within {{.Tolerance}} points", map[string]string{"Tolerance": "15"})
	assert.Equal(t, "stay within 15 points", out)

	// Unknown placeholders are left alone.
	out = Format("hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "hello {{.Name}}", out)
}

func TestResponseFormatDescribesVerdictShape(t *testing.T) {
	format := MustGet("analysis.json", "response_format")
	for _, field := range []string{"summary", "strengths", "weaknesses", "semantic", "authority", "location", "trust"} {
		assert.True(t, strings.Contains(format, field), "missing field %s", field)
	}
}
