package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{"", false, ModeMarkdown},
		{ModeText, false, ModeText},
		{ModeMarkdown, true, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
	}

	for _, tt := range tests {
		r, _, _ := newBuffered(tt.mode, tt.isTTY)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode=%q tty=%v", tt.mode, tt.isTTY)
	}
}

func TestNewRenderer_NonFileIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, got)

	_, err = ParseMode("html")
	require.Error(t, err)
}

func TestHeader(t *testing.T) {
	r, out, _ := newBuffered(ModeMarkdown, false)
	r.Header(2, "Nodes")
	assert.Equal(t, "## Nodes\n\n", out.String())

	r, out, _ = newBuffered(ModeJSON, false)
	r.Header(1, "Nodes")
	assert.Empty(t, out.String())

	r, out, _ = newBuffered(ModeText, false)
	r.Header(1, "Nodes")
	assert.Contains(t, out.String(), "Nodes")
	assert.NotContains(t, out.String(), "#")
}

func TestMessages_NonTTYHasNoANSI(t *testing.T) {
	r, out, errOut := newBuffered(ModeText, false)
	r.Success("built")
	r.Muted("quiet")
	r.Warning("careful")
	r.Error("broken")

	combined := out.String() + errOut.String()
	assert.NotContains(t, combined, "\x1b[")
	assert.Contains(t, out.String(), "built")
	assert.Contains(t, out.String(), "quiet")
	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "broken")
}

func TestMessages_Markdown(t *testing.T) {
	r, out, errOut := newBuffered(ModeMarkdown, false)
	r.Success("built")
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "built\n", out.String())
	assert.Equal(t, "Warning: careful\nError: broken\n", errOut.String())
}

func TestTable(t *testing.T) {
	header := []string{"Node", "Servers"}
	rows := [][]string{{"A", "1"}, {"B", "2"}}

	r, out, _ := newBuffered(ModeMarkdown, false)
	r.Table(header, rows)
	assert.Contains(t, out.String(), "| Node | Servers |")
	assert.Contains(t, out.String(), "| A | 1 |")

	r, out, _ = newBuffered(ModeText, false)
	r.Table(header, rows)
	assert.Contains(t, out.String(), "┌")
	assert.Contains(t, out.String(), "NODE")
	assert.Contains(t, out.String(), "B")
}

func TestJSON(t *testing.T) {
	r, out, _ := newBuffered(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int{"nodes": 2}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got["nodes"])
	assert.Contains(t, out.String(), "\n  \"nodes\"")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "### Sub", FormatHeader(3, "Sub"))
	assert.Equal(t, "- **Nodes**: 2", FormatKeyValue("Nodes", "2"))
	assert.Equal(t, "`Class 1`", FormatCode("Class 1"))
}
