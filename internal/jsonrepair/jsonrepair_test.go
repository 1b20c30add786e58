package jsonrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrict(t *testing.T) {
	data, err := Parse(`{"a": "b"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"b"}`, string(data))
}

func TestParseFencedWithLeadingProse(t *testing.T) {
	raw := "Here is the plan you asked for.\n```json\n{\"executive_summary\": \"## Summary\"}\n```"
	var out map[string]string
	require.NoError(t, ParseInto(raw, &out))
	assert.Equal(t, "## Summary", out["executive_summary"])
}

func TestParseSurroundingProseNoFence(t *testing.T) {
	raw := `Sure! {"key": "value"} Hope that helps.`
	var out map[string]string
	require.NoError(t, ParseInto(raw, &out))
	assert.Equal(t, "value", out["key"])
}

func TestParseUnescapedNewlinesInsideStrings(t *testing.T) {
	raw := "{\"section\": \"line one\nline two\tend\"}"
	var out map[string]string
	require.NoError(t, ParseInto(raw, &out))
	assert.Equal(t, "line one\nline two\tend", out["section"])
}

func TestParseBareKeysAndSingleQuotes(t *testing.T) {
	raw := `{title: 'Launch MVP', priority: 1}`
	var out map[string]interface{}
	require.NoError(t, ParseInto(raw, &out))
	assert.Equal(t, "Launch MVP", out["title"])
	assert.Equal(t, float64(1), out["priority"])
}

func TestParseBareArray(t *testing.T) {
	raw := "The milestones are:\n[{\"title\": \"Ship\"}]"
	var out []map[string]string
	require.NoError(t, ParseInto(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Ship", out[0]["title"])
}

func TestParseHopeless(t *testing.T) {
	_, err := Parse("I could not produce a plan this time, sorry.")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestEscapeControlCharsLeavesStructuralWhitespace(t *testing.T) {
	raw := "{\n  \"a\": \"b\"\n}"
	assert.Equal(t, raw, EscapeControlChars(raw))
}
