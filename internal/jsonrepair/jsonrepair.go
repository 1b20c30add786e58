// Package jsonrepair coerces LLM output into valid JSON. Model responses are
// expected to contain a JSON object but routinely arrive wrapped in markdown
// fences, prefixed with prose, or with raw newlines inside string values.
// Parse runs an ordered chain of repair passes and stops at the first
// candidate that parses strictly.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrUnparseable = errors.New("no repair pass produced valid JSON")

// Pass ordering: strict parse first, then fence stripping, object extraction,
// control-character escaping, bare-key quoting. Each pass feeds the next, so
// later heuristics always operate on an already-narrowed candidate.
type Pass struct {
	Name  string
	Apply func(string) string
}

func Passes() []Pass {
	return []Pass{
		{Name: "strip_fences", Apply: StripFences},
		{Name: "extract_json", Apply: ExtractJSON},
		{Name: "escape_control_chars", Apply: EscapeControlChars},
		{Name: "quote_bare_keys", Apply: QuoteBareKeys},
	}
}

// Parse returns the first candidate in the repair chain that is valid JSON.
func Parse(raw string) ([]byte, error) {
	candidate := strings.TrimSpace(raw)
	if valid(candidate) {
		return []byte(candidate), nil
	}
	for _, pass := range Passes() {
		candidate = strings.TrimSpace(pass.Apply(candidate))
		if valid(candidate) {
			return []byte(candidate), nil
		}
	}
	return nil, ErrUnparseable
}

// ParseInto parses via the repair chain straight into v.
func ParseInto(raw string, v interface{}) error {
	data, err := Parse(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func valid(s string) bool {
	if s == "" {
		return false
	}
	var v interface{}
	return json.Unmarshal([]byte(s), &v) == nil
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// StripFences unwraps the first markdown code fence, if any.
func StripFences(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// ExtractJSON narrows to the outermost {...} object or [...] array,
// whichever opens first, discarding surrounding prose. Arrays must win when
// they open first: milestone extraction legitimately returns bare arrays.
func ExtractJSON(s string) string {
	objStart, objEnd := strings.Index(s, "{"), strings.LastIndex(s, "}")
	arrStart, arrEnd := strings.Index(s, "["), strings.LastIndex(s, "]")
	if arrStart >= 0 && arrEnd > arrStart && (objStart < 0 || arrStart < objStart) {
		return s[arrStart : arrEnd+1]
	}
	if objStart >= 0 && objEnd > objStart {
		return s[objStart : objEnd+1]
	}
	return s
}

// EscapeControlChars escapes literal newlines, carriage returns and tabs that
// appear inside double-quoted string values.
func EscapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
			b.WriteRune(r)
		case '"':
			inString = !inString
			b.WriteRune(r)
		case '\n':
			if inString {
				b.WriteString(`\n`)
			} else {
				b.WriteRune(r)
			}
		case '\r':
			if inString {
				b.WriteString(`\r`)
			} else {
				b.WriteRune(r)
			}
		case '\t':
			if inString {
				b.WriteString(`\t`)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	singleQuoteRe = regexp.MustCompile(`'([^'\\]*)'`)
)

// QuoteBareKeys quotes unquoted object keys and normalizes single-quoted
// strings to double quotes. Purely heuristic; it runs last for a reason.
func QuoteBareKeys(s string) string {
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	return singleQuoteRe.ReplaceAllString(s, `"$1"`)
}
