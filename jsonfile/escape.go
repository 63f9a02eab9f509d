package jsonfile

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
)

// unescapeStrings rewrites every string token in raw that contains an
// escape sequence so that only quotes, backslashes and control characters
// stay escaped. Everything else, non-ASCII included, is written as UTF-8.
// Tokens without a backslash are copied untouched.
func unescapeStrings(raw []byte) []byte {
	if bytes.IndexByte(raw, '\\') < 0 {
		return raw
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '"' {
			out = append(out, c)
			i++
			continue
		}

		end, escaped := scanString(raw, i)
		tok := raw[i:end]
		if escaped {
			out = appendQuoted(out, gjson.ParseBytes(tok).Str)
		} else {
			out = append(out, tok...)
		}
		i = end
	}
	return out
}

// scanString returns the index just past the string token opening at
// raw[start], and whether the token holds any escape.
func scanString(raw []byte, start int) (int, bool) {
	escaped := false
	for i := start + 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			escaped = true
			i++
		case '"':
			return i + 1, escaped
		}
	}
	return len(raw), escaped
}

// appendQuoted writes s as a JSON string, escaping quotes, backslashes and
// control characters and nothing else.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if r < 0x20 {
				dst = fmt.Appendf(dst, `\u%04x`, r)
				continue
			}
			dst = append(dst, string(r)...)
		}
	}
	return append(dst, '"')
}
