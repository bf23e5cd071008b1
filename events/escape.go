package events

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// EscapeText escapes '&', '<' and '>' for use as character data.
func EscapeText(s string) []byte {
	return escape(s, func(b byte) bool {
		return b == '&' || b == '<' || b == '>'
	})
}

// EscapeAttrValue escapes '&', '<', '>', '"' and the single quote for use
// inside a quoted attribute value.
func EscapeAttrValue(s string) []byte {
	return escape(s, func(b byte) bool {
		switch b {
		case '&', '<', '>', '"', '\'':
			return true
		}
		return false
	})
}

func escape(s string, needs func(byte) bool) []byte {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !needs(b) {
			buf = append(buf, b)
			continue
		}
		switch b {
		case '&':
			buf = append(buf, "&amp;"...)
		case '<':
			buf = append(buf, "&lt;"...)
		case '>':
			buf = append(buf, "&gt;"...)
		case '"':
			buf = append(buf, "&quot;"...)
		case '\'':
			buf = append(buf, "&apos;"...)
		}
	}
	return buf
}

// Unescape expands the predefined and numeric character references in d.
func Unescape(d []byte) ([]byte, error) {
	buf := make([]byte, 0, len(d))
	for i := 0; i < len(d); i++ {
		if d[i] != '&' {
			buf = append(buf, d[i])
			continue
		}
		end := -1
		for j := i + 1; j < len(d); j++ {
			if d[j] == ';' {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated reference at offset %d", ErrEscape, i)
		}
		ref := string(d[i+1 : end])
		switch ref {
		case "amp":
			buf = append(buf, '&')
		case "lt":
			buf = append(buf, '<')
		case "gt":
			buf = append(buf, '>')
		case "quot":
			buf = append(buf, '"')
		case "apos":
			buf = append(buf, '\'')
		default:
			r, err := unescapeNumeric(ref)
			if err != nil {
				return nil, fmt.Errorf("%w: bad reference %q at offset %d", ErrEscape, ref, i)
			}
			buf = utf8.AppendRune(buf, r)
		}
		i = end
	}
	return buf, nil
}

func unescapeNumeric(ref string) (rune, error) {
	if len(ref) < 2 || ref[0] != '#' {
		return 0, ErrEscape
	}
	base := 10
	digits := ref[1:]
	if digits[0] == 'x' || digits[0] == 'X' {
		base = 16
		digits = digits[1:]
	}
	n, err := strconv.ParseUint(digits, base, 21)
	if err != nil {
		return 0, ErrEscape
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, ErrEscape
	}
	return r, nil
}
