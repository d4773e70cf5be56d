package interpretrequest

import "strings"

// ExtractJSON returns the first complete JSON object or array embedded in
// text. Model responses routinely wrap the payload in markdown fences or
// surround it with prose; scanning for a balanced bracket pair handles both
// shapes without caring which one the model chose.
func ExtractJSON(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}
	length := scanBalanced(text[start:])
	if length < 0 {
		return "", false
	}
	return text[start : start+length], true
}

// scanBalanced returns the length of the balanced JSON value starting at
// s[0], or -1 if the value never closes. s[0] must be '{' or '['. Brackets
// inside string literals are ignored, including after escape sequences.
func scanBalanced(s string) int {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
