package utils

import "strings"

// ExtractJSONBlock scans raw model output for the first syntactically
// balanced JSON object or array and returns it. Markdown code fences,
// leading prose and trailing explanations are tolerated; braces inside
// string values are handled by tracking string and escape state instead
// of regexp matching. When several JSON-like blocks are present the first
// balanced one wins.
func ExtractJSONBlock(raw string) (string, bool) {
	raw = stripCodeFences(raw)

	for offset := 0; offset < len(raw); {
		start, open, close := nextCandidate(raw, offset)
		if start == -1 {
			return "", false
		}
		end := findMatching(raw, start, open, close)
		if end != -1 {
			return raw[start : end+1], true
		}
		offset = start + 1
	}
	return "", false
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// nextCandidate finds the earliest '{' or '[' at or after offset.
func nextCandidate(s string, offset int) (int, byte, byte) {
	objStart := strings.IndexByte(s[offset:], '{')
	arrStart := strings.IndexByte(s[offset:], '[')

	if objStart == -1 && arrStart == -1 {
		return -1, 0, 0
	}
	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		return offset + objStart, '{', '}'
	}
	return offset + arrStart, '[', ']'
}

// findMatching returns the index of the delimiter closing the one at start,
// or -1 when the structure is unbalanced.
func findMatching(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
