package utils

import (
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first complete JSON object out of free-form
// model output. Markdown code fences are stripped first, then the text is
// scanned from the first '{' tracking string and escape state so that brace
// characters inside string values do not terminate the object early.
//
// The extraction never repairs malformed JSON; if no balanced object is
// found the caller gets an error and decides how to surface it.
func ExtractJSONObject(raw string) (string, error) {
	text := stripCodeFences(raw)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("no json object found in response")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced json object in response")
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
