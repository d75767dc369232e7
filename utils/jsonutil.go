package utils

// ExtractJSONObject returns the first balanced JSON object embedded in s, or
// "" when none is found. Generative models wrap their JSON in prose and
// markdown fences, so the response cannot be decoded as-is.
func ExtractJSONObject(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if start >= 0 && inString {
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
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return ""
}
