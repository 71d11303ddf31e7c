package dataset

import "strings"

// Multi-valued CSV fields are joined with commas and/or semicolons, e.g.
// "art pop, hyperpop; dream pop". Tokens are compared by exact string
// equality downstream, so only surrounding whitespace is removed.

func splitAny(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
}

// SplitList parses a delimiter-joined field into trimmed, non-empty tokens.
// Duplicates collapse to the first occurrence; order is first-seen. An empty
// or whitespace-only field yields nil.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, part := range splitAny(raw) {
		token := strings.TrimSpace(part)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// PrimaryToken returns the first token of a multi-valued field, trimmed.
// This is the "main genre" / "main label" used for grouping.
func PrimaryToken(raw string) string {
	if raw == "" {
		return ""
	}
	if idx := strings.IndexAny(raw, ",;"); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}

// TokenSet parses a multi-valued field into a membership set.
func TokenSet(raw string) map[string]bool {
	tokens := SplitList(raw)
	if tokens == nil {
		return nil
	}
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
