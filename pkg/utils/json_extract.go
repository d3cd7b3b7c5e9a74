package utils

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
)

// ExtractJSON recovers a JSON object from raw model output. Models wrap the
// answer in markdown fences, frame it with prose, or echo fragments of it in
// asides, so a direct parse is only the first attempt. When that fails we
// collect every balanced {...} span and try them longest-first: the full
// document is always the largest parseable span, fragments are strictly
// shorter, and prose that happens to contain matched braces never parses.
func ExtractJSON(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	for _, candidate := range balancedObjectCandidates(cleaned) {
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	log.Printf("json extraction failed, raw model output: %s", raw)
	return "", ErrExtractionFailed
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// balancedObjectCandidates returns every complete brace-delimited span in s,
// longest first. Spans are scanned from each opening brace independently, so
// prose braces and quoted braces produce their own (non-parsing) candidates
// instead of swallowing the real document.
func balancedObjectCandidates(s string) []string {
	var candidates []string
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		if end, ok := matchingBrace(s, i); ok {
			candidates = append(candidates, s[i:end+1])
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return len(candidates[a]) > len(candidates[b])
	})
	return candidates
}

// matchingBrace finds the close of the brace opened at start. The scanner
// tracks string literals and escapes so braces inside quoted values don't
// unbalance the count.
func matchingBrace(s string, start int) (int, bool) {
	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := start; i < len(s); i++ {
		ch := s[i]

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
				return i, true
			}
		}
	}

	return 0, false
}
