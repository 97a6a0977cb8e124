package main

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

var replKeywords = []string{"let", "if", "else", "while"}

func (m replModel) completionCandidates() []string {
	candidates := append([]string(nil), replKeywords...)
	candidates = append(candidates, m.engine.Builtins()...)
	candidates = append(candidates, m.session.Names()...)
	return candidates
}

// completeWord returns candidates fuzzy-matching word, best score first.
func completeWord(word string, candidates []string) []string {
	if word == "" {
		return nil
	}

	matches := fuzzy.Find(word, candidates)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Str)
	}
	return out
}

// lastWord extracts the trailing identifier fragment of a partial entry,
// skipping operators and punctuation so completion works inside `print(pri`.
func lastWord(input string) string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	if len(fields) == 0 {
		return ""
	}

	last := fields[len(fields)-1]
	if !strings.HasSuffix(input, last) {
		return ""
	}
	return last
}
