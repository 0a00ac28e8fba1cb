package heuristic

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher finds which of a list of phrases occur in a text, case-insensitively.
// Phrases keep their declaration order: when several occur, the one declared
// first wins, wherever it appears in the text.
type Matcher struct {
	machine *goahocorasick.Machine
	phrases []string
	order   map[string]int
}

// NewMatcher builds the Aho-Corasick automaton over the lower-cased phrases.
// Empty phrases are ignored; duplicates keep their first position.
func NewMatcher(phrases []string) (*Matcher, error) {
	m := &Matcher{order: make(map[string]int, len(phrases))}
	patterns := make([][]rune, 0, len(phrases))
	for _, phrase := range phrases {
		runes := foldRunes([]rune(phrase))
		if len(runes) == 0 {
			continue
		}
		key := string(runes)
		if _, dup := m.order[key]; dup {
			continue
		}
		m.order[key] = len(m.phrases)
		m.phrases = append(m.phrases, phrase)
		patterns = append(patterns, runes)
	}
	if len(patterns) == 0 {
		return m, nil
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.machine = machine
	return m, nil
}

// Len is the number of distinct phrases the matcher knows.
func (m *Matcher) Len() int {
	return len(m.phrases)
}

// First returns the position, in declaration order, of the earliest declared phrase found in text.
func (m *Matcher) First(text string) (int, bool) {
	if m.machine == nil {
		return 0, false
	}
	content := foldRunes([]rune(text))
	if len(content) == 0 {
		return 0, false
	}

	first := -1
	for _, term := range m.machine.MultiPatternSearch(content, false) {
		idx, ok := m.order[string(term.Word)]
		if ok && (first < 0 || idx < first) {
			first = idx
		}
	}
	return first, first >= 0
}

// Any reports whether at least one phrase occurs in text.
func (m *Matcher) Any(text string) bool {
	_, ok := m.First(text)
	return ok
}

// Phrase returns the phrase declared at position idx.
func (m *Matcher) Phrase(idx int) string {
	return m.phrases[idx]
}

// foldRunes lower-cases without dropping spaces or punctuation, so that
// phrases match as plain substrings.
func foldRunes(input []rune) []rune {
	out := make([]rune, len(input))
	for i, r := range input {
		out[i] = unicode.ToLower(r)
	}
	return out
}
