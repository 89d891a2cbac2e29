package yuwe

import "strings"

// Classify assigns a coarse grammatical category to word. The first
// matching test wins:
//
//  1. the raw word ends with an infinitive ending (ar, er, ir): Verb;
//  2. the word is in the dictionary and its note names a category;
//  3. the word ends with a Spanish nominal or adjectival suffix;
//  4. otherwise Unknown.
//
// This is a heuristic, not a parser; false positives are expected.
func (e *Engine) Classify(word string) Category {
	if hasAnySuffix(word, e.rules.InfinitiveEndings) {
		return Verb
	}
	if entry, ok := e.dict.Lookup(word); ok {
		if c := e.categoryFromNote(entry.Note); c != Unknown {
			return c
		}
	}
	switch {
	case hasAnySuffix(word, e.rules.NounSuffixes):
		return Noun
	case hasAnySuffix(word, e.rules.AdjectiveSuffixes):
		return Adjective
	}
	return Unknown
}

// categoryFromNote inspects a dictionary note for category triggers.
func (e *Engine) categoryFromNote(note string) Category {
	note = strings.ToLower(Normalize(note))
	switch {
	case containsAny(note, e.rules.NounTriggers):
		return Noun
	case containsAny(note, e.rules.AdjectiveTriggers):
		return Adjective
	case containsAny(note, e.rules.VerbTriggers):
		return Verb
	default:
		return Unknown
	}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
