// Package yuwe translates short phrases between Spanish and Nasa Yuwe
// using a hand-curated bilingual dictionary and a fixed set of
// morphological heuristics: verb conjugation, noun pluralization,
// adjective agreement and temporal/question particle insertion.
//
// An Engine never fails on its input. Whenever no dictionary entry or
// rule applies, the token (or the whole text) is returned unchanged.
package yuwe

import "fmt"

// Engine holds a dictionary snapshot and a rule set and provides the
// public API. It is immutable and safe for concurrent use.
type Engine struct {
	dict  *Dictionary
	rules *Rules
}

// New builds an Engine over entries using DefaultRules.
func New(entries []Entry) *Engine {
	return NewWithRules(entries, nil)
}

// NewWithRules builds an Engine over entries using rules. A nil rules
// selects DefaultRules.
func NewWithRules(entries []Entry, rules *Rules) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{
		dict:  NewDictionary(entries),
		rules: rules,
	}
}

// Open loads the dictionary file at path and returns a ready-to-use
// Engine.
func Open(path string) (*Engine, error) {
	entries, err := LoadDictionaryFile(path)
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}
	return New(entries), nil
}

// Dictionary returns the engine's dictionary index.
func (e *Engine) Dictionary() *Dictionary {
	return e.dict
}

// Rules returns the engine's rule set. It must not be modified.
func (e *Engine) Rules() *Rules {
	return e.rules
}

// LookupForward returns the Nasa Yuwe translation of a Spanish word.
func (e *Engine) LookupForward(word string) (string, bool) {
	entry, ok := e.dict.Lookup(word)
	if !ok {
		return "", false
	}
	return entry.Translation, true
}

// LookupReverse returns the Spanish word translated by a Nasa Yuwe word.
// With several candidates the first in dictionary order is returned.
func (e *Engine) LookupReverse(word string) (string, bool) {
	entry, ok := e.dict.Reverse(word)
	if !ok {
		return "", false
	}
	return entry.Word, true
}

// lookup translates word out of source: forward for Spanish, reverse
// for Nasa Yuwe. Other languages never match.
func (e *Engine) lookup(word string, source Language) (string, bool) {
	switch source {
	case Spanish:
		return e.LookupForward(word)
	case NasaYuwe:
		return e.LookupReverse(word)
	default:
		return "", false
	}
}
