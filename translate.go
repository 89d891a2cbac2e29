package yuwe

import (
	"strings"
)

// EnhanceTranslation translates text token by token. Each whitespace
// separated token is cleaned of punctuation, classified and handed to
// the translator of its category (plain dictionary lookup for unknown
// tokens); trailing punctuation is reattached and the tokens are joined
// with single spaces. Tokens that cannot be translated are kept as-is.
func (e *Engine) EnhanceTranslation(text string, source, target Language) string {
	out, _ := e.Enhance(text, source, target)
	return out
}

// Enhance is EnhanceTranslation that also reports whether any token
// was found in the dictionary. The output alone cannot tell, since
// untranslated text still comes back normalized.
func (e *Engine) Enhance(text string, source, target Language) (string, bool) {
	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))
	found := false
	for _, token := range tokens {
		tr, ok := e.translateToken(token, source, target)
		out = append(out, tr)
		found = found || ok
	}
	return strings.Join(out, " "), found
}

// EnhancedContextualTranslation is EnhanceTranslation followed, for
// Nasa Yuwe targets, by question-particle and temporal-word insertion.
// When source and target are the same language text is returned
// unchanged.
func (e *Engine) EnhancedContextualTranslation(text string, source, target Language) string {
	out, _ := e.EnhanceContextual(text, source, target)
	return out
}

// EnhanceContextual is EnhancedContextualTranslation that also reports
// whether a token was found or a context word was inserted.
func (e *Engine) EnhanceContextual(text string, source, target Language) (string, bool) {
	if source == target {
		return text, false
	}
	tc := e.DetectTemporalContext(text, source)
	qc := e.DetectQuestionType(text, source)
	translation, found := e.Enhance(text, source, target)
	if target == NasaYuwe {
		var annotated bool
		translation, annotated = e.annotate(translation, tc, qc)
		found = found || annotated
	}
	return translation, found
}

// translateToken translates a single raw token, keeping its trailing
// punctuation. A trailing hyphen is first tried as part of the word so
// that unbound Nasa Yuwe verb roots ("yuwe-") resolve. A word wrapped in
// single quotes is retried without them when the quoted form is unknown.
func (e *Engine) translateToken(token string, source, target Language) (string, bool) {
	clean, trailing := splitToken(token)
	if clean == "" {
		return token, false
	}
	if strings.HasPrefix(trailing, "-") {
		if tr, ok := e.lookup(clean+"-", source); ok {
			return tr + strings.TrimPrefix(trailing, "-"), true
		}
	}
	if tr, ok := e.translateClean(clean, source, target); ok {
		return tr + trailing, true
	}
	if unquoted := strings.Trim(clean, "'"); unquoted != "" && unquoted != clean {
		if tr, ok := e.translateClean(unquoted, source, target); ok {
			closing := clean[len(strings.TrimRight(clean, "'")):]
			return tr + closing + trailing, true
		}
	}
	return clean + trailing, false
}

// translateClean dispatches a clean token to the translator of its
// category.
func (e *Engine) translateClean(word string, source, target Language) (string, bool) {
	switch e.Classify(word) {
	case Noun:
		return e.translateNoun(word, source, target)
	case Adjective:
		return e.translateAdjective(word, source, target)
	default:
		// verbs are translated by plain lookup; conjugation is only
		// attempted by TranslateWord
		if tr, ok := e.lookup(word, source); ok {
			return tr, true
		}
		return word, false
	}
}

// TranslateWord translates a single word, recovering inflected forms
// that are not dictionary headwords.
//
// Spanish → Nasa Yuwe: direct lookup; then a conjugated verb form is
// traced back to its infinitive and conjugated in the Nasa Yuwe present;
// then a plural in "s" is traced back to its singular and pluralized.
//
// Nasa Yuwe → Spanish: reverse lookup; then a word in "we" is read as a
// present-tense verb whose unbound root is in the dictionary, and
// rendered in the Spanish third person singular.
func (e *Engine) TranslateWord(word string, source, target Language) string {
	switch {
	case source == Spanish && target == NasaYuwe:
		if tr, ok := e.LookupForward(word); ok {
			return tr
		}
		if entry, ok := e.DetectConjugatedForm(word); ok {
			return e.ConjugateNasaYuwe(entry.Translation, Present)
		}
		if runeLen(word) > 2 && strings.HasSuffix(strings.ToLower(word), "s") {
			if tr, ok := e.LookupForward(word[:len(word)-1]); ok {
				return e.PluralizeNasaYuwe(tr)
			}
		}
	case source == NasaYuwe && target == Spanish:
		if w, ok := e.LookupReverse(word); ok {
			return w
		}
		suffix := e.rules.NasaTenseSuffix[Present]
		if runeLen(word) > 3 && suffix != "" && strings.HasSuffix(strings.ToLower(word), suffix) {
			root := word[:len(word)-len(suffix)] + "-"
			if w, ok := e.LookupReverse(root); ok {
				return e.ConjugateSpanish(w, El)
			}
		}
	}
	return word
}
