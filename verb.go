package yuwe

import "strings"

// VerbRoot splits a Spanish infinitive into its root and conjugation
// class. The verb is lowercased and trimmed first; anything not ending
// in ar, er or ir is Irregular and returned whole.
func VerbRoot(verb string) (string, ConjugationClass) {
	verb = strings.ToLower(strings.TrimSpace(verb))
	switch {
	case strings.HasSuffix(verb, "ar"):
		return verb[:len(verb)-2], ClassAR
	case strings.HasSuffix(verb, "er"):
		return verb[:len(verb)-2], ClassER
	case strings.HasSuffix(verb, "ir"):
		return verb[:len(verb)-2], ClassIR
	default:
		return verb, Irregular
	}
}

// ConjugateSpanish conjugates a regular Spanish infinitive in the
// present tense. Irregular verbs and unknown persons are returned
// unchanged.
func (e *Engine) ConjugateSpanish(verb string, person Person) string {
	root, class := VerbRoot(verb)
	if class == Irregular {
		return verb
	}
	ending, ok := e.rules.SpanishEndings[class][person]
	if !ok {
		return verb
	}
	return root + ending
}

// ConjugateNasaYuwe conjugates an unbound Nasa Yuwe verb root (marked
// by a trailing hyphen) by replacing the hyphen with the tense suffix.
// Other words and unsupported tenses are returned unchanged.
func (e *Engine) ConjugateNasaYuwe(root string, tense Tense) string {
	if !strings.HasSuffix(root, "-") {
		return root
	}
	suffix, ok := e.rules.NasaTenseSuffix[tense]
	if !ok {
		return root
	}
	return strings.TrimSuffix(root, "-") + suffix
}

// DetectConjugatedForm finds the dictionary entry for a possibly
// conjugated Spanish word. A direct hit wins; otherwise each personal
// ending is stripped in turn and the infinitive endings are tried on
// the remaining root, e.g. "hablo" → "habl" → "hablar".
func (e *Engine) DetectConjugatedForm(word string) (Entry, bool) {
	if entry, ok := e.dict.Lookup(word); ok {
		return entry, true
	}
	lower := FoldKey(word)
	for _, ending := range e.rules.PersonalEndings {
		if !strings.HasSuffix(lower, ending) || runeLen(lower) <= runeLen(ending)+2 {
			continue
		}
		root := strings.TrimSuffix(lower, ending)
		for _, inf := range e.rules.InfinitiveEndings {
			if entry, ok := e.dict.Lookup(root + inf); ok {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// VerbPatterns groups dictionary verbs by transitivity as stated in
// their notes.
func (e *Engine) VerbPatterns() VerbPatterns {
	var vp VerbPatterns
	for _, entry := range e.dict.entries {
		if !strings.HasSuffix(entry.Translation, "-") {
			continue
		}
		note := strings.ToLower(entry.Note)
		switch {
		case strings.Contains(note, "intransitivo"):
			vp.Intransitive = append(vp.Intransitive, entry)
		case strings.Contains(note, "transitivo"):
			vp.Transitive = append(vp.Transitive, entry)
		default:
			vp.Action = append(vp.Action, entry)
		}
	}
	return vp
}
