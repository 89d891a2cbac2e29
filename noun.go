package yuwe

import "strings"

// PluralizeSpanish applies the first matching Spanish plural rule, or
// appends "s" when none matches.
func (e *Engine) PluralizeSpanish(noun string) string {
	if noun == "" {
		return noun
	}
	for _, rule := range e.rules.SpanishPlural {
		if rule.Pattern.MatchString(noun) {
			return rule.Pattern.ReplaceAllString(noun, rule.Replacement)
		}
	}
	return noun + "s"
}

// PluralizeNasaYuwe appends the Nasa Yuwe plural suffix.
func (e *Engine) PluralizeNasaYuwe(noun string) string {
	if noun == "" {
		return noun
	}
	return noun + e.rules.NasaPluralSuffix
}

// Pluralize pluralizes noun according to the rules of lang. Nouns of
// other languages are returned unchanged.
func (e *Engine) Pluralize(noun string, lang Language) string {
	switch lang {
	case Spanish:
		return e.PluralizeSpanish(noun)
	case NasaYuwe:
		return e.PluralizeNasaYuwe(noun)
	default:
		return noun
	}
}

// Gender guesses the gender of a Spanish noun from its ending.
func (e *Engine) Gender(noun string) Gender {
	for _, rule := range e.rules.SpanishGender {
		if rule.Pattern.MatchString(noun) {
			return rule.Gender
		}
	}
	return Neutral
}

// TranslateNoun translates a noun, carrying plural number across.
//
// A Spanish noun found as-is in the dictionary is translated directly.
// Otherwise a trailing "s" marks it plural: the singular candidates
// (without "es", without "s", and "ces" → "z") are looked up in order
// and the first translation found is pluralized with the target rules.
func (e *Engine) TranslateNoun(noun string, source, target Language) string {
	tr, _ := e.translateNoun(noun, source, target)
	return tr
}

func (e *Engine) translateNoun(noun string, source, target Language) (string, bool) {
	if tr, ok := e.lookup(noun, source); ok {
		return tr, true
	}
	if source != Spanish {
		return noun, false
	}
	for _, singular := range spanishSingulars(noun) {
		if tr, ok := e.lookup(singular, source); ok {
			return e.Pluralize(tr, target), true
		}
	}
	return noun, false
}

// spanishSingulars lists the singular forms a Spanish plural may come
// from, most likely first. It returns nil for words that do not look
// plural.
func spanishSingulars(noun string) []string {
	if runeLen(noun) <= 1 || !strings.HasSuffix(strings.ToLower(noun), "s") {
		return nil
	}
	lower := strings.ToLower(noun)
	var out []string
	if strings.HasSuffix(lower, "es") {
		out = append(out, noun[:len(noun)-2])
		if strings.HasSuffix(lower, "ces") {
			out = append(out, noun[:len(noun)-3]+"z")
		}
	}
	out = append(out, noun[:len(noun)-1])
	return out
}
