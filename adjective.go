package yuwe

import "strings"

// AgreeSpanishAdjective inflects a Spanish adjective given in its
// masculine singular form. Neutral gender agrees like masculine.
// Adjectives no rule matches are returned unchanged.
func (e *Engine) AgreeSpanishAdjective(adj string, gender Gender, number Number) string {
	for _, rule := range e.rules.SpanishAdjective {
		if !rule.Pattern.MatchString(adj) {
			continue
		}
		root := rule.Pattern.ReplaceAllString(adj, "")
		switch {
		case gender == Feminine && number == Plural:
			return root + rule.PluralFem
		case gender == Feminine:
			return root + rule.Feminine
		case number == Plural:
			return root + rule.PluralMasc
		default:
			return adj
		}
	}
	return adj
}

// TranslateAdjective translates an adjective. Nasa Yuwe adjectives do
// not agree in gender or number, but carry a descriptive suffix: the
// default one is appended to translations lacking any.
func (e *Engine) TranslateAdjective(adj string, source, target Language) string {
	tr, _ := e.translateAdjective(adj, source, target)
	return tr
}

func (e *Engine) translateAdjective(adj string, source, target Language) (string, bool) {
	tr, ok := e.lookup(adj, source)
	if !ok {
		return adj, false
	}
	if target == NasaYuwe && !hasAnySuffix(strings.ToLower(tr), e.rules.DescriptiveSuffixes) {
		tr += e.rules.DefaultDescriptiveSuffix
	}
	return tr, true
}
