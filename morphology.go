package yuwe

// ApplyMorphology decorates a Nasa Yuwe word with the markers selected
// by f: the person marker precedes the word, the aspect marker is
// suffixed to it, the directional particle follows it and the negation
// particle goes first. Unknown feature values are ignored.
func (e *Engine) ApplyMorphology(word string, f MorphologyFeatures) string {
	result := word
	if m, ok := e.rules.PersonMarkers[f.Person]; ok && f.Person != "" {
		result = m + " " + result
	}
	if m, ok := e.rules.AspectMarkers[f.Aspect]; ok && f.Aspect != "" {
		result += m
	}
	if m, ok := e.rules.DirectionalMarkers[f.Direction]; ok && f.Direction != "" {
		result += " " + m
	}
	if f.Negated {
		if m, ok := e.rules.Negation["not"]; ok {
			result = m + " " + result
		}
	}
	return result
}
