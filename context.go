package yuwe

import "strings"

// DetectTemporalContext scans a Spanish text for temporal trigger
// phrases. Every matching phrase is recorded; the tense is taken from
// the last past/present/future trigger matched, so later table entries
// override earlier ones. Texts in other languages yield no markers.
func (e *Engine) DetectTemporalContext(text string, source Language) TemporalContext {
	tc := TemporalContext{Markers: []string{}, Tense: Present}
	if source != Spanish {
		return tc
	}
	lower := strings.ToLower(Normalize(text))
	for _, trig := range e.rules.TemporalTriggers {
		if !strings.Contains(lower, trig.Phrase) {
			continue
		}
		tc.Markers = append(tc.Markers, trig.Phrase)
		if trig.Tense != "" {
			tc.Tense = trig.Tense
		}
	}
	return tc
}

// DetectQuestionType decides whether a Spanish text is a question. A
// trailing "?" makes it one; independently, the first question word
// found (in table order) sets the type and the Nasa Yuwe particle and
// stops the scan.
func (e *Engine) DetectQuestionType(text string, source Language) QuestionContext {
	var qc QuestionContext
	if source != Spanish {
		return qc
	}
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		qc.IsQuestion = true
	}
	lower := strings.ToLower(Normalize(text))
	for _, qw := range e.rules.QuestionWords {
		if strings.Contains(lower, qw.Phrase) {
			qc.IsQuestion = true
			qc.Type = qw.Type
			qc.Particle = e.rules.QuestionParticles[qw.Type]
			break
		}
	}
	return qc
}

// annotate prepends the question particle and the rendered temporal
// words to a Nasa Yuwe translation and reports whether it added any.
// Only the triggers listed in RenderedTemporal produce output; other
// markers are detected but not rendered.
func (e *Engine) annotate(translation string, tc TemporalContext, qc QuestionContext) (string, bool) {
	added := false
	if qc.IsQuestion && qc.Particle != "" {
		translation = qc.Particle + " " + translation
		added = true
	}
	for _, marker := range tc.Markers {
		key, ok := e.rules.RenderedTemporal[marker]
		if !ok {
			continue
		}
		if word, ok := e.rules.TemporalMarkers[key]; ok {
			translation = word + " " + translation
			added = true
		}
	}
	return translation, added
}
