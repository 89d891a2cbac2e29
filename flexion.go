package yuwe

import "strings"

// Paradigm is the conjugation table of a Spanish verb together with the
// conjugated forms of its Nasa Yuwe translation.
type Paradigm struct {
	Verb  string           `json:"verb"`
	Class ConjugationClass `json:"class"`
	// Spanish maps person → present-tense form; empty for irregular verbs.
	Spanish map[Person]string `json:"spanish,omitempty"`
	// Translation is the dictionary translation, if any.
	Translation string `json:"translation,omitempty"`
	// NasaYuwe maps tense → conjugated form; empty unless the translation
	// is an unbound verb root.
	NasaYuwe map[Tense]string `json:"nasa_yuwe,omitempty"`
}

// Paradigm computes the conjugation table of verb. The verb may itself
// be a conjugated form known to DetectConjugatedForm. It returns nil
// when the verb is neither regular nor found in the dictionary.
func (e *Engine) Paradigm(verb string) *Paradigm {
	infinitive := verb
	var translation string
	if entry, ok := e.DetectConjugatedForm(verb); ok {
		infinitive = entry.Word
		translation = entry.Translation
	}
	_, class := VerbRoot(infinitive)
	if class == Irregular && translation == "" {
		return nil
	}

	p := &Paradigm{
		Verb:        infinitive,
		Class:       class,
		Translation: translation,
	}
	if class != Irregular {
		p.Spanish = make(map[Person]string, len(Persons))
		for _, person := range Persons {
			p.Spanish[person] = e.ConjugateSpanish(infinitive, person)
		}
	}
	if strings.HasSuffix(translation, "-") {
		p.NasaYuwe = make(map[Tense]string, len(e.rules.NasaTenseSuffix))
		for tense := range e.rules.NasaTenseSuffix {
			p.NasaYuwe[tense] = e.ConjugateNasaYuwe(translation, tense)
		}
	}
	return p
}
