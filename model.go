package yuwe

import "regexp"

// SuffixRule rewrites the end of a word matched by Pattern.
type SuffixRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// GenderRule assigns Gender to words matched by Pattern.
type GenderRule struct {
	Pattern *regexp.Regexp
	Gender  Gender
}

// AgreementRule describes how a Spanish adjective matched by Pattern
// inflects. The matched part is removed and one of the suffixes appended.
type AgreementRule struct {
	Pattern    *regexp.Regexp
	Feminine   string
	PluralMasc string
	PluralFem  string
}

// TemporalTrigger is a Spanish temporal phrase. Tense is empty for
// phrases naming a part of the day.
type TemporalTrigger struct {
	Phrase  string
	Tense   Tense
	DayPart string
}

// QuestionWord is a Spanish question phrase and the question type it
// introduces.
type QuestionWord struct {
	Phrase string
	Type   QuestionType
}

// Rules is the complete set of morphological tables used by an Engine.
// A Rules value must not be modified once it has been handed to
// NewWithRules.
type Rules struct {
	// InfinitiveEndings are the Spanish infinitive endings, in the order
	// they are tried when recovering an infinitive.
	InfinitiveEndings []string
	// SpanishEndings maps conjugation class to the present-tense
	// person endings.
	SpanishEndings map[ConjugationClass]map[Person]string
	// PersonalEndings are the Spanish conjugated endings tried by
	// DetectConjugatedForm, in order.
	PersonalEndings []string

	SpanishPlural    []SuffixRule
	SpanishGender    []GenderRule
	SpanishAdjective []AgreementRule

	// NounTriggers, AdjectiveTriggers and VerbTriggers are looked up in
	// dictionary notes by the classifier, in that order.
	NounTriggers      []string
	AdjectiveTriggers []string
	VerbTriggers      []string
	// NounSuffixes and AdjectiveSuffixes are the Spanish derivational
	// endings used as a last classification resort.
	NounSuffixes      []string
	AdjectiveSuffixes []string

	NasaPluralSuffix         string
	DescriptiveSuffixes      []string
	DefaultDescriptiveSuffix string
	// NasaTenseSuffix is appended to an unbound verb root on conjugation.
	NasaTenseSuffix map[Tense]string
	// VerbSuffixes lists the Nasa Yuwe verbal suffixes attested per tense.
	VerbSuffixes       map[Tense][]string
	PersonMarkers      map[string]string
	AspectMarkers      map[string]string
	DirectionalMarkers map[string]string
	TemporalMarkers    map[string]string
	QuestionParticles  map[QuestionType]string
	Negation           map[string]string

	TemporalTriggers []TemporalTrigger
	QuestionWords    []QuestionWord
	// RenderedTemporal maps the temporal triggers that are rendered in
	// Nasa Yuwe output to their key in TemporalMarkers.
	RenderedTemporal map[string]string
}

// DefaultRules builds the standard Spanish / Nasa Yuwe rule set.
// Every call returns a fresh value.
func DefaultRules() *Rules {
	return &Rules{
		InfinitiveEndings: []string{"ar", "er", "ir"},
		SpanishEndings: map[ConjugationClass]map[Person]string{
			ClassAR: {Yo: "o", Tu: "as", El: "a", Nosotros: "amos", Vosotros: "áis", Ellos: "an"},
			ClassER: {Yo: "o", Tu: "es", El: "e", Nosotros: "emos", Vosotros: "éis", Ellos: "en"},
			ClassIR: {Yo: "o", Tu: "es", El: "e", Nosotros: "imos", Vosotros: "ís", Ellos: "en"},
		},
		PersonalEndings: []string{
			"o", "as", "a", "amos", "áis", "an",
			"es", "e", "emos", "éis", "en", "imos", "ís",
		},
		SpanishPlural: []SuffixRule{
			{regexp.MustCompile(`(?i)([aeiouáéíóú])$`), "${1}s"},   // casa → casas
			{regexp.MustCompile(`(?i)z$`), "ces"},                  // luz → luces
			{regexp.MustCompile(`(?i)([^aeiouáéíóú])$`), "${1}es"}, // árbol → árboles
		},
		SpanishGender: []GenderRule{
			{regexp.MustCompile(`o$`), Masculine},
			{regexp.MustCompile(`a$`), Feminine},
			{regexp.MustCompile(`e$`), Neutral},
		},
		SpanishAdjective: []AgreementRule{
			{regexp.MustCompile(`o$`), "a", "os", "as"},
			{regexp.MustCompile(`e$`), "e", "es", "es"},
		},
		NounTriggers:      []string{"sustantivo", "nombre", "cosa"},
		AdjectiveTriggers: []string{"adjetivo", "cualidad", "describe"},
		VerbTriggers:      []string{"verbo", "acción", "hacer"},
		NounSuffixes:      []string{"ción", "sión", "dad", "tad", "eza", "ura", "ancia", "encia"},
		AdjectiveSuffixes: []string{"oso", "osa", "ivo", "iva", "able", "ible", "ante", "ente"},

		NasaPluralSuffix:         "we",
		DescriptiveSuffixes:      []string{"sa", "te", "yu"},
		DefaultDescriptiveSuffix: "sa",
		NasaTenseSuffix: map[Tense]string{
			Present: "we",
			Past:    "ka",
			Future:  "sa",
		},
		VerbSuffixes: map[Tense][]string{
			Present:    {"n", "te", "sa", "we"},
			Past:       {"tx", "txi", "txin", "txiwe"},
			Future:     {"we", "wes", "wet", "wesx"},
			Imperative: {"ka", "ki", "ku"},
		},
		PersonMarkers: map[string]string{
			"1sg":      "ũ",
			"2sg":      "um",
			"3sg":      "nas",
			"1pl":      "ũs",
			"1pl_excl": "ũh",
			"2pl":      "ums",
			"3pl":      "nasa",
		},
		AspectMarkers: map[string]string{
			"completive":   "tx",
			"continuative": "sa",
			"habitual":     "te",
			"iterative":    "txi",
			"intensive":    "sx",
		},
		DirectionalMarkers: map[string]string{
			"up":                "ksxa",
			"down":              "jxu",
			"towards_speaker":   "yu",
			"away_from_speaker": "pa",
			"inside":            "pila",
			"outside":           "wala",
		},
		TemporalMarkers: map[string]string{
			"morning":   "uma",
			"afternoon": "tay",
			"night":     "akx",
			"yesterday": "ksxaw",
			"today":     "jxuka",
			"tomorrow":  "wejxa",
		},
		QuestionParticles: map[QuestionType]string{
			What:  "kwe",
			Who:   "jĩ",
			Where: "naa",
			When:  "kãjã",
			How:   "kãh",
			Why:   "kwesx",
		},
		Negation: map[string]string{
			"not":     "kwe",
			"never":   "kwesx",
			"nothing": "kwekwe",
		},
		TemporalTriggers: []TemporalTrigger{
			{Phrase: "ayer", Tense: Past},
			{Phrase: "hoy", Tense: Present},
			{Phrase: "mañana", Tense: Future},
			{Phrase: "ahora", Tense: Present},
			{Phrase: "antes", Tense: Past},
			{Phrase: "después", Tense: Future},
			{Phrase: "en la mañana", DayPart: "morning"},
			{Phrase: "en la tarde", DayPart: "afternoon"},
			{Phrase: "en la noche", DayPart: "night"},
		},
		QuestionWords: []QuestionWord{
			{"qué", What},
			{"quién", Who},
			{"dónde", Where},
			{"cuándo", When},
			{"cómo", How},
			{"por qué", Why},
		},
		RenderedTemporal: map[string]string{
			"ayer":   "yesterday",
			"mañana": "tomorrow",
		},
	}
}
