package yuwe

import "strings"

// Language identifies one side of a translation.
type Language string

const (
	Spanish  Language = "spanish"
	NasaYuwe Language = "nasa_yuwe"
)

// ParseLanguage maps a language identifier (as used by the HTTP API)
// to a Language. The second value is false for unsupported languages.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Spanish:
		return Spanish, true
	case NasaYuwe:
		return NasaYuwe, true
	default:
		return Language(s), false
	}
}

// Category is the coarse grammatical category assigned to a token.
type Category string

const (
	Verb      Category = "verb"
	Noun      Category = "noun"
	Adjective Category = "adjective"
	Unknown   Category = "unknown"
)

// ConjugationClass is the Spanish verb group inferred from the infinitive.
type ConjugationClass string

const (
	ClassAR   ConjugationClass = "ar"
	ClassER   ConjugationClass = "er"
	ClassIR   ConjugationClass = "ir"
	Irregular ConjugationClass = "irregular"
)

// Person is one of the six Spanish grammatical persons.
type Person string

const (
	Yo       Person = "yo"
	Tu       Person = "tú"
	El       Person = "él/ella"
	Nosotros Person = "nosotros"
	Vosotros Person = "vosotros"
	Ellos    Person = "ellos"
)

// Persons lists the Spanish persons in paradigm order.
var Persons = []Person{Yo, Tu, El, Nosotros, Vosotros, Ellos}

// ParsePerson accepts a person name; "tu" and "el" are accepted
// without accents.
func ParsePerson(s string) (Person, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yo":
		return Yo, true
	case "tú", "tu":
		return Tu, true
	case "él/ella", "el/ella", "él", "el", "ella":
		return El, true
	case "nosotros":
		return Nosotros, true
	case "vosotros":
		return Vosotros, true
	case "ellos", "ellas":
		return Ellos, true
	}
	return "", false
}

// Tense is a verbal tense. Imperative only appears in the Nasa Yuwe
// verb-suffix table.
type Tense string

const (
	Present    Tense = "present"
	Past       Tense = "past"
	Future     Tense = "future"
	Imperative Tense = "imperative"
)

// Gender of a Spanish noun or adjective.
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
	Neutral   Gender = "neutral"
)

// Number of a Spanish noun or adjective.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// QuestionType is the kind of question introduced by a Spanish
// question word.
type QuestionType string

const (
	What  QuestionType = "what"
	Who   QuestionType = "who"
	Where QuestionType = "where"
	When  QuestionType = "when"
	How   QuestionType = "how"
	Why   QuestionType = "why"
)

// TemporalContext holds the temporal phrases found in a text.
type TemporalContext struct {
	// Markers lists every matching trigger phrase in table order.
	Markers []string `json:"markers"`
	// Tense is the tense of the last matching past/present/future
	// trigger, Present when there is none.
	Tense Tense `json:"tense"`
}

// QuestionContext describes whether (and how) a text asks a question.
type QuestionContext struct {
	IsQuestion bool         `json:"is_question"`
	Type       QuestionType `json:"type,omitempty"`
	// Particle is the Nasa Yuwe question particle for Type.
	Particle string `json:"particle,omitempty"`
}

// MorphologyFeatures are the optional attributes understood by
// ApplyMorphology. Empty values are ignored.
type MorphologyFeatures struct {
	// Person is a Nasa Yuwe person key (1sg, 2sg, 3sg, 1pl, 1pl_excl, 2pl, 3pl).
	Person string `json:"person,omitempty"`
	// Aspect is one of completive, continuative, habitual, iterative, intensive.
	Aspect string `json:"aspect,omitempty"`
	// Direction is one of up, down, towards_speaker, away_from_speaker,
	// inside, outside.
	Direction string `json:"direction,omitempty"`
	Negated   bool   `json:"negated,omitempty"`
}

// VerbPatterns groups the dictionary verbs (translations ending with
// an unbound-root hyphen) by the transitivity stated in their note.
type VerbPatterns struct {
	Transitive   []Entry `json:"transitive"`
	Intransitive []Entry `json:"intransitive"`
	Action       []Entry `json:"action"`
}
