package yuwe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Word: "casa", Translation: "pala", Note: "sustantivo"},
		{Word: "hablar", Translation: "yuwe-", Note: "verbo transitivo"},
		{Word: "comer", Translation: "ku-", Note: "verbo intransitivo"},
		{Word: "correr", Translation: "pu-", Note: "acción de moverse rápido"},
		{Word: "bonito", Translation: "kwet", Note: "adjetivo"},
		{Word: "alegre", Translation: "ũskate", Note: "adjetivo, describe el ánimo"},
		{Word: "agua", Translation: "yu'", Note: "sustantivo"},
		{Word: "luz", Translation: "ẽsx", Note: "sustantivo"},
		{Word: "árbol", Translation: "tutxa", Note: "sustantivo"},
		{Word: "sol", Translation: "sek", Note: "nombre del astro"},
		{Word: "perro", Translation: "alku", Note: "animal doméstico"},
		{Word: "madre", Translation: "nxhi", Note: "sustantivo"},
		{Word: "hermano", Translation: "nxisa", Note: "sustantivo"},
		{Word: "hermana", Translation: "nxisa", Note: "sustantivo"},
	}
}

func testEngine() *Engine {
	return New(testEntries())
}

func TestNew(t *testing.T) {
	e := testEngine()
	assert.Equal(t, len(testEntries()), e.Dictionary().Len())
	assert.NotNil(t, e.Rules())
}

func TestLookup(t *testing.T) {
	e := testEngine()

	tr, ok := e.LookupForward("CASA")
	assert.True(t, ok)
	assert.Equal(t, "pala", tr)

	w, ok := e.LookupReverse("Pala")
	assert.True(t, ok)
	assert.Equal(t, "casa", w)

	_, ok = e.LookupForward("gato")
	assert.False(t, ok)
}

func TestLookupReverseFirstMatchWins(t *testing.T) {
	e := testEngine()
	w, ok := e.LookupReverse("nxisa")
	require.True(t, ok)
	assert.Equal(t, "hermano", w)
}

func TestLookupDecomposedAccents(t *testing.T) {
	e := testEngine()
	// "a" followed by a combining acute accent
	tr, ok := e.LookupForward("a\u0301rbol")
	assert.True(t, ok)
	assert.Equal(t, "tutxa", tr)
}

func TestClassify(t *testing.T) {
	e := testEngine()
	tests := []struct {
		word string
		want Category
	}{
		{"hablar", Verb},
		{"comer", Verb},
		{"vivir", Verb},
		{"HABLAR", Verb},
		{"PERRO", Unknown},
		{"casa", Noun},
		{"sol", Noun},
		{"bonito", Adjective},
		{"alegre", Adjective},
		{"canción", Noun},
		{"ciudad", Noun},
		{"belleza", Noun},
		{"famoso", Adjective},
		{"amable", Adjective},
		{"perro", Unknown},
		{"la", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Classify(tt.word), "Classify(%q)", tt.word)
	}
}

func TestClassifyNoteTriggerOrder(t *testing.T) {
	e := New([]Entry{{Word: "brillo", Translation: "x", Note: "cosa que describe la luz"}})
	assert.Equal(t, Noun, e.Classify("brillo"))
}

func TestVerbRoot(t *testing.T) {
	tests := []struct {
		verb  string
		root  string
		class ConjugationClass
	}{
		{"hablar", "habl", ClassAR},
		{"comer", "com", ClassER},
		{"vivir", "viv", ClassIR},
		{" Hablar ", "habl", ClassAR},
		{"xyz", "xyz", Irregular},
	}
	for _, tt := range tests {
		root, class := VerbRoot(tt.verb)
		assert.Equal(t, tt.root, root, "VerbRoot(%q) root", tt.verb)
		assert.Equal(t, tt.class, class, "VerbRoot(%q) class", tt.verb)
	}
}

func TestConjugateSpanish(t *testing.T) {
	e := testEngine()
	tests := []struct {
		verb   string
		person Person
		want   string
	}{
		{"hablar", Yo, "hablo"},
		{"hablar", Tu, "hablas"},
		{"hablar", El, "habla"},
		{"hablar", Nosotros, "hablamos"},
		{"hablar", Vosotros, "habláis"},
		{"hablar", Ellos, "hablan"},
		{"comer", Nosotros, "comemos"},
		{"comer", Vosotros, "coméis"},
		{"vivir", Nosotros, "vivimos"},
		{"vivir", Vosotros, "vivís"},
		{"vivir", Ellos, "viven"},
		{"xyz", Yo, "xyz"},
		{"hablar", Person("usted"), "hablar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.ConjugateSpanish(tt.verb, tt.person), "ConjugateSpanish(%q, %q)", tt.verb, tt.person)
	}
}

func TestConjugateNasaYuwe(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "yuwewe", e.ConjugateNasaYuwe("yuwe-", Present))
	assert.Equal(t, "yuweka", e.ConjugateNasaYuwe("yuwe-", Past))
	assert.Equal(t, "yuwesa", e.ConjugateNasaYuwe("yuwe-", Future))
	assert.Equal(t, "yuwe-", e.ConjugateNasaYuwe("yuwe-", Imperative))
	assert.Equal(t, "pala", e.ConjugateNasaYuwe("pala", Past))
}

func TestDetectConjugatedForm(t *testing.T) {
	e := testEngine()

	entry, ok := e.DetectConjugatedForm("hablo")
	require.True(t, ok)
	assert.Equal(t, "hablar", entry.Word)
	assert.Equal(t, "yuwe-", entry.Translation)

	entry, ok = e.DetectConjugatedForm("comemos")
	require.True(t, ok)
	assert.Equal(t, "comer", entry.Word)

	entry, ok = e.DetectConjugatedForm("Casa")
	require.True(t, ok)
	assert.Equal(t, "casa", entry.Word)

	_, ok = e.DetectConjugatedForm("pan")
	assert.False(t, ok)
}

func TestVerbPatterns(t *testing.T) {
	vp := testEngine().VerbPatterns()
	require.Len(t, vp.Transitive, 1)
	require.Len(t, vp.Intransitive, 1)
	require.Len(t, vp.Action, 1)
	assert.Equal(t, "hablar", vp.Transitive[0].Word)
	assert.Equal(t, "comer", vp.Intransitive[0].Word)
	assert.Equal(t, "correr", vp.Action[0].Word)
}

func TestParadigm(t *testing.T) {
	e := testEngine()
	p := e.Paradigm("hablo")
	require.NotNil(t, p)
	assert.Equal(t, "hablar", p.Verb)
	assert.Equal(t, ClassAR, p.Class)
	assert.Equal(t, "hablo", p.Spanish[Yo])
	assert.Equal(t, "hablan", p.Spanish[Ellos])
	assert.Equal(t, "yuweka", p.NasaYuwe[Past])

	p = e.Paradigm("cantar")
	require.NotNil(t, p)
	assert.Empty(t, p.NasaYuwe)
	assert.Equal(t, "cantamos", p.Spanish[Nosotros])

	assert.Nil(t, e.Paradigm("xyz"))
}

func TestPluralize(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "casas", e.PluralizeSpanish("casa"))
	assert.Equal(t, "luces", e.PluralizeSpanish("luz"))
	assert.Equal(t, "árboles", e.PluralizeSpanish("árbol"))
	assert.Equal(t, "sofás", e.PluralizeSpanish("sofá"))
	assert.Equal(t, "", e.PluralizeSpanish(""))
	assert.Equal(t, "palawe", e.PluralizeNasaYuwe("pala"))
	assert.Equal(t, "palawe", e.Pluralize("pala", NasaYuwe))
	assert.Equal(t, "pala", e.Pluralize("pala", Language("quechua")))
}

func TestGender(t *testing.T) {
	e := testEngine()
	assert.Equal(t, Masculine, e.Gender("perro"))
	assert.Equal(t, Feminine, e.Gender("casa"))
	assert.Equal(t, Neutral, e.Gender("madre"))
	assert.Equal(t, Neutral, e.Gender("sol"))
}

func TestTranslateNoun(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "pala", e.TranslateNoun("casa", Spanish, NasaYuwe))
	assert.Equal(t, "palawe", e.TranslateNoun("casas", Spanish, NasaYuwe))
	assert.Equal(t, "tutxawe", e.TranslateNoun("árboles", Spanish, NasaYuwe))
	assert.Equal(t, "ẽsxwe", e.TranslateNoun("luces", Spanish, NasaYuwe))
	assert.Equal(t, "casa", e.TranslateNoun("pala", NasaYuwe, Spanish))
	assert.Equal(t, "gatos", e.TranslateNoun("gatos", Spanish, NasaYuwe))
}

func TestPluralNounsTranslateToPluralNasaYuwe(t *testing.T) {
	e := testEngine()
	for _, entry := range testEntries() {
		if e.Classify(entry.Word) != Noun {
			continue
		}
		plural := e.PluralizeSpanish(entry.Word)
		assert.Equal(t, entry.Translation+"we", e.TranslateNoun(plural, Spanish, NasaYuwe), "plural %q", plural)
	}
}

func TestAgreeSpanishAdjective(t *testing.T) {
	e := testEngine()
	tests := []struct {
		adj    string
		gender Gender
		number Number
		want   string
	}{
		{"bonito", Masculine, Singular, "bonito"},
		{"bonito", Feminine, Singular, "bonita"},
		{"bonito", Masculine, Plural, "bonitos"},
		{"bonito", Feminine, Plural, "bonitas"},
		{"alegre", Feminine, Singular, "alegre"},
		{"alegre", Masculine, Plural, "alegres"},
		{"alegre", Feminine, Plural, "alegres"},
		{"azul", Feminine, Plural, "azul"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.AgreeSpanishAdjective(tt.adj, tt.gender, tt.number),
			"AgreeSpanishAdjective(%q, %s, %s)", tt.adj, tt.gender, tt.number)
	}
}

func TestTranslateAdjective(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "kwetsa", e.TranslateAdjective("bonito", Spanish, NasaYuwe))
	assert.Equal(t, "ũskate", e.TranslateAdjective("alegre", Spanish, NasaYuwe))
	assert.Equal(t, "bonito", e.TranslateAdjective("kwet", NasaYuwe, Spanish))
	assert.Equal(t, "famoso", e.TranslateAdjective("famoso", Spanish, NasaYuwe))
}

func TestDetectTemporalContext(t *testing.T) {
	e := testEngine()

	tc := e.DetectTemporalContext("ayer fui a casa", Spanish)
	assert.Contains(t, tc.Markers, "ayer")
	assert.Equal(t, Past, tc.Tense)

	tc = e.DetectTemporalContext("Ayer pensé en mañana", Spanish)
	assert.Equal(t, []string{"ayer", "mañana"}, tc.Markers)
	assert.Equal(t, Future, tc.Tense)

	tc = e.DetectTemporalContext("salgo en la noche", Spanish)
	assert.Equal(t, []string{"en la noche"}, tc.Markers)
	assert.Equal(t, Present, tc.Tense)

	tc = e.DetectTemporalContext("ayer", NasaYuwe)
	assert.Empty(t, tc.Markers)
}

func TestDetectQuestionType(t *testing.T) {
	e := testEngine()

	qc := e.DetectQuestionType("¿Qué hora es?", Spanish)
	assert.True(t, qc.IsQuestion)
	assert.Equal(t, What, qc.Type)
	assert.Equal(t, "kwe", qc.Particle)

	qc = e.DetectQuestionType("¿Dónde vives", Spanish)
	assert.True(t, qc.IsQuestion)
	assert.Equal(t, Where, qc.Type)
	assert.Equal(t, "naa", qc.Particle)

	// "por qué" contains "qué", which comes first in the table
	qc = e.DetectQuestionType("¿Por qué?", Spanish)
	assert.Equal(t, What, qc.Type)

	qc = e.DetectQuestionType("vienes mañana?", Spanish)
	assert.True(t, qc.IsQuestion)
	assert.Empty(t, qc.Particle)

	qc = e.DetectQuestionType("la casa", Spanish)
	assert.False(t, qc.IsQuestion)
}

func TestEnhanceTranslation(t *testing.T) {
	e := New([]Entry{{Word: "casa", Translation: "pala", Note: "sustantivo"}})
	assert.Equal(t, "la pala", e.EnhanceTranslation("la casa", Spanish, NasaYuwe))
	assert.Equal(t, "la pala!", e.EnhanceTranslation("la   casa!", Spanish, NasaYuwe))
	assert.Equal(t, "La pala!", e.EnhanceTranslation("¡La casa!", Spanish, NasaYuwe))
	assert.Equal(t, "la casa", e.EnhanceTranslation("la pala", NasaYuwe, Spanish))
	assert.Equal(t, "", e.EnhanceTranslation("   ", Spanish, NasaYuwe))
}

func TestEnhanceTranslationKnownWords(t *testing.T) {
	e := testEngine()
	for _, entry := range testEntries() {
		got := e.EnhanceTranslation(entry.Word, Spanish, NasaYuwe)
		assert.True(t, strings.Contains(got, entry.Translation), "%q → %q", entry.Word, got)
	}
}

func TestEnhanceTranslationPunctuation(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "pala, nxhi.", e.EnhanceTranslation("casa, madre.", Spanish, NasaYuwe))
	assert.Equal(t, "hablar", e.EnhanceTranslation("yuwe-", NasaYuwe, Spanish))
	assert.Equal(t, "agua", e.EnhanceTranslation("yu’", NasaYuwe, Spanish))
	assert.Equal(t, "?", e.EnhanceTranslation("?", Spanish, NasaYuwe))
}

func TestEnhanceTranslationQuotedWords(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "pala'", e.EnhanceTranslation("'casa'", Spanish, NasaYuwe))
	assert.Equal(t, "pala',", e.EnhanceTranslation("'casa',", Spanish, NasaYuwe))
	assert.Equal(t, "'xyz'", e.EnhanceTranslation("'xyz'", Spanish, NasaYuwe))
	// the glottal stop is part of the word when the word is known
	assert.Equal(t, "agua", e.EnhanceTranslation("yu'", NasaYuwe, Spanish))
}

func TestEnhanceReportsDictionaryHits(t *testing.T) {
	e := testEngine()

	out, found := e.Enhance("¡Hola amigo!", Spanish, NasaYuwe)
	assert.Equal(t, "Hola amigo!", out)
	assert.False(t, found)

	out, found = e.Enhance("hola casa", Spanish, NasaYuwe)
	assert.Equal(t, "hola pala", out)
	assert.True(t, found)

	out, found = e.Enhance("yuwe-", NasaYuwe, Spanish)
	assert.Equal(t, "hablar", out)
	assert.True(t, found)

	out, found = e.EnhanceContextual("¿Qué hora es?", Spanish, NasaYuwe)
	assert.True(t, found, "question particle inserted: %q", out)

	_, found = e.EnhanceContextual("hola amigo", Spanish, NasaYuwe)
	assert.False(t, found)

	_, found = e.EnhanceContextual("la casa", Spanish, Spanish)
	assert.False(t, found)
}

func TestEnhancedContextualTranslation(t *testing.T) {
	e := testEngine()

	for _, text := range []string{"la casa", "¿Qué hora es?", ""} {
		assert.Equal(t, text, e.EnhancedContextualTranslation(text, Spanish, Spanish))
		assert.Equal(t, text, e.EnhancedContextualTranslation(text, NasaYuwe, NasaYuwe))
	}

	got := e.EnhancedContextualTranslation("ayer fui a casa", Spanish, NasaYuwe)
	assert.True(t, strings.HasPrefix(got, "ksxaw "), got)
	assert.Equal(t, "ksxaw ayer fui a pala", got)

	assert.Equal(t, "kwe Qué pala?", e.EnhancedContextualTranslation("¿Qué casa?", Spanish, NasaYuwe))
	assert.Equal(t, "wejxa ksxaw ayer y mañana", e.EnhancedContextualTranslation("ayer y mañana", Spanish, NasaYuwe))
	// temporal words are only rendered for Nasa Yuwe targets
	assert.Equal(t, "ayer casa", e.EnhancedContextualTranslation("ayer pala", NasaYuwe, Spanish))
}

func TestTranslateWord(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "pala", e.TranslateWord("casa", Spanish, NasaYuwe))
	assert.Equal(t, "yuwewe", e.TranslateWord("hablo", Spanish, NasaYuwe))
	assert.Equal(t, "palawe", e.TranslateWord("casas", Spanish, NasaYuwe))
	assert.Equal(t, "gato", e.TranslateWord("gato", Spanish, NasaYuwe))
	assert.Equal(t, "casa", e.TranslateWord("pala", NasaYuwe, Spanish))
	assert.Equal(t, "habla", e.TranslateWord("yuwewe", NasaYuwe, Spanish))
	assert.Equal(t, "kiwe", e.TranslateWord("kiwe", NasaYuwe, Spanish))
}

func TestApplyMorphology(t *testing.T) {
	e := testEngine()
	got := e.ApplyMorphology("kwet", MorphologyFeatures{
		Person:    "1sg",
		Aspect:    "completive",
		Direction: "up",
		Negated:   true,
	})
	assert.Equal(t, "kwe ũ kwettx ksxa", got)
	assert.Equal(t, "kwet", e.ApplyMorphology("kwet", MorphologyFeatures{Person: "4sg"}))
	assert.Equal(t, "kwet", e.ApplyMorphology("kwet", MorphologyFeatures{}))
}

func TestParseLanguage(t *testing.T) {
	l, ok := ParseLanguage(" Nasa_Yuwe ")
	assert.True(t, ok)
	assert.Equal(t, NasaYuwe, l)
	_, ok = ParseLanguage("sikuani")
	assert.False(t, ok)
}
