package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/nasayuwe/yuwe"
	"github.com/nasayuwe/yuwe/internal/store"
	"github.com/nasayuwe/yuwe/internal/translation"
	"github.com/rs/zerolog/log"
)

// ---- JSON request and response types ------------------------------------

type textRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation  string               `json:"translation"`
	Method       translation.Method   `json:"method"`
	Confidence   float64              `json:"confidence"`
	TriedMethods []translation.Method `json:"tried_methods"`
	Cached       bool                 `json:"cached"`
	Status       string               `json:"status"`
}

type enhanceResponse struct {
	Translation string `json:"translation"`
	Status      string `json:"status"`
}

type contextResponse struct {
	Temporal yuwe.TemporalContext `json:"temporal"`
	Question yuwe.QuestionContext `json:"question"`
}

type morphologyRequest struct {
	Word string `json:"word"`
	yuwe.MorphologyFeatures
}

type morphologyResponse struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

type classifyResponse struct {
	Word     string        `json:"word"`
	Category yuwe.Category `json:"category"`
}

type conjugateResponse struct {
	Verb   string                `json:"verb"`
	Lang   yuwe.Language         `json:"lang"`
	Class  yuwe.ConjugationClass `json:"class,omitempty"`
	Person yuwe.Person           `json:"person,omitempty"`
	Tense  yuwe.Tense            `json:"tense,omitempty"`
	Form   string                `json:"form"`
}

type pluralizeResponse struct {
	Word   string        `json:"word"`
	Lang   yuwe.Language `json:"lang"`
	Plural string        `json:"plural"`
	Gender yuwe.Gender   `json:"gender,omitempty"`
}

type infoResponse struct {
	DictionaryEntries int      `json:"dictionary_entries"`
	Languages         []string `json:"languages"`
	Methods           []string `json:"methods"`
	Cache             string   `json:"cache"`
	VersionInfo
}

type addWordRequest struct {
	SpanishWord         string `json:"spanish_word"`
	NasaYuweTranslation string `json:"nasa_yuwe_translation"`
	Context             string `json:"context"`
}

type feedbackRequest struct {
	OriginalText         string `json:"original_text"`
	CorrectedTranslation string `json:"corrected_translation"`
	SourceLang           string `json:"source_lang"`
	TargetLang           string `json:"target_lang"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeError(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

// languagePair resolves the requested direction, defaulting to
// Spanish → Nasa Yuwe.
func languagePair(source, target string) (yuwe.Language, yuwe.Language, error) {
	if source == "" {
		source = string(yuwe.Spanish)
	}
	if target == "" {
		target = string(yuwe.NasaYuwe)
	}
	src, ok1 := yuwe.ParseLanguage(source)
	tgt, ok2 := yuwe.ParseLanguage(target)
	if !ok1 || !ok2 {
		return "", "", errors.New("solo se admite traducción entre español y nasa yuwe")
	}
	return src, tgt, nil
}

func (d *Deps) checkLength(text string) error {
	if d.MaxTextLength > 0 && utf8.RuneCountInString(text) > d.MaxTextLength {
		return fmt.Errorf("el texto excede el máximo de %d caracteres", d.MaxTextLength)
	}
	return nil
}

// bindText decodes and validates a textRequest. It writes the error
// response itself and reports whether the handler may continue.
func bindText(ctx *gin.Context, d *Deps) (textRequest, yuwe.Language, yuwe.Language, bool) {
	var req textRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "el cuerpo debe ser JSON válido")
		return req, "", "", false
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(ctx, http.StatusBadRequest, "no se proporcionó texto para traducir")
		return req, "", "", false
	}
	if err := d.checkLength(req.Text); err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return req, "", "", false
	}
	src, tgt, err := languagePair(req.SourceLang, req.TargetLang)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return req, "", "", false
	}
	return req, src, tgt, true
}

// ---- handlers -----------------------------------------------------------

func handleTranslateText(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req, src, tgt, ok := bindText(ctx, d)
		if !ok {
			return
		}
		if src == tgt {
			writeError(ctx, http.StatusBadRequest, "el idioma de origen y destino no pueden ser iguales")
			return
		}
		res := d.Translator.Translate(ctx.Request.Context(), req.Text, src, tgt)
		ctx.JSON(http.StatusOK, translateResponse{
			Translation:  res.Translation,
			Method:       res.Method,
			Confidence:   res.Confidence,
			TriedMethods: res.TriedMethods,
			Cached:       res.Cached,
			Status:       "success",
		})
	}
}

func handleEnhance(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req, src, tgt, ok := bindText(ctx, d)
		if !ok {
			return
		}
		out := d.Engines.Engine().EnhancedContextualTranslation(req.Text, src, tgt)
		ctx.JSON(http.StatusOK, enhanceResponse{Translation: out, Status: "success"})
	}
}

func handleContext(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req, src, _, ok := bindText(ctx, d)
		if !ok {
			return
		}
		e := d.Engines.Engine()
		ctx.JSON(http.StatusOK, contextResponse{
			Temporal: e.DetectTemporalContext(req.Text, src),
			Question: e.DetectQuestionType(req.Text, src),
		})
	}
}

func handleMorphology(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req morphologyRequest
		if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeError(ctx, http.StatusBadRequest, "el cuerpo debe ser JSON con un campo 'word' no vacío")
			return
		}
		result := d.Engines.Engine().ApplyMorphology(req.Word, req.MorphologyFeatures)
		ctx.JSON(http.StatusOK, morphologyResponse{Word: req.Word, Result: result})
	}
}

func handleClassify(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		word := ctx.Query("word")
		if word == "" {
			writeError(ctx, http.StatusBadRequest, "falta el parámetro 'word'")
			return
		}
		ctx.JSON(http.StatusOK, classifyResponse{
			Word:     word,
			Category: d.Engines.Engine().Classify(word),
		})
	}
}

func handleConjugate(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		verb := ctx.Query("verb")
		if verb == "" {
			writeError(ctx, http.StatusBadRequest, "falta el parámetro 'verb'")
			return
		}
		lang, ok := yuwe.ParseLanguage(ctx.DefaultQuery("lang", string(yuwe.Spanish)))
		if !ok {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("idioma %q no soportado", ctx.Query("lang")))
			return
		}
		e := d.Engines.Engine()

		if lang == yuwe.NasaYuwe {
			tense := yuwe.Tense(ctx.DefaultQuery("tense", string(yuwe.Present)))
			if _, ok := e.Rules().NasaTenseSuffix[tense]; !ok {
				writeError(ctx, http.StatusBadRequest, fmt.Sprintf("tiempo %q no soportado", tense))
				return
			}
			ctx.JSON(http.StatusOK, conjugateResponse{
				Verb:  verb,
				Lang:  lang,
				Tense: tense,
				Form:  e.ConjugateNasaYuwe(verb, tense),
			})
			return
		}

		person, ok := yuwe.ParsePerson(ctx.DefaultQuery("person", string(yuwe.Yo)))
		if !ok {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("persona %q no soportada", ctx.Query("person")))
			return
		}
		_, class := yuwe.VerbRoot(verb)
		ctx.JSON(http.StatusOK, conjugateResponse{
			Verb:   verb,
			Lang:   lang,
			Class:  class,
			Person: person,
			Form:   e.ConjugateSpanish(verb, person),
		})
	}
}

func handleParadigm(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		verb := ctx.Query("verb")
		if verb == "" {
			writeError(ctx, http.StatusBadRequest, "falta el parámetro 'verb'")
			return
		}
		p := d.Engines.Engine().Paradigm(verb)
		if p == nil {
			writeError(ctx, http.StatusNotFound, fmt.Sprintf("verbo %q no encontrado", verb))
			return
		}
		ctx.JSON(http.StatusOK, p)
	}
}

func handlePluralize(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		word := ctx.Query("word")
		if word == "" {
			writeError(ctx, http.StatusBadRequest, "falta el parámetro 'word'")
			return
		}
		lang, ok := yuwe.ParseLanguage(ctx.DefaultQuery("lang", string(yuwe.Spanish)))
		if !ok {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("idioma %q no soportado", ctx.Query("lang")))
			return
		}
		e := d.Engines.Engine()
		resp := pluralizeResponse{Word: word, Lang: lang, Plural: e.Pluralize(word, lang)}
		if lang == yuwe.Spanish {
			resp.Gender = e.Gender(word)
		}
		ctx.JSON(http.StatusOK, resp)
	}
}

func handleVerbs(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, d.Engines.Engine().VerbPatterns())
	}
}

func handleInfo(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, infoResponse{
			DictionaryEntries: d.Engines.Engine().Dictionary().Len(),
			Languages:         []string{string(yuwe.Spanish), string(yuwe.NasaYuwe)},
			Methods: []string{
				string(translation.MethodDictionary),
				string(translation.MethodEnhancedGrammar),
				string(translation.MethodGrammar),
				string(translation.MethodMorphology),
				string(translation.MethodFallback),
			},
			Cache:       d.CacheKind,
			VersionInfo: d.Version,
		})
	}
}

func handleAddWord(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req addWordRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			writeError(ctx, http.StatusBadRequest, "el cuerpo debe ser JSON válido")
			return
		}
		entry, err := d.Store.AddWord(req.SpanishWord, req.NasaYuweTranslation, req.Context)
		var wee *store.WordExistsError
		switch {
		case errors.Is(err, store.ErrMissingField):
			writeError(ctx, http.StatusBadRequest, "todos los campos son obligatorios")
			return
		case errors.As(err, &wee):
			writeError(ctx, http.StatusConflict, fmt.Sprintf("la palabra %q ya existe en el diccionario", wee.Word))
			return
		case err != nil:
			log.Error().Err(err).Str("word", req.SpanishWord).Msg("failed to add word")
			writeError(ctx, http.StatusInternalServerError, "error al agregar la palabra")
			return
		}
		ctx.JSON(http.StatusOK, statusResponse{
			Status:  "success",
			Message: fmt.Sprintf("palabra %q agregada exitosamente al diccionario", entry.Word),
		})
	}
}

func handleFeedback(d *Deps) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req feedbackRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			writeError(ctx, http.StatusBadRequest, "el cuerpo debe ser JSON válido")
			return
		}
		src, tgt, err := languagePair(req.SourceLang, req.TargetLang)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		err = d.Store.Feedback(req.OriginalText, req.CorrectedTranslation, src, tgt)
		switch {
		case errors.Is(err, store.ErrMissingField):
			writeError(ctx, http.StatusBadRequest, "se requiere texto original y traducción corregida")
			return
		case errors.Is(err, store.ErrUnsupportedDirection):
			writeError(ctx, http.StatusBadRequest, "solo se admite traducción entre español y nasa yuwe")
			return
		case err != nil:
			log.Error().Err(err).Msg("failed to apply feedback")
			writeError(ctx, http.StatusInternalServerError, "error al procesar la retroalimentación")
			return
		}
		ctx.JSON(http.StatusOK, statusResponse{
			Status:  "success",
			Message: "retroalimentación guardada exitosamente",
		})
	}
}
