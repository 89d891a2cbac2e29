// Package translation chooses, for every request, the most reliable of
// several translation methods and caches the outcome.
package translation

import (
	"context"
	"errors"
	"strings"

	"github.com/nasayuwe/yuwe"
	"github.com/nasayuwe/yuwe/internal/cache"
	"github.com/rs/zerolog/log"
)

// Method names the strategy that produced a translation.
type Method string

const (
	MethodEmpty           Method = "empty"
	MethodDictionary      Method = "dictionary"
	MethodEnhancedGrammar Method = "enhanced_grammar"
	MethodGrammar         Method = "grammar"
	MethodMorphology      Method = "morphology"
	MethodFallback        Method = "fallback"
)

var confidence = map[Method]float64{
	MethodEmpty:           0,
	MethodDictionary:      0.80,
	MethodEnhancedGrammar: 0.90,
	MethodGrammar:         0.90,
	MethodMorphology:      0.60,
	MethodFallback:        0.10,
}

// Confidence returns the fixed confidence score of m.
func Confidence(m Method) float64 {
	return confidence[m]
}

// Result is the outcome of Service.Translate.
type Result struct {
	Translation  string   `json:"translation"`
	Method       Method   `json:"method"`
	Confidence   float64  `json:"confidence"`
	TriedMethods []Method `json:"tried_methods"`
	Cached       bool     `json:"cached"`
}

// EngineSource provides the current engine snapshot.
type EngineSource interface {
	Engine() *yuwe.Engine
	// Snapshot returns the current engine with its generation, which
	// changes whenever the engine is replaced.
	Snapshot() (*yuwe.Engine, uint64)
}

// Service runs the translation methods in order of reliability:
// whole-token dictionary lookup, contextual grammar, plain grammar,
// word-level morphology and finally the untranslated text.
type Service struct {
	engines EngineSource
	cache   cache.Cache
}

// NewService creates a Service. A nil cache disables caching.
func NewService(engines EngineSource, c cache.Cache) *Service {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Service{engines: engines, cache: c}
}

// Translate translates text from source to target. It never fails:
// cache errors are logged and the translation is computed anyway.
func (s *Service) Translate(ctx context.Context, text string, source, target yuwe.Language) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Method: MethodEmpty, TriedMethods: []Method{}}
	}

	engine, generation := s.engines.Snapshot()
	key := cache.Key(generation, string(source), string(target), text)
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return fromCacheEntry(cached)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Msg("translation cache lookup failed")
	}

	res := s.translate(engine, text, source, target)
	if err := s.cache.Set(ctx, key, toCacheEntry(res)); err != nil {
		log.Warn().Err(err).Msg("failed to store translation in cache")
	}
	return res
}

// Invalidate drops cached results, which become stale once the
// dictionary changes.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to flush translation cache")
	}
}

func (s *Service) translate(e *yuwe.Engine, text string, source, target yuwe.Language) Result {
	var tried []Method
	try := func(m Method, translation string, ok bool) (Result, bool) {
		tried = append(tried, m)
		if !ok {
			return Result{}, false
		}
		return Result{
			Translation:  translation,
			Method:       m,
			Confidence:   Confidence(m),
			TriedMethods: append([]Method(nil), tried...),
		}, true
	}

	if res, ok := try(dictionaryTranslation(e, text, source)); ok {
		return res
	}
	out, found := e.EnhanceContextual(text, source, target)
	if res, ok := try(MethodEnhancedGrammar, out, found && out != ""); ok {
		return res
	}
	out, found = e.Enhance(text, source, target)
	if res, ok := try(MethodGrammar, out, found && out != ""); ok {
		return res
	}
	if res, ok := try(morphologyTranslation(e, text, source, target)); ok {
		return res
	}
	res, _ := try(MethodFallback, text, true)
	return res
}

// dictionaryTranslation replaces whole whitespace-separated tokens found
// in the dictionary. It succeeds when at least one token was found.
func dictionaryTranslation(e *yuwe.Engine, text string, source yuwe.Language) (Method, string, bool) {
	tokens := strings.Fields(text)
	found := false
	for i, tok := range tokens {
		var (
			tr string
			ok bool
		)
		switch source {
		case yuwe.Spanish:
			tr, ok = e.LookupForward(tok)
		case yuwe.NasaYuwe:
			tr, ok = e.LookupReverse(tok)
		}
		if ok {
			tokens[i] = tr
			found = true
		}
	}
	return MethodDictionary, strings.Join(tokens, " "), found
}

// morphologyTranslation recovers inflected forms word by word.
func morphologyTranslation(e *yuwe.Engine, text string, source, target yuwe.Language) (Method, string, bool) {
	tokens := strings.Fields(text)
	changed := false
	for i, tok := range tokens {
		if tr := e.TranslateWord(tok, source, target); tr != tok {
			tokens[i] = tr
			changed = true
		}
	}
	return MethodMorphology, strings.Join(tokens, " "), changed
}

func toCacheEntry(r Result) cache.Entry {
	tried := make([]string, len(r.TriedMethods))
	for i, m := range r.TriedMethods {
		tried[i] = string(m)
	}
	return cache.Entry{
		Translation:  r.Translation,
		Method:       string(r.Method),
		Confidence:   r.Confidence,
		TriedMethods: tried,
	}
}

func fromCacheEntry(ce cache.Entry) Result {
	tried := make([]Method, len(ce.TriedMethods))
	for i, m := range ce.TriedMethods {
		tried[i] = Method(m)
	}
	return Result{
		Translation:  ce.Translation,
		Method:       Method(ce.Method),
		Confidence:   ce.Confidence,
		TriedMethods: tried,
		Cached:       true,
	}
}
