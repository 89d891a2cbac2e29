// Package api exposes the translator as a JSON REST API.
//
// Endpoints:
//
//	POST /api/translate-text  body: {"text","source_lang","target_lang"}
//	POST /api/enhance         body: {"text","source_lang","target_lang"}
//	POST /api/context         body: {"text","source_lang"}
//	POST /api/morphology      body: {"word","person","aspect","direction","negated"}
//	GET  /api/classify?word=<word>
//	GET  /api/conjugate?verb=<verb>&person=<person>[&lang=nasa_yuwe&tense=<tense>]
//	GET  /api/paradigm?verb=<verb>
//	GET  /api/pluralize?word=<word>[&lang=<lang>]
//	GET  /api/verbs
//	GET  /api/info
//	POST /add_word            body: {"spanish_word","nasa_yuwe_translation","context"}
//	POST /api/feedback        body: {"original_text","corrected_translation","source_lang","target_lang"}
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasayuwe/yuwe/internal/logging"
	"github.com/nasayuwe/yuwe/internal/store"
	"github.com/nasayuwe/yuwe/internal/translation"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Deps are the services used by the handlers.
type Deps struct {
	Engines    translation.EngineSource
	Translator *translation.Service
	Store      *store.Store
	// MaxTextLength bounds request texts, in characters; zero means no
	// limit.
	MaxTextLength int
	// RateLimit is the number of requests per second allowed per client
	// on the /api routes, with bursts of RateBurst. Zero disables it.
	RateLimit float64
	RateBurst int
	// CacheKind is reported by /api/info.
	CacheKind string
	Version   VersionInfo
}

// NewRouter builds the gin engine serving all endpoints.
func NewRouter(d *Deps) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(gin.Recovery())
	engine.Use(logging.RequestID())
	engine.Use(logging.GinMiddleware())
	engine.NoMethod(func(ctx *gin.Context) {
		writeError(ctx, http.StatusMethodNotAllowed, "método no permitido")
	})
	engine.NoRoute(func(ctx *gin.Context) {
		writeError(ctx, http.StatusNotFound, "recurso no encontrado")
	})

	apiRoutes := engine.Group("/api")
	apiRoutes.Use(RateLimit(d.RateLimit, d.RateBurst))
	apiRoutes.POST("/translate-text", handleTranslateText(d))
	apiRoutes.POST("/enhance", handleEnhance(d))
	apiRoutes.POST("/context", handleContext(d))
	apiRoutes.POST("/morphology", handleMorphology(d))
	apiRoutes.GET("/classify", handleClassify(d))
	apiRoutes.GET("/conjugate", handleConjugate(d))
	apiRoutes.GET("/paradigm", handleParadigm(d))
	apiRoutes.GET("/pluralize", handlePluralize(d))
	apiRoutes.GET("/verbs", handleVerbs(d))
	apiRoutes.GET("/info", handleInfo(d))
	apiRoutes.POST("/feedback", handleFeedback(d))

	engine.POST("/add_word", handleAddWord(d))

	return engine
}
