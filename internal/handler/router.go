package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markusluicellas/luibot/internal/config"
	"github.com/markusluicellas/luibot/internal/embedding"
	"github.com/markusluicellas/luibot/internal/llm"
	"github.com/markusluicellas/luibot/internal/service"
	"github.com/markusluicellas/luibot/internal/store"
)

// Dependencies carries the collaborators the router wires into handlers.
type Dependencies struct {
	Store      store.Store
	Embedder   embedding.Embedder
	Generator  llm.Generator
	Dispatcher service.Dispatcher
}

func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// Health check endpoints
	r.GET("/health", healthCheck)
	r.GET("/ready", readinessCheck)
	r.GET("/live", livenessCheck)

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":      "LuiBot FAQ Service",
			"version":      "1.0.0",
			"status":       "running",
			"health_check": "/health",
		})
	})

	// Initialize services
	ingestSvc := service.NewIngestService(deps.Store, deps.Embedder, cfg.WindowSize, cfg.WindowOverlap)
	retrievalSvc := service.NewRetrievalService(deps.Store, cfg.TopK)
	answerSvc := service.NewAnswerService(deps.Embedder, retrievalSvc, deps.Generator, deps.Dispatcher)

	// Initialize handlers
	ingestHandler := NewIngestHandler(ingestSvc)
	askHandler := NewAskHandler(answerSvc)
	documentHandler := NewDocumentHandler(deps.Store)

	// API v1
	v1 := r.Group("/v1")
	{
		v1.POST("/ingest/text", ingestHandler.IngestText)
		v1.POST("/ask", askHandler.Ask)

		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.List)
			documents.DELETE("/:id", documentHandler.Delete)
		}
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "luibot",
	})
}

func readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

func livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
