package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medirisk/app"
	"medirisk/internal"
	"medirisk/internal/errors"
)

// Service exposes risk assessment as a JSON API for non-browser clients.
type Service struct {
	assessments *app.AssessmentService
	logger      *internal.Logger
	engine      *gin.Engine
}

// NewService builds the gin engine and routes.
func NewService(assessments *app.AssessmentService, logger *internal.Logger, mode string) *Service {
	if mode != "" {
		gin.SetMode(mode)
	}
	s := &Service{
		assessments: assessments,
		logger:      logger,
		engine:      gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Service) setupRoutes() {
	v1 := s.engine.Group("/api/v1")
	v1.GET("/models", s.handleListModels)
	v1.POST("/assessments", s.handleAssess)
	v1.GET("/assessments", s.handleHistory)
}

// Handler exposes the engine for serving and for tests.
func (s *Service) Handler() http.Handler {
	return s.engine
}

// Run starts the API server on the given address.
func (s *Service) Run(addr string) error {
	s.logger.Info("risk API listening on %s", addr)
	return s.engine.Run(addr)
}

func (s *Service) handleListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": s.assessments.ModelNames()})
}

func (s *Service) handleAssess(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	assessment, err := s.assessments.Assess(c.Request.Context(), req.Record(), req.Model)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeModelNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   errors.GetCode(err),
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, NewAssessResponse(assessment))
}

func (s *Service) handleHistory(c *gin.Context) {
	recent, err := s.assessments.History(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errors.CodeDatabaseError,
			"details": err.Error(),
		})
		return
	}

	out := make([]AssessResponse, len(recent))
	for i, a := range recent {
		out[i] = NewAssessResponse(a)
	}
	c.JSON(http.StatusOK, gin.H{"assessments": out})
}
