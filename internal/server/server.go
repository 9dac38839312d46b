// Package server exposes the layout engine over a JSON HTTP API.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cladplan/cladplan/internal/engine"
	"github.com/cladplan/cladplan/internal/model"
	"github.com/cladplan/cladplan/internal/project"
)

// Server is the HTTP API for layout, comparison, and catalog queries.
type Server struct {
	port         int
	presetPath   string
	templatePath string
}

// New creates a server for the given port, backed by the default
// preset and template stores.
func New(port int) *Server {
	return &Server{
		port:         port,
		presetPath:   project.DefaultPresetPath(),
		templatePath: project.DefaultTemplatePath(),
	}
}

// LayoutRequest is the body for POST /api/layout.
type LayoutRequest struct {
	Wall       model.WallSurface     `json:"wall"`
	Panel      model.PanelSpec       `json:"panel"`
	Exclusions []model.ExclusionZone `json:"exclusions"`
}

// CompareRequest is the body for POST /api/compare.
type CompareRequest struct {
	Wall       model.WallSurface           `json:"wall"`
	Exclusions []model.ExclusionZone       `json:"exclusions"`
	Scenarios  []engine.ComparisonScenario `json:"scenarios"`
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/api/health", s.handleHealth)
	r.POST("/api/layout", s.handleLayout)
	r.POST("/api/compare", s.handleCompare)
	r.GET("/api/presets", s.handlePresets)
	r.GET("/api/templates", s.handleTemplates)

	return r
}

// Start launches the HTTP server. It blocks until the server exits.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("CladPlan server starting on http://localhost%s", addr)
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLayout(c *gin.Context) {
	var req LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := engine.Layout(req.Wall, req.Panel, req.Exclusions)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCompare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Scenarios) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no scenarios provided"})
		return
	}

	results := engine.CompareScenarios(req.Wall, req.Exclusions, req.Scenarios)
	c.JSON(http.StatusOK, results)
}

func (s *Server) handlePresets(c *gin.Context) {
	catalog, err := project.LoadPresets(s.presetPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

func (s *Server) handleTemplates(c *gin.Context) {
	store, err := project.LoadTemplates(s.templatePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, store)
}
