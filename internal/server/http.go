// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/heartsim/pkg/session"
)

// HTTPServer exposes the game API over HTTP.
type HTTPServer struct {
	server  *http.Server
	engine  *gin.Engine
	port    int
	manager *session.Manager
}

// NewHTTPServer creates a new HTTP server instance.
func NewHTTPServer(port int, manager *session.Manager, environment string) *HTTPServer {
	if environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &HTTPServer{
		port:    port,
		manager: manager,
	}
}

// Setup configures routes and middleware.
func (h *HTTPServer) Setup() error {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.POST("/sessions", h.createSession)
		api.GET("/sessions/:id", h.getSession)
		api.GET("/sessions/:id/activities", h.listActivities)
		api.GET("/sessions/:id/dates", h.listScenarios)
		api.GET("/sessions/:id/matches", h.browseMatches)
		api.POST("/sessions/:id/activities/:activityID", h.performActivity)
		api.POST("/sessions/:id/dates/:scenarioID", h.startDate)
		api.POST("/sessions/:id/dialogue", h.advanceDialogue)
		api.POST("/sessions/:id/dates/complete", h.completeDate)
		api.DELETE("/sessions/:id/dates", h.cancelDate)
		api.POST("/sessions/:id/events", h.resolveEvent)
		api.POST("/swipes/:partnerID", h.swipe)
	}

	h.engine = engine
	h.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", h.port),
		Handler: engine,
	}

	return nil
}

// Start begins serving the game API on the configured port.
func (h *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("http server listening on port %d", h.port)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("http server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (h *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down http server...")
	if err := h.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("http server stopped")
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("handled request")
	}
}

// commandResponse is the envelope for every state-changing call.
// Applied is false when the command was a gameplay no-op; the session
// is returned unchanged in that case.
type commandResponse struct {
	Applied       bool                   `json:"applied"`
	Session       *session.Session       `json:"session"`
	Notifications []session.Notification `json:"notifications,omitempty"`
}

func (h *HTTPServer) createSession(c *gin.Context) {
	var setup session.Setup
	if err := c.ShouldBindJSON(&setup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid setup: %v", err)})
		return
	}

	s, err := h.manager.Initialize(c.Request.Context(), setup)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *HTTPServer) getSession(c *gin.Context) {
	s, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *HTTPServer) listActivities(c *gin.Context) {
	s, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s.Activities())
}

func (h *HTTPServer) listScenarios(c *gin.Context) {
	s, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, s.AvailableScenarios())
}

func (h *HTTPServer) browseMatches(c *gin.Context) {
	matches, err := h.manager.BrowseMatches(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *HTTPServer) performActivity(c *gin.Context) {
	s, notes, applied, err := h.manager.PerformActivity(c.Request.Context(), c.Param("id"), c.Param("activityID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s, Notifications: notes})
}

func (h *HTTPServer) startDate(c *gin.Context) {
	s, applied, err := h.manager.StartDate(c.Request.Context(), c.Param("id"), c.Param("scenarioID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s})
}

type dialogueRequest struct {
	OptionIndex int `json:"option_index"`
}

func (h *HTTPServer) advanceDialogue(c *gin.Context) {
	var req dialogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	s, applied, err := h.manager.AdvanceDialogue(c.Request.Context(), c.Param("id"), req.OptionIndex)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s})
}

func (h *HTTPServer) completeDate(c *gin.Context) {
	s, notes, applied, err := h.manager.CompleteDate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s, Notifications: notes})
}

func (h *HTTPServer) cancelDate(c *gin.Context) {
	s, applied, err := h.manager.CancelDate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s})
}

type eventRequest struct {
	ChoiceIndex int `json:"choice_index"`
}

func (h *HTTPServer) resolveEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	s, notes, applied, err := h.manager.ResolveEvent(c.Request.Context(), c.Param("id"), req.ChoiceIndex)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commandResponse{Applied: applied, Session: s, Notifications: notes})
}

func (h *HTTPServer) swipe(c *gin.Context) {
	matched, err := h.manager.Swipe(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matched": matched})
}
