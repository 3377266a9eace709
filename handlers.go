package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"buzzkill/internal/solver"
)

// SolveRequest is the boundary payload for a solve call.
type SolveRequest struct {
	Pool       string `json:"pool"`
	Center     string `json:"center"`
	UseCurated bool   `json:"useCurated"`
}

// solveHandler validates the request, matches the chosen corpus against the
// puzzle rules, and returns the grouped results. Validation failures are
// client errors; a mechanically successful solve with zero matches is a soft
// "error" status with HTTP 200, matching the wire contract.
func (app *App) solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": StatusError, "message": ErrorBadRequest})
		return
	}
	if strings.TrimSpace(req.Pool) == "" || strings.TrimSpace(req.Center) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": StatusError, "message": ErrorMissingInput})
		return
	}

	pool, err := solver.NewLetterPool(req.Pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": StatusError, "message": err.Error()})
		return
	}
	center, err := solver.NewCenterLetter(req.Center)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": StatusError, "message": err.Error()})
		return
	}

	chosen := app.Provider.Select(req.UseCurated)
	matches := solver.Match(pool, center, chosen)
	if len(matches) == 0 {
		logInfo("No matches for pool %s center %c (corpus: %d words)", pool, center, chosen.Len())
		c.JSON(http.StatusOK, gin.H{"status": StatusError, "message": ErrorNoMatches})
		return
	}

	grouped := solver.Group(matches)
	logInfo("Solved pool %s center %c: %d words", pool, center, grouped.Total())
	c.JSON(http.StatusOK, gin.H{
		"status": StatusSuccess,
		"result": grouped.Result,
		"counts": grouped.Counts,
	})
}

// indexHandler describes the API; there is no HTML front end.
func (app *App) indexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "buzzkill",
		"solve":   "POST /solve with JSON body {pool, center, useCurated}",
		"health":  "GET /healthz",
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"env":           map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"curated_words": app.Provider.Curated().Len(),
		"generic_words": app.Provider.Generic().Len(),
		"uptime":        formatUptime(uptime),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}
