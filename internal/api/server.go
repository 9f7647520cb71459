// Package api exposes the tracker as a local JSON API for other tools on the machine.
package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/tracker"
	"github.com/faizmokh/makan/internal/version"
	"github.com/faizmokh/makan/internal/workout"
)

// Server holds shared dependencies for all route handlers.
type Server struct {
	tracker *tracker.Tracker
	logger  *log.Logger
	router  *gin.Engine
}

// NewServer builds the router. The logger receives internal errors.
func NewServer(tr *tracker.Tracker, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetTrustedProxies(nil)

	s := &Server{tracker: tr, logger: logger, router: router}
	s.registerRoutes(router)
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/version", func(c *gin.Context) { c.JSON(http.StatusOK, version.Current()) })
	api.GET("/days/:date", s.getDay)
	api.POST("/days/:date/food", s.createFood)
	api.DELETE("/days/:date/food/:id", s.deleteFood)
	api.POST("/days/:date/workouts", s.createWorkout)
	api.DELETE("/days/:date/workouts/:id", s.deleteWorkout)
	api.PUT("/days/:date/weight", s.putWeight)
	api.DELETE("/days/:date/weight", s.deleteWeight)
	api.GET("/library", s.listLibrary)
	api.POST("/library", s.createLibraryItem)
	api.PUT("/library/:id", s.updateLibraryItem)
	api.DELETE("/library/:id", s.deleteLibraryItem)
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// fail maps domain errors to status codes. Anything unrecognised is logged
// and reported as a 500 without detail.
func (s *Server) fail(c *gin.Context, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		apiError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, nutrition.ErrItemNotFound):
		apiError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, workout.ErrDraftEmpty):
		apiError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrDuplicateID):
		apiError(c, http.StatusConflict, err.Error())
	default:
		s.logger.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
		apiError(c, http.StatusInternalServerError, "internal error")
	}
}

// dateParam reads :date, accepting "today".
func (s *Server) dateParam(c *gin.Context) (ledger.Date, bool) {
	raw := c.Param("date")
	if raw == "today" {
		return s.tracker.Today(), true
	}
	date, err := ledger.ParseDate(raw)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}
