package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/workout"
)

// getDay returns the summary for a date.
// GET /api/days/:date
func (s *Server) getDay(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	sum := s.tracker.Summary(date)
	if sum.Food == nil {
		sum.Food = []ledger.FoodEntry{}
	}
	if sum.Workouts == nil {
		sum.Workouts = []ledger.WorkoutSession{}
	}
	c.JSON(http.StatusOK, sum)
}

// createFood logs an entry. Body is either a library reference
// { "from": "id or name", "quantity"? } or a manual entry
// { "name", "quantity"?, "unit"?, "carbs", "protein", "fat", "fiber" }.
// POST /api/days/:date/food
func (s *Server) createFood(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}

	var body struct {
		From     string   `json:"from"`
		Name     string   `json:"name"`
		Quantity *float64 `json:"quantity"`
		Unit     string   `json:"unit"`
		nutrition.Macros
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		entry ledger.FoodEntry
		err   error
	)
	if strings.TrimSpace(body.From) != "" {
		entry, err = s.tracker.LogFromLibrary(c, date, body.From, body.Quantity)
	} else {
		portion := nutrition.Blank().WithMacros(body.Macros)
		portion.Name = body.Name
		if body.Unit != "" {
			unit, uerr := nutrition.ParseUnit(body.Unit)
			if uerr != nil {
				apiError(c, http.StatusBadRequest, uerr.Error())
				return
			}
			portion = portion.WithUnit(unit)
			if unit == nutrition.UnitCount {
				portion = portion.WithQuantity(1)
			}
		}
		if body.Quantity != nil {
			portion = portion.WithQuantity(*body.Quantity)
		}
		entry, err = s.tracker.LogFood(c, date, portion)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// deleteFood removes a food entry.
// DELETE /api/days/:date/food/:id
func (s *Server) deleteFood(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	removed, err := s.tracker.RemoveFood(c, date, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if !removed {
		apiError(c, http.StatusNotFound, "food entry not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// createWorkout logs a finished session.
// POST /api/days/:date/workouts. Body: { "duration_minutes"?, "exercises": [...] }.
// Omitted duration defaults to 30 minutes.
func (s *Server) createWorkout(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}

	var body struct {
		DurationMinutes *int              `json:"duration_minutes"`
		Exercises       []ledger.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	draft := workout.NewDraft()
	for _, ex := range body.Exercises {
		ex.ID = ""
		if _, err := draft.Add(ex); err != nil {
			s.fail(c, err)
			return
		}
	}
	minutes := workout.DefaultDurationMinutes
	if body.DurationMinutes != nil {
		minutes = *body.DurationMinutes
	}

	session, err := s.tracker.FinishWorkout(c, date, draft, minutes)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// deleteWorkout removes a session.
// DELETE /api/days/:date/workouts/:id
func (s *Server) deleteWorkout(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	removed, err := s.tracker.RemoveWorkout(c, date, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if !removed {
		apiError(c, http.StatusNotFound, "workout not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// putWeight records the weight for a date, replacing any earlier value.
// PUT /api/days/:date/weight. Body: { "lbs": 150.2 }.
func (s *Server) putWeight(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}

	var body struct {
		Lbs *float64 `json:"lbs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "lbs is required")
		return
	}
	sample, err := s.tracker.LogWeight(c, date, *body.Lbs)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sample)
}

// deleteWeight clears the weight for a date.
// DELETE /api/days/:date/weight
func (s *Server) deleteWeight(c *gin.Context) {
	date, ok := s.dateParam(c)
	if !ok {
		return
	}
	if err := s.tracker.ClearWeight(c, date); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
