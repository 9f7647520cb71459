package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faizmokh/makan/internal/nutrition"
)

type libraryItemBody struct {
	Name  *string `json:"name"`
	Basis *string `json:"basis"`
	nutrition.Macros
}

// listLibrary returns library items, filtered by ?search= when given.
// GET /api/library
func (s *Server) listLibrary(c *gin.Context) {
	c.JSON(http.StatusOK, s.tracker.Library().Search(c.Query("search")))
}

// createLibraryItem saves a new profile.
// POST /api/library. Body: { "name", "basis": "g"|"unit", "carbs", "protein", "fat", "fiber" }.
func (s *Server) createLibraryItem(c *gin.Context) {
	var body libraryItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	item := nutrition.LibraryItem{Basis: nutrition.BasisPer100g, Macros: body.Macros}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Basis != nil {
		basis, err := nutrition.ParseBasis(*body.Basis)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Basis = basis
	}

	saved, err := s.tracker.SaveLibraryItem(c, item)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// updateLibraryItem replaces a profile's fields. Omitted name and basis keep
// their current values; macros are always replaced.
// PUT /api/library/:id
func (s *Server) updateLibraryItem(c *gin.Context) {
	item, ok := s.tracker.Library().Get(c.Param("id"))
	if !ok {
		apiError(c, http.StatusNotFound, "library item not found")
		return
	}

	var body libraryItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Basis != nil {
		basis, err := nutrition.ParseBasis(*body.Basis)
		if err != nil {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Basis = basis
	}
	item.Macros = body.Macros

	saved, err := s.tracker.SaveLibraryItem(c, item)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// deleteLibraryItem removes a profile. Logged entries keep their macros.
// DELETE /api/library/:id
func (s *Server) deleteLibraryItem(c *gin.Context) {
	deleted, err := s.tracker.DeleteLibraryItem(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if !deleted {
		apiError(c, http.StatusNotFound, "library item not found")
		return
	}
	c.Status(http.StatusNoContent)
}
