package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
)

func (s *Server) ListEvents(c *gin.Context) {
	var query struct {
		Query      string `form:"query"`
		Category   string `form:"category"`
		Location   string `form:"location"`
		MoodEnergy string `form:"moodEnergy"`
		PageToken  string `form:"pageToken"`
		PageSize   string `form:"pageSize"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pageSize := 0
	if raw := strings.TrimSpace(query.PageSize); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, eventdomain.ErrInvalidPageSize)
			return
		}
		pageSize = parsed
	}

	resp, err := s.eventSvc.List(c.Request.Context(), eventdomain.ListRequest{
		Query:      strings.TrimSpace(query.Query),
		Category:   strings.TrimSpace(query.Category),
		Location:   strings.TrimSpace(query.Location),
		MoodEnergy: strings.TrimSpace(query.MoodEnergy),
		PageToken:  strings.TrimSpace(query.PageToken),
		PageSize:   pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEvent resolves the path parameter as an id first and falls back to a
// slug lookup so shared links keep working.
func (s *Server) GetEvent(c *gin.Context) {
	key := strings.TrimSpace(c.Param("id"))
	if key == "" {
		AbortWithError(c, eventdomain.ErrInvalidID)
		return
	}

	resp, err := s.eventSvc.GetByID(c.Request.Context(), key)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, slugErr := s.eventSvc.GetBySlug(c.Request.Context(), key)
	if slugErr != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
