package demoserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"agentverse-browser/internal/model"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"contents": len(s.catalog.items),
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: "query is required"})
		return
	}

	params := model.SearchParams{
		Query:          query,
		ContentType:    c.Query("content_type"),
		AgentType:      c.Query("agent_type"),
		SourcePlatform: c.Query("source_platform"),
		SortBy:         c.DefaultQuery("sort_by", model.SortRelevance),
		Page:           intQuery(c, "page", 1),
		PageSize:       intQuery(c, "page_size", model.DefaultPageSize),
	}
	if tags := c.Query("tags"); tags != "" {
		params.Tags = strings.Split(tags, ",")
	}

	c.JSON(http.StatusOK, s.catalog.Search(params))
}

func (s *Server) handleContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Detail: "invalid content id"})
		return
	}

	item, ok := s.catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Detail: "Content not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Stats())
}

func (s *Server) handleRecent(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Recent(intQuery(c, "limit", 12)))
}

func (s *Server) handleFeatured(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Featured(intQuery(c, "limit", 6)))
}

func (s *Server) handlePlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Platforms())
}

func (s *Server) handleAgentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.AgentTypes())
}

func (s *Server) handleContentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.ContentTypes())
}

func (s *Server) handleTags(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Tags())
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
