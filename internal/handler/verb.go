package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verbquiz/api/internal/catalog"
)

type VerbHandler struct {
	catalog *catalog.Catalog
}

func NewVerbHandler(cat *catalog.Catalog) *VerbHandler {
	return &VerbHandler{catalog: cat}
}

// List returns the full catalog, alphabetical by infinitive.
func (h *VerbHandler) List(c *gin.Context) {
	verbs, err := h.catalog.ListVerbs()
	if err != nil {
		log.Printf("Failed to list verbs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, verbs)
}
