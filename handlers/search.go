package handlers

import (
	"net/http"

	listingRepo "agrirent/database/repository/listing"
	"agrirent/models"
	ai "agrirent/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var QueryInterpreter ai.QueryInterpreter

// InterpretSearch turns a free-text (voice-transcribed) query into a
// structured interpretation and returns the matching listings. When
// interpretation fails the search degrades to unfiltered results
// instead of erroring out.
func InterpretSearch(c *gin.Context) {
	var input models.InterpretRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	filter := listingRepo.ListingFilter{OnlyAvailable: true}
	var interpretation models.QueryInterpretation

	if QueryInterpreter == nil {
		listings, listErr := ListingRepo.List(c.Request.Context(), filter)
		if listErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search equipment", "details": listErr.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"interpretation": interpretation, "equipment": listings})
		return
	}

	result, err := QueryInterpreter.Interpret(c.Request.Context(), input.Query)
	if err != nil {
		zap.L().Warn("query interpretation failed, falling back to unfiltered search",
			zap.String("query", input.Query), zap.Error(err))
	} else {
		interpretation = result
		// The generic fallback type would match nothing as an exact
		// filter, so only a specific machine type narrows the search.
		if result.EquipmentType != ai.FallbackEquipmentType {
			filter.EquipmentType = result.EquipmentType
		}
		filter.Keywords = result.Keywords
	}

	listings, listErr := ListingRepo.List(c.Request.Context(), filter)
	if listErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search equipment", "details": listErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interpretation": interpretation,
		"equipment":      listings,
	})
}
