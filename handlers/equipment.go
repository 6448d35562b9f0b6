package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	listingRepo "agrirent/database/repository/listing"
	"agrirent/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ListingRepo listingRepo.ListingRepository

type equipmentInput struct {
	Name                string               `json:"name" binding:"required"`
	EquipmentType       string               `json:"equipmentType" binding:"required"`
	Village             string               `json:"village"`
	Rate                models.EquipmentRate `json:"rate"`
	DriverChargePerHour *float64             `json:"driverChargePerHour"`
	DeliveryFee         *float64             `json:"deliveryFee"`
	AvailabilityStatus  string               `json:"availabilityStatus"`
	Latitude            float64              `json:"latitude"`
	Longitude           float64              `json:"longitude"`
}

// CreateEquipment lists a new piece of equipment under the caller.
func CreateEquipment(c *gin.Context) {
	ownerID := c.GetString("userID")

	var input equipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	availability := models.EquipmentAvailability(input.AvailabilityStatus)
	if availability == "" {
		availability = models.EquipmentAvailable
	}
	if availability != models.EquipmentAvailable && availability != models.EquipmentMaintenance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown availability status"})
		return
	}

	listing := &models.EquipmentListing{
		ID:                  uuid.New().String(),
		OwnerID:             ownerID,
		Name:                input.Name,
		EquipmentType:       input.EquipmentType,
		Village:             input.Village,
		Rate:                input.Rate,
		DriverChargePerHour: input.DriverChargePerHour,
		DeliveryFee:         input.DeliveryFee,
		AvailabilityStatus:  availability,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
	}
	if err := ListingRepo.Create(c.Request.Context(), listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// ListEquipment returns marketplace listings, optionally filtered by
// equipment type and free-text keywords.
func ListEquipment(c *gin.Context) {
	filter := listingRepo.ListingFilter{
		EquipmentType: c.Query("equipmentType"),
		OnlyAvailable: c.Query("onlyAvailable") == "true",
	}
	if kw := c.Query("keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				filter.Keywords = append(filter.Keywords, k)
			}
		}
	}

	listings, err := ListingRepo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": listings})
}

// GetEquipment returns a single listing by id.
func GetEquipment(c *gin.Context) {
	listing, err := ListingRepo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, listingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ListMyEquipment returns the caller's own listings.
func ListMyEquipment(c *gin.Context) {
	listings, err := ListingRepo.ListByOwner(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": listings})
}

// UpdateEquipment lets the owner edit a listing, including flipping it
// in and out of maintenance.
func UpdateEquipment(c *gin.Context) {
	ownerID := c.GetString("userID")

	listing, err := ListingRepo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, listingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch equipment", "details": err.Error()})
		return
	}
	if listing.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the owner can edit a listing"})
		return
	}

	var input equipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	listing.Name = input.Name
	listing.EquipmentType = input.EquipmentType
	listing.Village = input.Village
	listing.Rate = input.Rate
	listing.DriverChargePerHour = input.DriverChargePerHour
	listing.DeliveryFee = input.DeliveryFee
	listing.Latitude = input.Latitude
	listing.Longitude = input.Longitude
	if input.AvailabilityStatus != "" {
		availability := models.EquipmentAvailability(input.AvailabilityStatus)
		if availability != models.EquipmentAvailable && availability != models.EquipmentMaintenance {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown availability status"})
			return
		}
		listing.AvailabilityStatus = availability
	}
	listing.UpdatedAt = time.Now()

	if err := ListingRepo.Update(c.Request.Context(), listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update listing", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listing)
}
