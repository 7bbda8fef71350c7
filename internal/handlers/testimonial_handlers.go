package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/services"
	"spa_booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler holds the testimonial service.
type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(ts services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts}
}

// CreateTestimonial handles the creation of a new testimonial.
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req services.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTestimonial: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(req)
	if err != nil {
		utils.LogError(err, "CreateTestimonial: Error from testimonialService.CreateTestimonial")
		if errors.Is(err, services.ErrTestimonialValidation) || errors.Is(err, services.ErrRatingOutOfRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create testimonial.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// GetTestimonials handles fetching all testimonials, newest first.
func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetTestimonials()
	if err != nil {
		utils.LogError(err, "GetTestimonials: Error from testimonialService.GetTestimonials")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch testimonials.", "Internal error"))
		return
	}

	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	c.JSON(http.StatusOK, testimonials)
}

// DeleteTestimonial handles deleting a testimonial.
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	idStr := c.Param("id")
	testimonialID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No testimonial found with id "+idStr+".", ""))
		return
	}

	err = h.testimonialService.DeleteTestimonial(testimonialID)
	if err != nil {
		utils.LogError(err, "DeleteTestimonial: Error from testimonialService.DeleteTestimonial for ID "+idStr)
		if errors.Is(err, services.ErrTestimonialNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No testimonial found with id "+idStr+".", ""))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete testimonial.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
