package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"spa_booking_backend/internal/models"
	"spa_booking_backend/internal/repositories"
	"spa_booking_backend/pkg/utils"
)

// --- Custom Service Errors for Testimonial ---
var (
	ErrTestimonialNotFound   = errors.New("testimonial not found")
	ErrTestimonialValidation = errors.New("testimonial data validation error")
	ErrRatingOutOfRange      = errors.New("rating must be an integer between 1 and 5")
)

// --- Testimonial DTOs ---
type CreateTestimonialRequest struct {
	ReviewerName   string  `json:"reviewerName"`
	ReviewerEmail  string  `json:"reviewerEmail"`
	ReviewTitle    *string `json:"reviewTitle"`
	ReviewText     string  `json:"reviewText"`
	Rating         *int    `json:"rating"`
	GenuineOpinion *bool   `json:"genuineOpinion"`
}

// --- TestimonialService Interface ---
type TestimonialService interface {
	CreateTestimonial(req CreateTestimonialRequest) (*models.Testimonial, error)
	GetTestimonials() ([]models.Testimonial, error)
	DeleteTestimonial(testimonialID int64) error
}

// --- testimonialService Implementation ---
type testimonialService struct {
	testimonialRepo repositories.TestimonialRepository
	db              *sql.DB
}

// NewTestimonialService creates a new instance of TestimonialService.
func NewTestimonialService(repo repositories.TestimonialRepository, db *sql.DB) TestimonialService {
	return &testimonialService{
		testimonialRepo: repo,
		db:              db,
	}
}

func (s *testimonialService) validateCreateRequest(req CreateTestimonialRequest) error {
	if strings.TrimSpace(req.ReviewerName) == "" {
		return fmt.Errorf("%w: reviewerName is required", ErrTestimonialValidation)
	}
	if strings.TrimSpace(req.ReviewerEmail) == "" {
		return fmt.Errorf("%w: reviewerEmail is required", ErrTestimonialValidation)
	}
	if !utils.IsValidEmail(req.ReviewerEmail) {
		return fmt.Errorf("%w: reviewerEmail format is invalid", ErrTestimonialValidation)
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		return fmt.Errorf("%w: reviewText is required", ErrTestimonialValidation)
	}
	if req.GenuineOpinion == nil {
		return fmt.Errorf("%w: genuineOpinion is required", ErrTestimonialValidation)
	}
	if req.Rating == nil {
		return fmt.Errorf("%w: rating is required", ErrTestimonialValidation)
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}

func (s *testimonialService) CreateTestimonial(req CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	var title *string
	if req.ReviewTitle != nil && strings.TrimSpace(*req.ReviewTitle) != "" {
		title = req.ReviewTitle
	}

	testimonial := &models.Testimonial{
		ReviewerName:   req.ReviewerName,
		ReviewerEmail:  req.ReviewerEmail,
		ReviewTitle:    title,
		ReviewText:     req.ReviewText,
		Rating:         *req.Rating,
		GenuineOpinion: *req.GenuineOpinion,
	}

	created, err := s.testimonialRepo.CreateTestimonial(s.db, testimonial)
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial in repository: %w", err)
	}
	return created, nil
}

func (s *testimonialService) GetTestimonials() ([]models.Testimonial, error) {
	testimonials, err := s.testimonialRepo.GetTestimonials()
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *testimonialService) DeleteTestimonial(testimonialID int64) error {
	err := s.testimonialRepo.DeleteTestimonial(s.db, testimonialID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}
