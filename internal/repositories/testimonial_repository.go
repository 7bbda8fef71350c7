package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"spa_booking_backend/internal/models"
)

// TestimonialRepository defines the interface for testimonial-related database operations.
type TestimonialRepository interface {
	CreateTestimonial(executor SQLExecutor, testimonial *models.Testimonial) (*models.Testimonial, error)
	GetTestimonials() ([]models.Testimonial, error)
	DeleteTestimonial(executor SQLExecutor, id int64) error
}

type testimonialRepository struct {
	db *sql.DB
}

// NewTestimonialRepository creates a new instance of TestimonialRepository.
func NewTestimonialRepository(db *sql.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func scanTestimonial(row scanner) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	var title sql.NullString
	err := row.Scan(
		&testimonial.ID, &testimonial.ReviewerName, &testimonial.ReviewerEmail,
		&title, &testimonial.ReviewText, &testimonial.Rating,
		&testimonial.GenuineOpinion, &testimonial.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning testimonial: %v", ErrDatabaseError, err)
	}
	if title.Valid {
		testimonial.ReviewTitle = &title.String
	}
	return &testimonial, nil
}

// CreateTestimonial inserts a new testimonial. created_at is filled in by the
// database's column default and read back via RETURNING.
func (r *testimonialRepository) CreateTestimonial(executor SQLExecutor, testimonial *models.Testimonial) (*models.Testimonial, error) {
	query := `INSERT INTO testimonials (reviewer_name, reviewer_email, review_title, review_text, rating, genuine_opinion)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	err := executor.QueryRow(query,
		testimonial.ReviewerName, testimonial.ReviewerEmail, testimonial.ReviewTitle,
		testimonial.ReviewText, testimonial.Rating, testimonial.GenuineOpinion,
	).Scan(&testimonial.ID, &testimonial.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating testimonial: %v", ErrDatabaseError, err)
	}
	return testimonial, nil
}

// GetTestimonials returns all testimonials, newest first.
func (r *testimonialRepository) GetTestimonials() ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	query := `SELECT id, reviewer_name, reviewer_email, review_title, review_text, rating, genuine_opinion, created_at
	          FROM testimonials ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying testimonials: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		testimonial, scanErr := scanTestimonial(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		testimonials = append(testimonials, *testimonial)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating testimonial rows: %v", ErrDatabaseError, err)
	}
	return testimonials, nil
}

// DeleteTestimonial removes a testimonial by id.
func (r *testimonialRepository) DeleteTestimonial(executor SQLExecutor, id int64) error {
	query := `DELETE FROM testimonials WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting testimonial ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
