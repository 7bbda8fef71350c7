package models

import "time"

// Testimonial represents a customer review. Immutable once created except for deletion.
type Testimonial struct {
	ID             int64     `json:"id" db:"id"`
	ReviewerName   string    `json:"reviewer_name" db:"reviewer_name"`
	ReviewerEmail  string    `json:"reviewer_email" db:"reviewer_email"`
	ReviewTitle    *string   `json:"review_title,omitempty" db:"review_title"`
	ReviewText     string    `json:"review_text" db:"review_text"`
	Rating         int       `json:"rating" db:"rating"`
	GenuineOpinion bool      `json:"genuine_opinion" db:"genuine_opinion"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
