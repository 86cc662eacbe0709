package review

import "time"

type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RatingSummary is returned alongside a newly added review so callers can
// refresh the product card without a second fetch.
type RatingSummary struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}
