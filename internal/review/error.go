package review

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrProductNotFound      = errors.New("product not found")
	ErrFailedAddReview      = errors.New("failed to add review")
	ErrFailedListReviews    = errors.New("failed to list reviews")
)
