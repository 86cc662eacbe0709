package cart

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	ErrInvalidQuantity = errors.New("invalid cart quantity")

	ErrFailedGetCart    = errors.New("failed to get cart")
	ErrFailedUpdateCart = errors.New("failed to update cart")
)
