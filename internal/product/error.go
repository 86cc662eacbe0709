package product

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrUnauthorized         = errors.New("unauthorized")

	// -- Validation & Input --
	ErrInvalidPrice = errors.New("price must be non-negative")
	ErrInvalidStock = errors.New("stock must be non-negative")
	ErrEmptyName    = errors.New("name cannot be empty")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Database & Operation Failures --
	ErrFailedListProducts = errors.New("failed to list products")
	ErrFailedGetProduct   = errors.New("failed to get product")
	ErrFailedSaveProduct  = errors.New("failed to save product")
)
