package api

import (
	"errors"
	"net/http"

	"premiumshop-be/internal/address"
	"premiumshop-be/internal/cart"
	"premiumshop-be/internal/checkout"
	"premiumshop-be/internal/newsletter"
	"premiumshop-be/internal/order"
	"premiumshop-be/internal/product"
	"premiumshop-be/internal/review"
	"premiumshop-be/internal/user"
	"premiumshop-be/internal/utils"
)

// mapError translates domain errors into the envelope's status and
// message. Anything unrecognised stays opaque.
func mapError(err error) (int, string) {
	var fieldErr *checkout.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, fieldErr.Error()
	}

	switch {
	case errors.Is(err, order.ErrUserNotAuthenticated),
		errors.Is(err, product.ErrUserNotAuthenticated),
		errors.Is(err, review.ErrUserNotAuthenticated),
		errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, address.ErrNotAuthenticated),
		errors.Is(err, user.ErrNotAuthenticated),
		errors.Is(err, checkout.ErrNotAuthenticated):
		return http.StatusUnauthorized, "User not authenticated"

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"

	case errors.Is(err, product.ErrUnauthorized),
		errors.Is(err, order.ErrUnauthorized):
		return http.StatusForbidden, "Unauthorized"

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, review.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"

	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"

	case errors.Is(err, address.ErrAddressNotFound):
		return http.StatusNotFound, "Address not found"

	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, "User not found"

	case errors.Is(err, user.ErrEmailExists):
		return http.StatusConflict, "Email already registered"

	case errors.Is(err, order.ErrInsufficientStock):
		return http.StatusConflict, "Insufficient stock"

	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty"

	case errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrEmptyName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, newsletter.ErrInvalidEmail):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, "Something went wrong"
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	code, msg := mapError(err)
	utils.WriteJSONError(w, msg, code)
}

func (s *Server) ok(w http.ResponseWriter, code int, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["success"] = true
	utils.WriteJSON(w, code, payload)
}

func badJSON(w http.ResponseWriter) {
	utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
}
