package order

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("User not authenticated")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrOrderNotFound        = errors.New("Order not found")
	ErrFailedCreateOrder    = errors.New("failed to create order")
	ErrFailedListOrders     = errors.New("failed to list orders")
)
