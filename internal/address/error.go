package address

import "errors"

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrAddressNotFound  = errors.New("address not found")
)
