package models

import "errors"

// Domain failures. The HTTP layer writes the bare message as the response
// body, so the strings are part of the API contract.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrSellerNotFound    = errors.New("seller not found")
	ErrNotASeller        = errors.New("user is not a seller")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("email already exists")
)
