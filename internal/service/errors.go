package service

import "errors"

var (
	ErrInvalidCheckout    = errors.New("full_name, address_line1 and city are required")
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 99")
	ErrInvalidProductID   = errors.New("product_id must be positive")
	ErrUnknownOrderFilter = errors.New("order filter must be all, b2b or consumer")
	ErrEmptyDraft         = errors.New("business order draft is empty")
)
