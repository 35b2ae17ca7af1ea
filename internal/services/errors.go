package services

import "errors"

var (
	ErrFarmerNotFound  = errors.New("farmer not found")
	ErrBuyerNotFound   = errors.New("buyer not found")
	ErrHarvestNotFound = errors.New("harvest not found")
	ErrDemandNotFound  = errors.New("demand not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidCrop     = errors.New("crop name is required")
)
