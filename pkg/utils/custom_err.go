package utils

import "errors"

var (
	ErrMonasteryNotFound = errors.New("monastery not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrRouteUnavailable  = errors.New("routing service unavailable")
	ErrAssistantFailure  = errors.New("assistant provider error")
	ErrUnauthorized      = errors.New("unauthorized")
)
