package domain

import "errors"

var (
	ErrNotFound         = errors.New("event_not_found")
	ErrInvalidID        = errors.New("invalid_event_id")
	ErrInvalidPageSize  = errors.New("invalid_page_size")
	ErrInvalidPageToken = errors.New("invalid_page_token")
)
