package service

import "errors"

// Errores que los handlers mapean a 4xx.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrInvalidTier     = errors.New("invalid subscription tier")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5 stars")
	ErrCommentTooLong  = errors.New("comment exceeds maximum length")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewAuthor = errors.New("review belongs to another user")
)
