package repository

import "errors"

var (
	ErrUnsupportedDSN  = errors.New("unsupported database DSN")
	ErrInvalidPlanData = errors.New("invalid plan data")
)
