package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrValidation   = errors.New("validation failed")
	ErrScheduling   = errors.New("scheduling failed")
	ErrConflict     = errors.New("conflicting operation in progress")
)

var (
	ErrTaskNotFound        = fmt.Errorf("task %w", ErrNotFound)
	ErrModuleNotFound      = fmt.Errorf("module %w", ErrNotFound)
	ErrPlanNotFound        = fmt.Errorf("learning plan %w", ErrNotFound)
	ErrUnitNotFound        = fmt.Errorf("learning unit %w", ErrNotFound)
	ErrCostProfileNotFound = fmt.Errorf("cost profile %w", ErrNotFound)
	ErrRatingNotFound      = fmt.Errorf("rating %w", ErrNotFound)
	ErrPreferencesNotFound = fmt.Errorf("learning preferences %w", ErrNotFound)
)

var (
	ErrInvalidInterval     = fmt.Errorf("%w: end must be after start", ErrValidation)
	ErrNegativeDuration    = fmt.Errorf("%w: actual duration must not be negative", ErrValidation)
	ErrUnitOverlap         = fmt.Errorf("%w: units overlap", ErrValidation)
	ErrUnitNotCompleted    = fmt.Errorf("%w: unit is not completed", ErrValidation)
	ErrRatingAlreadyExists = fmt.Errorf("%w: unit already rated", ErrValidation)
	ErrInvalidLevel        = fmt.Errorf("%w: level out of range", ErrValidation)
	ErrUnitNotPlanned      = fmt.Errorf("%w: unit is no longer planned", ErrValidation)
	ErrUnitSuperseded      = fmt.Errorf("%w: unit belongs to a superseded plan revision", ErrValidation)
	ErrTaskNotSchedulable  = fmt.Errorf("%w: task has no schedulable window this week", ErrValidation)
)

var (
	ErrOptimizerUnavailable = fmt.Errorf("optimizer unavailable: %w", ErrScheduling)
	ErrOptimizerResponse    = fmt.Errorf("optimizer error: %w", ErrScheduling)
)
