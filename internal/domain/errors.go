package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgUsernameTaken  = "username already exists"
	ErrMsgBadCredentials = "invalid credentials"

	// Workout errors
	ErrMsgWorkoutNotFound         = "workout not found"
	ErrMsgExerciseNotFound        = "exercise not found"
	ErrMsgWorkoutExerciseNotFound = "workout exercise not found"

	// Meal errors
	ErrMsgMealNotFound = "meal not found"

	// Challenge errors
	ErrMsgChallengeNotFound     = "challenge not found"
	ErrMsgParticipationNotFound = "participation not found"
	ErrMsgAlreadyJoined         = "user already joined challenge"

	// RPG errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgInvalidClass      = "invalid character class"
	ErrMsgInvalidTier       = "invalid quest tier"

	// Planner errors
	ErrMsgPlanUnavailable = "plan generation unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound   = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken  = errors.New(ErrMsgUsernameTaken)
	ErrBadCredentials = errors.New(ErrMsgBadCredentials)

	// Workout errors
	ErrWorkoutNotFound         = errors.New(ErrMsgWorkoutNotFound)
	ErrExerciseNotFound        = errors.New(ErrMsgExerciseNotFound)
	ErrWorkoutExerciseNotFound = errors.New(ErrMsgWorkoutExerciseNotFound)

	// Meal errors
	ErrMealNotFound = errors.New(ErrMsgMealNotFound)

	// Challenge errors
	ErrChallengeNotFound     = errors.New(ErrMsgChallengeNotFound)
	ErrParticipationNotFound = errors.New(ErrMsgParticipationNotFound)
	ErrAlreadyJoined         = errors.New(ErrMsgAlreadyJoined)

	// RPG errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrInvalidClass      = errors.New(ErrMsgInvalidClass)
	ErrInvalidTier       = errors.New(ErrMsgInvalidTier)

	// Planner errors
	ErrPlanUnavailable = errors.New(ErrMsgPlanUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
