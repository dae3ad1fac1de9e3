// services/errors.go - business error taxonomy
package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is a business-rule failure the caller can act on. The engine
// never retries these internally; concurrency losers get the same codes as
// plain rule violations.
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on code so handlers and tests can use errors.Is against the
// sentinel values below.
func (e *ServiceError) Is(target error) bool {
	var se *ServiceError
	if errors.As(target, &se) {
		return e.Code == se.Code
	}
	return false
}

func newError(code, message string, status int) *ServiceError {
	return &ServiceError{Code: code, Message: message, Status: status}
}

// State-conflict errors: the request was understood but the current state
// forbids it. Callers may correct and resubmit.
var (
	ErrAlreadySubmitted = newError("ALREADY_SUBMITTED", "an open submission already exists for this mission", http.StatusConflict)
	ErrMissionInactive  = newError("MISSION_INACTIVE", "mission is not active or past its deadline", http.StatusConflict)
	ErrInvalidState     = newError("INVALID_STATE", "submission has already been reviewed", http.StatusConflict)
	ErrTeamFull         = newError("TEAM_FULL", "team is at maximum capacity", http.StatusConflict)
	ErrAlreadyOnTeam    = newError("ALREADY_ON_TEAM", "user already belongs to a team", http.StatusConflict)
)

// Not-found errors.
var (
	ErrUserNotFound       = newError("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	ErrMissionNotFound    = newError("MISSION_NOT_FOUND", "mission not found", http.StatusNotFound)
	ErrSubmissionNotFound = newError("SUBMISSION_NOT_FOUND", "submission not found", http.StatusNotFound)
	ErrTeamNotFound       = newError("TEAM_NOT_FOUND", "team not found", http.StatusNotFound)
	ErrNotOnTeam          = newError("NOT_ON_TEAM", "user does not belong to a team", http.StatusNotFound)
)

// Authorization errors reveal nothing about internal state.
var (
	ErrUnauthorized = newError("UNAUTHORIZED", "not allowed to perform this action", http.StatusForbidden)
)

// StatusOf maps an error to an HTTP status for the boundary layer. Anything
// outside the taxonomy is an internal fault.
func StatusOf(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}
