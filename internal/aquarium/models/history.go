package models

import (
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
)

// StateHistory is one interval an aquarium spent in a lifecycle state.
// An interval with no EndTime is still open.
type StateHistory struct {
	ID              id.StateHistoryID
	AquariumID      id.AquariumID
	State           State
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int64
}

// NewStateHistory opens an interval starting at start.
func NewStateHistory(historyID id.StateHistoryID, aquariumID id.AquariumID, state State, start time.Time) (*StateHistory, error) {
	if aquariumID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "Aquarium ID cannot be null")
	}
	if _, err := ParseState(string(state)); err != nil {
		return nil, err
	}
	if start.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "Start time cannot be null")
	}
	return &StateHistory{
		ID:         historyID,
		AquariumID: aquariumID,
		State:      state,
		StartTime:  start,
	}, nil
}

// ReconstructStateHistory returns a copy of a stored interval without validation.
func ReconstructStateHistory(r StateHistory) *StateHistory {
	h := r
	return &h
}

func (h *StateHistory) IsActive() bool {
	return h.EndTime == nil
}

// End closes the interval and records its length in whole minutes.
func (h *StateHistory) End(now time.Time) error {
	if !h.IsActive() {
		return dErrors.New(dErrors.CodeConflict, "state history interval has already ended")
	}
	end := now
	if end.Before(h.StartTime) {
		end = h.StartTime
	}
	minutes := wholeMinutes(h.StartTime, end)
	h.EndTime = &end
	h.DurationMinutes = &minutes
	return nil
}

// CurrentDurationMinutes is the recorded duration for closed intervals and the
// elapsed time so far for the open one.
func (h *StateHistory) CurrentDurationMinutes(now time.Time) int64 {
	if h.DurationMinutes != nil {
		return *h.DurationMinutes
	}
	return wholeMinutes(h.StartTime, now)
}
