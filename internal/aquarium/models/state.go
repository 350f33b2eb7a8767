package models

import (
	"fmt"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
)

// allowedTransitions is the lifecycle table enforced by the checked path.
var allowedTransitions = map[State]map[State]struct{}{
	StateSetup:       toSet(StateRunning, StateInactive),
	StateRunning:     toSet(StateMaintenance, StateInactive),
	StateMaintenance: toSet(StateRunning, StateInactive),
	StateInactive:    toSet(StateSetup),
}

func toSet(states ...State) map[State]struct{} {
	set := make(map[State]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// AllowedTransitions lists the states reachable from s through the checked path.
func AllowedTransitions(s State) []State {
	out := make([]State, 0, len(allowedTransitions[s]))
	for _, candidate := range []State{StateSetup, StateRunning, StateMaintenance, StateInactive} {
		if _, ok := allowedTransitions[s][candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

// StateChange describes a lifecycle change that actually happened.
// The zero value means nothing changed.
type StateChange struct {
	From State
	To   State
	At   time.Time
}

// Changed reports whether the state moved.
func (c StateChange) Changed() bool {
	return c.From != "" && c.From != c.To
}

// CanTransitionTo reports whether the checked path accepts target.
// Staying in the current state is always accepted as a no-op.
func (a *Aquarium) CanTransitionTo(target State) bool {
	if target == a.state {
		return true
	}
	_, ok := allowedTransitions[a.state][target]
	return ok
}

// TransitionTo moves the aquarium to target if the lifecycle table allows it.
func (a *Aquarium) TransitionTo(target State, requestingOwnerID id.OwnerID, now time.Time) (StateChange, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return StateChange{}, err
	}
	if _, err := ParseState(string(target)); err != nil {
		return StateChange{}, err
	}
	if !a.CanTransitionTo(target) {
		return StateChange{}, dErrors.New(dErrors.CodeInvalidTransition,
			fmt.Sprintf("cannot transition aquarium from %s to %s", a.state, target))
	}
	return a.applyState(target, now), nil
}

// UpdateState is the administrative override: it sets any known state without
// consulting the lifecycle table. Ownership and the same-state no-op still apply.
func (a *Aquarium) UpdateState(target State, requestingOwnerID id.OwnerID, now time.Time) (StateChange, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return StateChange{}, err
	}
	if _, err := ParseState(string(target)); err != nil {
		return StateChange{}, err
	}
	return a.applyState(target, now), nil
}

// Activate starts a tank that is being set up or coming out of maintenance.
func (a *Aquarium) Activate(requestingOwnerID id.OwnerID, now time.Time) (StateChange, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return StateChange{}, err
	}
	if a.state != StateSetup && a.state != StateMaintenance {
		return StateChange{}, dErrors.New(dErrors.CodeInvalidTransition,
			fmt.Sprintf("aquarium can only be activated from SETUP or MAINTENANCE, current state is %s", a.state))
	}
	return a.applyState(StateRunning, now), nil
}

// StartMaintenance requires a running tank.
func (a *Aquarium) StartMaintenance(requestingOwnerID id.OwnerID, now time.Time) (StateChange, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return StateChange{}, err
	}
	if a.state != StateRunning {
		return StateChange{}, dErrors.New(dErrors.CodeInvalidTransition,
			fmt.Sprintf("maintenance can only start from RUNNING, current state is %s", a.state))
	}
	return a.applyState(StateMaintenance, now), nil
}

// Deactivate shuts the tank down from any active state.
func (a *Aquarium) Deactivate(requestingOwnerID id.OwnerID, now time.Time) (StateChange, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return StateChange{}, err
	}
	if a.state == StateInactive {
		return StateChange{}, dErrors.New(dErrors.CodeInvalidTransition, "aquarium is already inactive")
	}
	return a.applyState(StateInactive, now), nil
}

// CurrentStateDurationMinutes returns whole minutes spent in the current state.
func (a *Aquarium) CurrentStateDurationMinutes(now time.Time) int64 {
	return wholeMinutes(a.stateStartedAt, now)
}

// applyState is the single place that writes state. The start marker moves only
// on an actual change and is kept strictly increasing.
func (a *Aquarium) applyState(target State, now time.Time) StateChange {
	if target == a.state {
		return StateChange{}
	}
	at := now
	if !at.After(a.stateStartedAt) {
		at = a.stateStartedAt.Add(time.Nanosecond)
	}
	change := StateChange{From: a.state, To: target, At: at}
	a.state = target
	a.stateStartedAt = at
	a.UpdatedAt = at
	return change
}

func wholeMinutes(from, to time.Time) int64 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}
