package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table.
//
// State transitions:
//
//	Created ──> InTransit ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Returned
//
// The machine is deliberately permissive: Start, Complete, and Return are
// allowed from any prior status (completing a never-started order, returning a
// completed one, restarting a returned one). Dispatchers routinely fix up
// records after the fact, so the table encodes that permissiveness explicitly
// instead of scattering it through the code.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	Created

	// InTransit indicates a driver has started the dispatch.
	InTransit

	// Completed indicates the dispatch has been delivered.
	Completed

	// Returned indicates the order came back, from whatever state it was in.
	Returned
)

// getStatusStrings returns the wire form of every Status value.
// These strings are what is persisted and what appears in API payloads.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		InTransit: "in_transit",
		Completed: "completed",
		Returned:  "returned",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		InTransit: "in_transit",
		Completed: "completed",
		Returned:  "returned",
	}
}

// transitionTable lists, per target status, the statuses the transition may
// fire from. Every lifecycle event is currently allowed from every valid
// status; changing product policy means removing entries here, nowhere else.
var transitionTable = map[Status][]Status{
	InTransit: {Created, InTransit, Completed, Returned},
	Completed: {Created, InTransit, Completed, Returned},
	Returned:  {Created, InTransit, Completed, Returned},
}

// StatusFromString parses the wire form of a status.
// Returns an error for anything outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, InTransit, Completed, Returned.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// canTransitionTo consults the transition table.
func (s Status) canTransitionTo(target Status) error {
	for _, from := range transitionTable[target] {
		if s == from {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to transition to %s", s.String(), target.String()),
	)
}

// Start transitions the status to InTransit.
// Allowed from any valid status per the transition table.
func (s Status) Start() (Status, error) {
	if err := s.canTransitionTo(InTransit); err != nil {
		return 0, err
	}
	return InTransit, nil
}

// Complete transitions the status to Completed.
// Allowed from any valid status, including Created: the tracker does not guard
// against completing a never-started order.
func (s Status) Complete() (Status, error) {
	if err := s.canTransitionTo(Completed); err != nil {
		return 0, err
	}
	return Completed, nil
}

// Return transitions the status to Returned.
// Allowed from any valid status.
func (s Status) Return() (Status, error) {
	if err := s.canTransitionTo(Returned); err != nil {
		return 0, err
	}
	return Returned, nil
}
