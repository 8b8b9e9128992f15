package tournament

import "fmt"

// TournamentError is a custom error type for tournament-related errors
type TournamentError string

// Error implements the error interface
func (e TournamentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       TournamentError = "config cannot be nil"
	ErrNilRepository   TournamentError = "tournament repository cannot be nil"
	ErrNilMatchService TournamentError = "match service cannot be nil"
	ErrNilInput        TournamentError = "input cannot be nil"
	ErrInvalidRound    TournamentError = "round must be at least 1"
	ErrUnknownPolicy   TournamentError = "unknown round policy"
)

// RoundError reports a round that was aborted part way through.
// Recorded matches stay in the store; the round is not retried.
type RoundError struct {
	Round    int
	Recorded int
	Total    int
	Err      error
}

// Error implements the error interface
func (e *RoundError) Error() string {
	return fmt.Sprintf("round %d aborted after %d of %d matches: %v", e.Round, e.Recorded, e.Total, e.Err)
}

// Unwrap returns the failure that aborted the round
func (e *RoundError) Unwrap() error {
	return e.Err
}
