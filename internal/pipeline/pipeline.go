// Package pipeline provides the scaffolding pipeline orchestrator for the
// new command. The pipeline executes steps in a fixed order, short-circuits
// on first error, and preserves AdventError codes.
package pipeline

import (
	"context"

	"advent/internal/day"
	"advent/internal/errors"
)

// State accumulates state during pipeline execution.
// Fields are populated by steps as they execute.
type State struct {
	// Day is the day being scaffolded.
	Day day.Day

	// Populated by EnsureInput
	InputPath    string // workspace-relative
	InputCreated bool

	// Populated by EnsureExample
	ExamplePath    string
	ExampleCreated bool

	// Populated by CopyTemplate
	SourcePath string

	// Populated by RegisterDay
	DispatchPath string
	Anchor       string
}

// DayService defines the step implementations for the scaffolding pipeline.
// Each method corresponds to a pipeline step executed in order.
// Implementations are injected to allow testing without a real filesystem.
type DayService interface {
	// EnsureInput creates the day's empty input file if missing
	EnsureInput(ctx context.Context, st *State) error

	// EnsureExample creates the day's empty example input file if missing
	EnsureExample(ctx context.Context, st *State) error

	// CopyTemplate copies the day template over the day's source file
	CopyTemplate(ctx context.Context, st *State) error

	// RegisterDay splices the day's marker line into the dispatch file
	RegisterDay(ctx context.Context, st *State) error
}

// Pipeline orchestrates the execution of scaffolding steps in a fixed order.
type Pipeline struct {
	svc DayService
}

// NewPipeline creates a pipeline with the given service implementation.
func NewPipeline(svc DayService) *Pipeline {
	return &Pipeline{svc: svc}
}

// Run executes the pipeline steps in fixed order:
//  1. EnsureInput
//  2. EnsureExample
//  3. CopyTemplate
//  4. RegisterDay
//
// Behavior:
//   - Executes steps in order; short-circuits on first error
//   - Steps already completed are not rolled back on failure
//   - If error is *AdventError, preserves code/message/details exactly
//   - If error is not *AdventError, wraps into *AdventError with:
//     Code = E_INTERNAL, Message = "internal error", Cause = original error,
//     Details = map[string]string{"step": "<StepName>"}
//   - Returns the state even on error, for partial-result reporting
func (p *Pipeline) Run(ctx context.Context, d day.Day) (*State, error) {
	st := &State{Day: d}

	if err := p.svc.EnsureInput(ctx, st); err != nil {
		return st, wrapStepError(err, StepEnsureInput)
	}

	if err := p.svc.EnsureExample(ctx, st); err != nil {
		return st, wrapStepError(err, StepEnsureExample)
	}

	if err := p.svc.CopyTemplate(ctx, st); err != nil {
		return st, wrapStepError(err, StepCopyTemplate)
	}

	if err := p.svc.RegisterDay(ctx, st); err != nil {
		return st, wrapStepError(err, StepRegisterDay)
	}

	return st, nil
}

// wrapStepError ensures the error is an *AdventError.
// If already *AdventError, returns it unchanged.
// Otherwise wraps it with E_INTERNAL and step name in details.
func wrapStepError(err error, stepName string) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsAdventError(err); ok {
		return err
	}

	return errors.WrapWithDetails(
		errors.EInternal,
		"internal error",
		err,
		map[string]string{"step": stepName},
	)
}

// Step name constants.
const (
	StepEnsureInput   = "EnsureInput"
	StepEnsureExample = "EnsureExample"
	StepCopyTemplate  = "CopyTemplate"
	StepRegisterDay   = "RegisterDay"
)
