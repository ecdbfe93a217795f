package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of an apply run.
type Status int

const (
	// StatusConverged means every resource already matched; nothing was done.
	StatusConverged Status = iota
	// StatusApplied means at least one resource was out of state and the
	// whole reality was realized.
	StatusApplied
	// StatusFailed means declaration, verification or realization errored.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusApplied:
		return "applied"
	default:
		return "failed"
	}
}

// Report is the typed result of an apply run. The engine never logs fatally
// or exits; the hosting application decides what to do with the report.
type Report struct {
	RunID     string
	Status    Status
	Resources int
	Duration  time.Duration
	Err       error
}

// ConfigureFunc declares the desired end-state by ensuring resources into the
// reality. It runs exactly once per apply, synchronously, with exclusive
// access to the reality.
type ConfigureFunc func(r *Reality) error

// Apply drives a single declare, verify, maybe-realize cycle: build an empty
// reality, run the configuration procedure, verify the result and realize
// only when something is out of state. There is no retry and no
// re-verification after realize; a caller wanting confirmation re-invokes
// Apply.
func Apply(ctx *SystemContext, configure ConfigureFunc) Report {
	start := time.Now()
	report := Report{RunID: uuid.New().String()}
	log := ctx.Logger.With("run", report.RunID)

	reality := NewReality(log)
	if err := configure(reality); err != nil {
		report.Status = StatusFailed
		report.Err = fmt.Errorf("could not declare configuration: %w", err)
		report.Duration = time.Since(start)
		return report
	}
	report.Resources = reality.Len()

	log.Info("applying configuration", "resources", report.Resources)

	converged, err := reality.Verify(ctx)
	switch {
	case err != nil:
		report.Status = StatusFailed
		report.Err = fmt.Errorf("could not apply configuration: %w", err)
	case converged:
		report.Status = StatusConverged
		log.Info("everything up to date, nothing to do")
	default:
		if err := reality.Realize(ctx); err != nil {
			report.Status = StatusFailed
			report.Err = fmt.Errorf("could not apply configuration: %w", err)
		} else {
			report.Status = StatusApplied
			log.Info("configuration applied")
		}
	}

	report.Duration = time.Since(start)
	return report
}
