// Package generate runs the blueprint-generation pipeline: bounded-retry
// model invocation with corrective prompt injection, wrapped in the
// end-to-end GenerateBlueprint service.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veltaire/planforge/core/blueprint"
	"github.com/veltaire/planforge/core/errors"
	"github.com/veltaire/planforge/core/pattern"
	"github.com/veltaire/planforge/core/prompt"
	"github.com/veltaire/planforge/core/providers"
)

// MaxAttempts is the hard retry ceiling. No request ever invokes the model
// more than this many times.
const MaxAttempts = 3

// State tracks the orchestrator's position in one generation run.
type State int

const (
	StateIdle State = iota
	StateComposing
	StateInvoking
	StateSucceeded
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:      "idle",
	StateComposing: "composing",
	StateInvoking:  "invoking",
	StateSucceeded: "succeeded",
	StateFailed:    "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", s)
}

// Orchestrator drives the Composing -> Invoking loop against one provider
// adapter. Validation failures loop back to Composing with a corrective
// overlay; the backoff suspension between attempts is the pipeline's only
// blocking point.
type Orchestrator struct {
	invoker   providers.Invoker
	validator *blueprint.Validator
	backoff   errors.BackoffPolicy
	logger    *slog.Logger
}

func NewOrchestrator(invoker providers.Invoker, validator *blueprint.Validator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		invoker:   invoker,
		validator: validator,
		backoff:   errors.DefaultBackoffPolicy(),
		logger:    logger,
	}
}

// Result is a successful generation run.
type Result struct {
	Plan     *blueprint.GeneratedPlan
	Response *providers.InvocationResponse
	Attempts int
}

// Run executes up to MaxAttempts generation attempts. On exhaustion the last
// attempt's error is returned verbatim, never a generic exhaustion message
// and never a silent fallback value.
func (o *Orchestrator) Run(
	ctx context.Context,
	base prompt.Prompts,
	caps providers.Capabilities,
	selected pattern.Record,
) (*Result, error) {
	state := StateIdle
	var lastErr error
	var lastViolations []string

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if attempt > 1 {
			// Backoff delays are indexed by the attempt that just failed:
			// 2s after the first, 4s after the second.
			delay := o.backoff.Delay(attempt - 2)
			o.logger.Info("backing off before retry",
				"attempt", attempt, "delay", delay)
			if err := errors.Wait(ctx, delay); err != nil {
				return nil, lastErr
			}
		}

		state = StateComposing
		prompts := prompt.Corrective(base, attempt, lastViolations, caps)

		state = StateInvoking
		o.logger.Info("invoking model provider",
			"provider", o.invoker.Name(), "attempt", attempt, "state", state.String())

		resp, err := o.invoker.Invoke(ctx, &providers.InvocationRequest{
			SystemPrompt: prompts.System,
			UserPrompt:   prompts.User,
		})
		if err != nil {
			lastErr = errors.ClassifyProviderError(err)
			lastViolations = nil
			o.logger.Warn("provider invocation failed",
				"attempt", attempt, "error", lastErr)
			continue
		}

		raw := blueprint.ExtractJSON(resp.Content)
		plan, err := o.validator.Validate(raw, selected)
		if err != nil {
			lastErr = err
			lastViolations = errors.ViolationList(err)
			o.logger.Warn("generated plan rejected",
				"attempt", attempt, "violations", len(lastViolations))
			continue
		}

		state = StateSucceeded
		o.logger.Info("generation succeeded",
			"attempt", attempt, "state", state.String())
		return &Result{Plan: plan, Response: resp, Attempts: attempt}, nil
	}

	state = StateFailed
	o.logger.Error("generation exhausted retry ceiling",
		"attempts", MaxAttempts, "state", state.String())
	return nil, lastErr
}
