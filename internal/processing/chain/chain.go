package chain

import (
	"context"
	"fmt"
	"time"

	"cellscope/internal/logger"
	"cellscope/internal/opencv/safe"
)

type ProcessingStep interface {
	Apply(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error)
	Name() string
	ShouldExecute(params map[string]interface{}) bool
}

type ProcessingChain struct {
	steps  []ProcessingStep
	logger logger.Logger
}

func NewProcessingChain(steps []ProcessingStep) *ProcessingChain {
	return &ProcessingChain{
		steps:  steps,
		logger: logger.Nop(),
	}
}

// SetLogger routes per-step debug output to log. A nil log disables it.
func (pc *ProcessingChain) SetLogger(log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	pc.logger = log
}

// Execute runs every enabled step in order. The input is never closed; intermediate
// results are. When no step runs, the result is a clone of input so the caller
// always owns what it gets back.
func (pc *ProcessingChain) Execute(ctx context.Context, input *safe.Mat, params map[string]interface{}) (*safe.Mat, error) {
	if err := safe.ValidateMatForOperation(input, "chain"); err != nil {
		return nil, err
	}

	current := input
	release := func() {
		if current != input {
			current.Close()
		}
	}

	for _, step := range pc.steps {
		select {
		case <-ctx.Done():
			release()
			return nil, ctx.Err()
		default:
		}

		if !step.ShouldExecute(params) {
			pc.logger.Debug("ProcessingChain", "step skipped", map[string]interface{}{"step": step.Name()})
			continue
		}

		start := time.Now()
		result, err := step.Apply(ctx, current, params)
		if err != nil {
			release()
			pc.logger.Error("ProcessingChain", err, map[string]interface{}{"step": step.Name()})
			return nil, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		pc.logger.Debug("ProcessingChain", "step completed", map[string]interface{}{
			"step":     step.Name(),
			"duration": time.Since(start).String(),
		})

		release()
		current = result
	}

	if current == input {
		return input.Clone()
	}
	return current, nil
}

// GetStepNames lists the steps in execution order.
func (pc *ProcessingChain) GetStepNames() []string {
	names := make([]string, len(pc.steps))
	for i, step := range pc.steps {
		names[i] = step.Name()
	}
	return names
}
