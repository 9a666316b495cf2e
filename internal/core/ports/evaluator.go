// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/heatsweep/internal/core/domain"
)

// Evaluator computes the heat-transfer integrand for one frequency and one transformation.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Evaluate returns the integrand at omega for the transformation at transformIndex.
	// Failures wrap domain.ErrEvaluationFailure.
	Evaluate(ctx context.Context, omega domain.Frequency, transformIndex int) (float64, error)
}

// FluxEvaluator is implemented by evaluators that can attribute the integrand to
// individual objects of the geometry.
type FluxEvaluator interface {
	// EvaluateFlux returns one sample per object.
	EvaluateFlux(ctx context.Context, omega domain.Frequency, transformIndex int) ([]domain.FluxSample, error)
}
