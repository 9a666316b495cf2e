package ports

import "go.trai.ch/heatsweep/internal/core/domain"

// ResultWriter receives one result vector per frequency, in sweep order.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ResultWriter interface {
	WriteResult(result domain.ResultVector) error
	Close() error
}

// FluxWriter receives spatially-resolved flux samples.
type FluxWriter interface {
	WriteFlux(samples []domain.FluxSample) error
	Close() error
}
