package usecases

import (
	"context"
	"time"
)

type HealthCheckResult struct {
	Healthy   bool
	Service   string
	Model     string
	CheckedAt time.Time
}

type HealthCheckUseCase struct {
	generator ResponseGenerator
}

func NewHealthCheckUseCase(generator ResponseGenerator) *HealthCheckUseCase {
	return &HealthCheckUseCase{generator: generator}
}

func (uc *HealthCheckUseCase) Execute(ctx context.Context) *HealthCheckResult {
	return &HealthCheckResult{
		Healthy:   uc.generator.HealthCheck(ctx),
		Service:   "groq",
		Model:     uc.generator.Model(),
		CheckedAt: time.Now(),
	}
}
