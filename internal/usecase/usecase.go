package usecase

import (
	"context"
	"time"

	"projectflow/internal/repository"
	"projectflow/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	DashboardUsecaseInterface
	UserUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	sessions domain.SessionHolder,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, sessions, timeout)
}
