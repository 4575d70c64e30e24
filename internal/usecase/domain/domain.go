package domain

import (
	"context"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "projectflow/usecase"

// SessionHolder is the identity holder the usecases act on behalf of.
type SessionHolder interface {
	Login(email, password string) bool
	Logout()
	SwitchUser(userID string) bool
	Current() entities.AuthSession
	User() *entities.User
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	sessions SessionHolder
	timeout  time.Duration
	tracer   trace.Tracer
	now      func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	sessions SessionHolder,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log.Named("usecase"),
		repo:     repo,
		sessions: sessions,
		timeout:  timeout,
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
}

// start bounds ctx by the usecase timeout and opens a span named op.
// The returned func ends both and records err on the span.
func (u *Usecase) start(ctx context.Context, op string) (context.Context, func(err error)) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	ctx, span := u.tracer.Start(ctx, op)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		cancel()
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// sessionUser returns the logged-in user or ErrUnauthenticated.
func (u *Usecase) sessionUser() (*entities.User, error) {
	user := u.sessions.User()
	if user == nil {
		return nil, entities.ErrUnauthenticated
	}
	return user, nil
}
