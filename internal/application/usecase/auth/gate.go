package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/internal/domain/store"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// MinSecretLength is the password policy: anything shorter is rejected.
const MinSecretLength = 4

var tracer = otel.Tracer("auth_usecase")

// Gate is the single shared-secret access control: one plaintext credential
// in the store, falling back to a configured default when none has been
// set, plus a persisted session flag so a restart keeps the operator
// authenticated. Deliberately weak single-tenant model: no hashing, no
// expiry, no rate limiting.
type Gate struct {
	store           store.Store
	jwtSvc          *auth.JWTService
	defaultPassword string
	logger          logger.Logger
}

func NewGate(st store.Store, jwtSvc *auth.JWTService, defaultPassword string, log logger.Logger) *Gate {
	return &Gate{
		store:           st,
		jwtSvc:          jwtSvc,
		defaultPassword: defaultPassword,
		logger:          log,
	}
}

type LoginInput struct {
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (g *Gate) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	stored, err := g.store.LoadCredential(ctx)
	if err != nil {
		g.logger.Warn("failed to load credential, falling back to default", zap.Error(err))
		stored = ""
	}
	if stored == "" {
		stored = g.defaultPassword
	}

	if input.Password != stored {
		err := apperror.NewUnauthorized("incorrect password", nil)
		span.RecordError(err)
		return nil, err
	}

	if err := g.store.SetSessionFlag(ctx, true); err != nil {
		g.logger.Warn("failed to persist session flag", zap.Error(err))
	}

	token, err := g.jwtSvc.GenerateToken()
	if err != nil {
		g.logger.Error("Failed to generate token", err)
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	return &LoginOutput{AccessToken: token}, nil
}

func (g *Gate) Logout(ctx context.Context) {
	if err := g.store.SetSessionFlag(ctx, false); err != nil {
		g.logger.Warn("failed to clear session flag", zap.Error(err))
	}
}

// Authenticated reports the persisted session flag, so a page reload (or a
// process restart) keeps the operator signed in.
func (g *Gate) Authenticated(ctx context.Context) bool {
	active, err := g.store.LoadSessionFlag(ctx)
	if err != nil {
		g.logger.Warn("failed to load session flag", zap.Error(err))
		return false
	}
	return active
}

type ChangeCredentialInput struct {
	NewSecret   string
	ConfirmCopy string
}

func (g *Gate) ChangeCredential(ctx context.Context, input ChangeCredentialInput) error {
	ctx, span := tracer.Start(ctx, "ChangeCredential")
	defer span.End()

	if input.NewSecret != input.ConfirmCopy {
		return apperror.NewInvalidInput("passwords do not match", nil)
	}
	if len(input.NewSecret) < MinSecretLength {
		return apperror.NewInvalidInput("password must be at least 4 characters", nil)
	}

	if err := g.store.SaveCredential(ctx, input.NewSecret); err != nil {
		// Storage failures degrade to a no-op, same as every other store write.
		g.logger.Warn("failed to persist new credential", zap.Error(err))
		span.RecordError(err)
	}
	return nil
}
