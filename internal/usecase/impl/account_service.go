package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
	"authsvc/internal/util"
)

const (
	defaultSessionTTL = 24 * time.Hour
	publishTimeout    = 2 * time.Second
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	sessions    service.SessionStore
	hasher      service.PasswordHasher
	issuer      service.TokenIssuer
	publisher   service.EventPublisher
	validate    *validator.Validate
	guard       storeGuard
	sessionTTL  time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Sessions    service.SessionStore
	Hasher      service.PasswordHasher
	Issuer      service.TokenIssuer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	sessionTTL := defaultSessionTTL
	if params.Config != nil && params.Config.Session.TTL > 0 {
		sessionTTL = params.Config.Session.TTL
	}

	return &accountService{
		accountRepo: params.AccountRepo,
		sessions:    params.Sessions,
		hasher:      params.Hasher,
		issuer:      params.Issuer,
		publisher:   params.Publisher,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		guard:       newStoreGuard(params.Config),
		sessionTTL:  sessionTTL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers an account and opens its first session.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if util.TrimmedEmpty(input.Name) || util.TrimmedEmpty(input.Email) || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Starting signup", slog.String("email", input.Email))

	_, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByEmail(ctx, input.Email)
	})
	switch {
	case err == nil:
		srv.log(ctx).Info("Signup rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
		Age:          input.Age,
	}
	err = srv.guard.write(ctx, func(ctx context.Context) error {
		return srv.accountRepo.Insert(ctx, account)
	})
	if errors.Is(err, repository.ErrAccountAlreadyExists) {
		// Lost the race against a concurrent signup for the same email.
		srv.log(ctx).Info("Signup rejected at insert, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil {
		srv.log(ctx).Error("Failed to insert account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert account")
	}

	token, err := srv.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, entity.AccountEventSignedUp, account.ID, account.Email)
	srv.log(ctx).Info("Account created", slog.String("accountID", account.ID.String()))

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// Login verifies credentials and opens a new session.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	account, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByEmail(ctx, input.Email)
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Verify(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, entity.AccountEventLoggedIn, account.ID, account.Email)
	srv.log(ctx).Debug("Account logged in", slog.String("accountID", account.ID.String()))

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// ValidateToken resolves token through the session store to a live account.
func (srv *accountService) ValidateToken(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}
	if verifier, ok := srv.issuer.(service.TokenVerifier); ok {
		if err := verifier.Verify(token); err != nil {
			return nil, domainerrors.ErrInvalidToken
		}
	}

	session, err := srv.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (*entity.Account, error) {
		return srv.accountRepo.FindByID(ctx, session.AccountID)
	})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for token")
	}

	identity := account.Identity()

	return &identity, nil
}

// Logout revokes the session behind token.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrInvalidToken
	}

	session, err := srv.resolveSession(ctx, token)
	if err != nil {
		return err
	}

	err = srv.guard.write(ctx, func(ctx context.Context) error {
		return srv.sessions.Revoke(ctx, token)
	})
	if errors.Is(err, repository.ErrSessionNotFound) {
		return domainerrors.ErrInvalidToken
	}
	if err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	srv.publish(ctx, entity.AccountEventLoggedOut, session.AccountID, "")
	srv.log(ctx).Debug("Session revoked", slog.String("accountID", session.AccountID.String()))

	return nil
}

func (srv *accountService) resolveSession(ctx context.Context, token string) (*entity.Session, error) {
	session, err := guardedRead(ctx, srv.guard, func(ctx context.Context) (*entity.Session, error) {
		return srv.sessions.Resolve(ctx, token)
	})
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return session, nil
}

// openSession issues a token for account and registers it in the session store.
func (srv *accountService) openSession(ctx context.Context, account *entity.Account) (string, error) {
	token, err := srv.issuer.Issue(account.Email, account.PasswordHash, account.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	err = srv.guard.write(ctx, func(ctx context.Context) error {
		_, err := srv.sessions.Register(ctx, token, account.ID, srv.sessionTTL)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register session", slog.String("accountID", account.ID.String()), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to register session")
	}

	return token, nil
}

// publish emits an account event. Failures are logged and never fail the request.
func (srv *accountService) publish(ctx context.Context, eventType entity.AccountEventType, accountID uuid.UUID, email string) {
	if srv.publisher == nil {
		return
	}

	eventID, err := uuid.NewV7()
	if err != nil {
		srv.log(ctx).Warn("Failed to generate event id", slog.Any("error", err))

		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = srv.publisher.PublishAccountEvent(pubCtx, &service.AccountEventMessage{
		EventID:    eventID.String(),
		Type:       string(eventType),
		AccountID:  accountID.String(),
		Email:      email,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: srv.now().UTC(),
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("eventType", string(eventType)),
			slog.String("accountID", accountID.String()),
			slog.Any("error", err),
		)
	}
}
