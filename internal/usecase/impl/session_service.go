package impl

import (
	"context"
	"log/slog"

	deliverycontext "lumera/internal/delivery/context"
	"lumera/internal/domain/entity"
	domainerrors "lumera/internal/domain/errors"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/internal/errors"
	"lumera/internal/usecase"
)

type sessionService struct {
	identitySvc service.IdentityService
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	identitySvc service.IdentityService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identitySvc: identitySvc,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// SignUp registers a new account with the identity provider and writes the
// store-side user record.
func (s *sessionService) SignUp(ctx context.Context, input usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	session, err := s.identitySvc.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			return nil, domainerrors.ErrEmailInUse
		}

		return nil, errors.WithStack(err)
	}

	user, err := s.ensureUser(ctx, session.UID, session.Email)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Session: session, User: user}, nil
}

// SignIn authenticates an existing account. The user record is created
// lazily here, so accounts that predate the record layout heal on first
// sign-in.
func (s *sessionService) SignIn(ctx context.Context, input usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	session, err := s.identitySvc.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.WithStack(err)
	}

	user, err := s.ensureUser(ctx, session.UID, session.Email)
	if err != nil {
		return nil, err
	}

	return &usecase.SessionOutput{Session: session, User: user}, nil
}

// SignOut revokes the user's refresh tokens at the identity provider.
func (s *sessionService) SignOut(ctx context.Context, uid string) error {
	if err := s.identitySvc.SignOut(ctx, uid); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("sign-out revocation failed",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return domainerrors.ErrSignOutFailed
	}

	return nil
}

// Authenticate validates a bearer ID token and returns the caller identity.
func (s *sessionService) Authenticate(ctx context.Context, idToken string) (*entity.Identity, error) {
	identity, err := s.identitySvc.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrLoginRequired
	}

	return identity, nil
}

// ensureUser reads users/{uid}, creating the record on first contact.
func (s *sessionService) ensureUser(ctx context.Context, uid, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(err)
	}

	user = &entity.User{ID: uid, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
