package impl

import (
	"context"
	"log/slog"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	residentRepo repository.ResidentRepository
	hasher       service.PasswordHasher
	tokenSvc     service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ResidentRepo repository.ResidentRepository
	Hasher       service.PasswordHasher
	TokenSvc     service.TokenService
	Logger       *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		residentRepo: params.ResidentRepo,
		hasher:       params.Hasher,
		tokenSvc:     params.TokenSvc,
		logger:       params.Logger,
	}
}

// Login verifies the credentials and issues a token pair. A wrong email and
// a wrong password return the same error so the endpoint does not leak which
// accounts exist.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	resident, err := s.residentRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if resident.PasswordHash == "" || !s.hasher.Check(input.Password, resident.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// Admins always may log in; residents only once approved and while not
	// checked out.
	if resident.Role != entity.RoleAdmin {
		if resident.RegistrationStatus != entity.RegistrationApproved {
			return nil, domainerrors.ErrForbidden.WrapMessage("registration not approved")
		}
		if resident.IsCheckedOut() {
			return nil, domainerrors.ErrForbidden.WrapMessage("account has checked out")
		}
	}

	accessToken, refreshToken, err := s.tokenSvc.GenerateTokens(resident.ID, string(resident.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "login succeeded",
		slog.String("residentId", resident.ID.String()),
		slog.String("role", string(resident.Role)),
	)

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Resident:     resident,
	}, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	resident, err := s.residentRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return domainerrors.ErrResidentNotFound
		}

		return errors.Wrap(err, "failed to load account")
	}

	if !s.hasher.Check(currentPassword, resident.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	resident.PasswordHash = hash
	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	return nil
}
