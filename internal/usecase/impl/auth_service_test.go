package impl

import (
	"context"
	"testing"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	mockRepo "comfortstay/internal/mocks/repository"
	mockSvc "comfortstay/internal/mocks/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service      usecase.AuthUsecase
	residentRepo *mockRepo.MockResidentRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenSvc     *mockSvc.MockTokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	f := &authFixture{
		residentRepo: mockRepo.NewMockResidentRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenSvc:     mockSvc.NewMockTokenService(t),
	}

	f.service = NewAuthService(AuthServiceParams{
		ResidentRepo: f.residentRepo,
		Hasher:       f.hasher,
		TokenSvc:     f.tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestAuthService_Login_ApprovedResident(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "jane.doe@example.com",
		PasswordHash:       "stored-hash",
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationApproved,
		IsActive:           true,
	}

	f.residentRepo.EXPECT().FindByEmail(ctx, resident.Email).Return(resident, nil)
	f.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	f.tokenSvc.EXPECT().
		GenerateTokens(resident.ID, string(entity.RoleResident)).
		Return("access-token", "refresh-token", nil)

	result, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    resident.Email,
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, resident, result.Resident)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.residentRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrResidentNotFound)

	_, unknownErr := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	resident := &entity.Resident{
		ID:           uuid.New(),
		Email:        "jane.doe@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleResident,
	}
	f.residentRepo.EXPECT().FindByEmail(ctx, resident.Email).Return(resident, nil)
	f.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, wrongErr := f.service.Login(ctx, &usecase.LoginInput{
		Email:    resident.Email,
		Password: "wrong",
	})

	// Account enumeration is not possible through the error.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_PendingRegistrationRejected(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "pending@example.com",
		PasswordHash:       "stored-hash",
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationPending,
	}

	f.residentRepo.EXPECT().FindByEmail(ctx, resident.Email).Return(resident, nil)
	f.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	result, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    resident.Email,
		Password: "secret",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Login_CheckedOutResidentRejected(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	moveOut := time.Now().AddDate(0, -2, 0)
	resident := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "gone@example.com",
		PasswordHash:       "stored-hash",
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationApproved,
		IsActive:           false,
		MoveOutDate:        &moveOut,
	}

	f.residentRepo.EXPECT().FindByEmail(ctx, resident.Email).Return(resident, nil)
	f.hasher.EXPECT().Check("secret", "stored-hash").Return(true)

	result, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    resident.Email,
		Password: "secret",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Login_AdminBypassesResidencyChecks(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	admin := &entity.Resident{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleAdmin,
	}

	f.residentRepo.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
	f.hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	f.tokenSvc.EXPECT().
		GenerateTokens(admin.ID, string(entity.RoleAdmin)).
		Return("access-token", "refresh-token", nil)

	result, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    admin.Email,
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:           uuid.New(),
		PasswordHash: "old-hash",
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.hasher.EXPECT().Check("old-pass", "old-hash").Return(true)
	f.hasher.EXPECT().Hash("new-pass").Return("new-hash", nil)
	f.residentRepo.EXPECT().Update(ctx, resident).Return(nil)

	err := f.service.ChangePassword(ctx, resident.ID, "old-pass", "new-pass")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", resident.PasswordHash)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:           uuid.New(),
		PasswordHash: "old-hash",
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.hasher.EXPECT().Check("guess", "old-hash").Return(false)

	err := f.service.ChangePassword(ctx, resident.ID, "guess", "new-pass")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, "old-hash", resident.PasswordHash)
}
