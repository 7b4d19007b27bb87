package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/sms"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) UpdateChallenge(ctx context.Context, id string, challenge *domain.Challenge) error {
	return m.Called(ctx, id, challenge).Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, recipient, message, channel string) (*sms.DeliveryReceipt, error) {
	args := m.Called(ctx, recipient, message, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sms.DeliveryReceipt), args.Error(1)
}

func (m *MockDispatcher) IsConfigured() bool {
	return m.Called().Bool(0)
}

func testConfig() *config.Config {
	return &config.Config{
		OTPTTLMinutes:  10,
		OTPMaxAttempts: 3,
		DevMode:        true,
	}
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", 30*24*time.Hour)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func strPtr(s string) *string { return &s }

func TestRequestChallenge(t *testing.T) {
	t.Run("First contact creates a profile with defaults", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockSMS := new(MockDispatcher)
		uc := usecase.NewAuthUsecase(mockRepo, mockSMS, testIssuer(), testConfig())

		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(nil, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "+919876543210", p.Phone)
			assert.Equal(t, domain.DefaultExperienceLevel, p.ExperienceLevel)
			assert.Equal(t, domain.DefaultDisplayLanguage, p.DisplayLanguage)
			assert.True(t, p.IsActive)
			assert.False(t, p.PhoneVerified)
		})
		mockRepo.On("UpdateChallenge", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.Challenge")).Return(nil)
		mockSMS.On("Send", mock.Anything, "+919876543210", mock.Anything, domain.ChannelSMS).
			Return(&sms.DeliveryReceipt{Status: "sent"}, nil)

		receipt, err := uc.RequestChallenge(context.Background(), "+919876543210", domain.ChannelSMS)
		require.NoError(t, err)
		assert.Equal(t, 10, receipt.ExpiresInMinutes)
		assert.True(t, receipt.Delivery.Delivered)
		assert.Len(t, receipt.Code, 6) // dev mode echoes the code
		mockRepo.AssertExpectations(t)
	})

	t.Run("Dispatch failure is reported, not fatal", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockSMS := new(MockDispatcher)
		uc := usecase.NewAuthUsecase(mockRepo, mockSMS, testIssuer(), testConfig())

		existing := &domain.Profile{ID: "p1", Phone: "+919876543210", IsActive: true}
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(existing, nil)
		mockRepo.On("UpdateChallenge", mock.Anything, "p1", mock.Anything).Return(nil)
		mockSMS.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("gateway timeout"))

		receipt, err := uc.RequestChallenge(context.Background(), "+919876543210", domain.ChannelSMS)
		require.NoError(t, err)
		assert.False(t, receipt.Delivery.Delivered)
		assert.Contains(t, receipt.Delivery.Reason, "gateway timeout")
	})

	t.Run("Unknown channel is rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		_, err := uc.RequestChallenge(context.Background(), "+919876543210", "carrier-pigeon")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestResendChallenge(t *testing.T) {
	t.Run("Unknown phone is not found", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		mockRepo.On("GetByPhone", mock.Anything, "+910000000000").Return(nil, nil)

		_, err := uc.ResendChallenge(context.Background(), "+910000000000", domain.ChannelWhatsApp)
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func profileWithChallenge(code string, attempts int, expiresIn time.Duration) *domain.Profile {
	return &domain.Profile{
		ID:       "p1",
		Phone:    "+919876543210",
		IsActive: true,
		Challenge: &domain.Challenge{
			Code:      code,
			ExpiresAt: time.Now().Add(expiresIn),
			Attempts:  attempts,
		},
	}
}

func TestVerifyChallenge(t *testing.T) {
	t.Run("Correct code mints a session and consumes the challenge", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		issuer := testIssuer()
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), issuer, testConfig())

		profile := profileWithChallenge("123456", 0, 10*time.Minute)
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(profile, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.True(t, p.PhoneVerified)
			assert.Nil(t, p.Challenge)
			assert.NotNil(t, p.LastLoginAt)
		})

		session, err := uc.VerifyChallenge(context.Background(), "+919876543210", "123456")
		require.NoError(t, err)
		require.NotNil(t, session.Profile)
		assert.Equal(t, "p1", session.Profile.ID)

		claims, err := issuer.Parse(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "p1", claims.Subject)
		assert.Equal(t, "+919876543210", claims.Phone)
	})

	t.Run("Wrong code persists the attempt and reports INVALID_CODE", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		profile := profileWithChallenge("123456", 0, 10*time.Minute)
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(profile, nil)
		mockRepo.On("UpdateChallenge", mock.Anything, "p1", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(2).(*domain.Challenge)
			assert.Equal(t, 1, c.Attempts)
		})

		_, err := uc.VerifyChallenge(context.Background(), "+919876543210", "000000")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, apperror.ReasonInvalidCode, appErr.Reason)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Correct code after three failures reports ATTEMPTS_EXHAUSTED", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		profile := profileWithChallenge("123456", 3, 10*time.Minute)
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(profile, nil)

		_, err := uc.VerifyChallenge(context.Background(), "+919876543210", "123456")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.ReasonAttemptsExhausted, appErr.Reason)
	})

	t.Run("Expired code reports EXPIRED", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		profile := profileWithChallenge("123456", 0, -time.Minute)
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(profile, nil)

		_, err := uc.VerifyChallenge(context.Background(), "+919876543210", "123456")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.ReasonExpired, appErr.Reason)
	})

	t.Run("No pending challenge reports NO_CHALLENGE", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(mockRepo, new(MockDispatcher), testIssuer(), testConfig())

		profile := &domain.Profile{ID: "p1", Phone: "+919876543210", IsActive: true}
		mockRepo.On("GetByPhone", mock.Anything, "+919876543210").Return(profile, nil)

		_, err := uc.VerifyChallenge(context.Background(), "+919876543210", "123456")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.ReasonNoChallenge, appErr.Reason)
	})
}

func TestProfileIDOR(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, newValidate())

	t.Run("Should fail when context identity does not match argument", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyProfileID, "p1")
		_, err := uc.GetProfile(ctx, "p2")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("Should fail safely when context identity is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "p1")
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestUpdatePersonalDetails(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyProfileID, "p1")

	t.Run("Email owned by another account conflicts", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{ID: "p1", Phone: "+919876543210", IsActive: true}
		other := &domain.Profile{ID: "p2", Phone: "+918888888888"}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(other, nil)

		_, err := uc.UpdatePersonalDetails(ctx, "p1", &domain.PersonalDetailsInput{
			Email: strPtr("taken@example.com"),
		})
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Re-submitting own email is a no-op, not a conflict", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{
			ID: "p1", Phone: "+919876543210", IsActive: true,
			Email: strPtr("me@example.com"), EmailVerified: true,
		}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("GetByEmail", mock.Anything, "me@example.com").Return(own, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.True(t, p.EmailVerified, "unchanged email must stay verified")
		})

		_, err := uc.UpdatePersonalDetails(ctx, "p1", &domain.PersonalDetailsInput{
			Email: strPtr("me@example.com"),
		})
		require.NoError(t, err)
	})

	t.Run("Changing email resets verification", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{
			ID: "p1", Phone: "+919876543210", IsActive: true,
			Email: strPtr("old@example.com"), EmailVerified: true,
		}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.False(t, p.EmailVerified)
			assert.Equal(t, "new@example.com", *p.Email)
		})

		_, err := uc.UpdatePersonalDetails(ctx, "p1", &domain.PersonalDetailsInput{
			Email: strPtr("new@example.com"),
		})
		require.NoError(t, err)
	})

	t.Run("Invalid gender fails validation", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		_, err := uc.UpdatePersonalDetails(ctx, "p1", &domain.PersonalDetailsInput{
			Gender: strPtr("unknown"),
		})
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.NotEmpty(t, appErr.Fields)
	})

	t.Run("Mutation recomputes the completion score", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{ID: "p1", Phone: "+919876543210", IsActive: true}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		updated, err := uc.UpdatePersonalDetails(ctx, "p1", &domain.PersonalDetailsInput{
			FullName: strPtr("Ravi Kumar"),
			City:     strPtr("Pune"),
		})
		require.NoError(t, err)
		assert.Equal(t, 20, updated.CompletionPercent)
	})
}

func TestUpdateLocationPreferences(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyProfileID, "p1")

	t.Run("Duplicate priorities are rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		locations := []domain.PreferredLocation{
			{City: "Mumbai", Priority: 1},
			{City: "Pune", Priority: 1},
		}
		_, err := uc.UpdateLocationPreferences(ctx, "p1", &domain.LocationPreferencesInput{
			PreferredLocations: &locations,
		})
		require.Error(t, err)
		appErr := &apperror.AppError{}
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("More than three locations are rejected", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		locations := []domain.PreferredLocation{
			{City: "Mumbai", Priority: 1},
			{City: "Pune", Priority: 2},
			{City: "Nagpur", Priority: 3},
			{City: "Nashik", Priority: 4},
		}
		_, err := uc.UpdateLocationPreferences(ctx, "p1", &domain.LocationPreferencesInput{
			PreferredLocations: &locations,
		})
		require.Error(t, err)
	})

	t.Run("Supplied list replaces the stored list wholesale", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{
			ID: "p1", Phone: "+919876543210", IsActive: true,
			PreferredLocations: []domain.PreferredLocation{
				{City: "Delhi", Priority: 1},
				{City: "Jaipur", Priority: 2},
			},
		}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		locations := []domain.PreferredLocation{{City: "Mumbai", Priority: 1}}
		updated, err := uc.UpdateLocationPreferences(ctx, "p1", &domain.LocationPreferencesInput{
			PreferredLocations: &locations,
		})
		require.NoError(t, err)
		require.Len(t, updated.PreferredLocations, 1)
		assert.Equal(t, "Mumbai", updated.PreferredLocations[0].City)
	})

	t.Run("Nil fields leave the profile unchanged", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidate())

		own := &domain.Profile{
			ID: "p1", Phone: "+919876543210", IsActive: true,
			PreferredLocations: []domain.PreferredLocation{{City: "Delhi", Priority: 1}},
			WillingToRelocate:  true,
		}
		mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		updated, err := uc.UpdateLocationPreferences(ctx, "p1", &domain.LocationPreferencesInput{})
		require.NoError(t, err)
		assert.Len(t, updated.PreferredLocations, 1)
		assert.True(t, updated.WillingToRelocate)
	})
}

func TestDeactivate(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyProfileID, "p1")
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, newValidate())

	own := &domain.Profile{ID: "p1", Phone: "+919876543210", IsActive: true}
	mockRepo.On("GetByID", mock.Anything, "p1").Return(own, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.Profile)
		assert.False(t, p.IsActive)
	})

	err := uc.Deactivate(ctx, "p1")
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
