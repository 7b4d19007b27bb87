package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/sms"

	"github.com/google/uuid"
)

// Dispatcher is the outbound message collaborator (pkg/sms in production).
type Dispatcher interface {
	Send(ctx context.Context, recipient, message, channel string) (*sms.DeliveryReceipt, error)
	IsConfigured() bool
}

type authUsecase struct {
	profileRepo domain.ProfileRepository
	dispatcher  Dispatcher
	issuer      *auth.TokenIssuer
	otpTTL      time.Duration
	maxAttempts int
	devMode     bool
}

func NewAuthUsecase(repo domain.ProfileRepository, dispatcher Dispatcher, issuer *auth.TokenIssuer, cfg *config.Config) domain.AuthUsecase {
	return &authUsecase{
		profileRepo: repo,
		dispatcher:  dispatcher,
		issuer:      issuer,
		otpTTL:      time.Duration(cfg.OTPTTLMinutes) * time.Minute,
		maxAttempts: cfg.OTPMaxAttempts,
		devMode:     cfg.DevMode,
	}
}

// RequestChallenge issues an OTP for the phone number, creating the profile
// on first contact. Re-issuance is always allowed and replaces any prior
// challenge.
func (u *authUsecase) RequestChallenge(ctx context.Context, phone, channel string) (*domain.ChallengeReceipt, error) {
	if !slices.Contains([]string{domain.ChannelSMS, domain.ChannelWhatsApp}, channel) {
		return nil, apperror.BadRequest("Channel must be sms or whatsapp")
	}

	profile, err := u.profileRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if profile == nil {
		profile = newProfile(phone)
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return u.issue(ctx, profile, channel)
}

// ResendChallenge re-issues an OTP for a known phone number.
func (u *authUsecase) ResendChallenge(ctx context.Context, phone, channel string) (*domain.ChallengeReceipt, error) {
	if !slices.Contains([]string{domain.ChannelSMS, domain.ChannelWhatsApp}, channel) {
		return nil, apperror.BadRequest("Channel must be sms or whatsapp")
	}

	profile, err := u.profileRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("No account found for this phone number")
	}

	return u.issue(ctx, profile, channel)
}

// issue replaces the profile's challenge, persists it, and dispatches the
// code. Dispatch failure does not roll back the challenge: the outcome is
// reported in the receipt's delivery field and the code stays valid.
func (u *authUsecase) issue(ctx context.Context, profile *domain.Profile, channel string) (*domain.ChallengeReceipt, error) {
	code, err := domain.GenerateChallengeCode()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	challenge := domain.NewChallenge(code, time.Now(), u.otpTTL)
	if err := u.profileRepo.UpdateChallenge(ctx, profile.ID, challenge); err != nil {
		return nil, err
	}

	receipt := &domain.ChallengeReceipt{
		Phone:            profile.Phone,
		Channel:          channel,
		ExpiresInMinutes: int(u.otpTTL.Minutes()),
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, receipt.ExpiresInMinutes)
	if _, err := u.dispatcher.Send(ctx, profile.Phone, message, channel); err != nil {
		// Tolerated: the challenge stays valid, the caller sees the failure
		logger.Log.Warn("OTP dispatch failed", "phone", profile.Phone, "channel", channel, "error", err)
		receipt.Delivery = domain.DeliveryStatus{Delivered: false, Reason: err.Error()}
	} else {
		receipt.Delivery = domain.DeliveryStatus{Delivered: true}
	}

	if u.devMode {
		receipt.Code = code
	}
	return receipt, nil
}

// VerifyChallenge checks the candidate code and on success marks the phone
// verified, clears the challenge, and mints a session token. A failed
// attempt is persisted before returning so the cap survives retries.
func (u *authUsecase) VerifyChallenge(ctx context.Context, phone, code string) (*domain.AuthSession, error) {
	profile, err := u.profileRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("No account found for this phone number")
	}

	switch profile.Challenge.Verify(code, time.Now(), u.maxAttempts) {
	case domain.VerifyNoChallenge:
		return nil, apperror.ChallengeFailed(apperror.ReasonNoChallenge, "No verification code was requested")
	case domain.VerifyExpired:
		return nil, apperror.ChallengeFailed(apperror.ReasonExpired, "Verification code has expired")
	case domain.VerifyExhausted:
		return nil, apperror.ChallengeFailed(apperror.ReasonAttemptsExhausted, "Too many incorrect attempts, request a new code")
	case domain.VerifyMismatch:
		if err := u.profileRepo.UpdateChallenge(ctx, profile.ID, profile.Challenge); err != nil {
			return nil, err
		}
		return nil, apperror.ChallengeFailed(apperror.ReasonInvalidCode, "Incorrect verification code")
	}

	now := time.Now()
	profile.PhoneVerified = true
	profile.Challenge = nil // consumed, sub-record removed
	profile.LastLoginAt = &now
	profile.UpdatedAt = now
	profile.Rescore()
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	token, err := u.issuer.Mint(profile.ID, profile.Phone)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthSession{
		Token:   token,
		Profile: profile.Summary(),
	}, nil
}

func (u *authUsecase) GetProfileByID(ctx context.Context, id string) (*domain.Profile, error) {
	return u.profileRepo.GetByID(ctx, id)
}

// newProfile builds the empty record created on first OTP request
func newProfile(phone string) *domain.Profile {
	now := time.Now()
	p := &domain.Profile{
		ID:              uuid.NewString(),
		Phone:           phone,
		DisplayLanguage: domain.DefaultDisplayLanguage,
		ExperienceLevel: domain.DefaultExperienceLevel,
		Notifications:   domain.DefaultNotificationSettings(),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.Rescore()
	return p
}
