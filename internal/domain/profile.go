package domain

import (
	"context"
	"time"
)

// Profile is the single persisted entity: one row per job-portal registrant,
// uniquely keyed by phone number. Email is unique when present.
type Profile struct {
	ID    string  `json:"id"`
	Phone string  `json:"phone_number"`
	Email *string `json:"email,omitempty"`

	// Identity
	FullName  *string    `json:"full_name,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	City      *string    `json:"city,omitempty"`

	// Language
	DisplayLanguage string          `json:"display_language"`
	Languages       []LanguageSkill `json:"languages"`

	// Location preference
	PreferredLocations []PreferredLocation `json:"preferred_locations"`
	WillingToRelocate  bool                `json:"willing_to_relocate"`

	// Work availability
	EmploymentTypes []string `json:"employment_types"`

	// Experience
	ExperienceLevel      string             `json:"experience_level"`
	TotalExperienceYears int                `json:"total_experience_years"`
	WorkHistory          []WorkHistoryEntry `json:"work_history"`
	LastSalary           *Salary            `json:"last_salary,omitempty"`
	ExpectedSalary       *Salary            `json:"expected_salary,omitempty"`

	// Skills
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`

	// Job preference
	JobCategories         []string `json:"job_categories"`
	PreferredShifts       []string `json:"preferred_shifts"`
	JoiningAvailability   *string  `json:"joining_availability,omitempty"`
	AccommodationRequired bool     `json:"accommodation_required"`

	Notifications NotificationSettings `json:"notification_settings"`

	// Verification / security
	PhoneVerified bool       `json:"phone_verified"`
	EmailVerified bool       `json:"email_verified"`
	Challenge     *Challenge `json:"-"` // live OTP challenge, nil when none
	IsActive      bool       `json:"is_active"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`

	// Derived, recomputed on every persisted mutation
	CompletionPercent int  `json:"completion_percent"`
	ProfileCompleted  bool `json:"profile_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LanguageSkill struct {
	Name        string `json:"name" validate:"required,max=50,valid_name"`
	Proficiency string `json:"proficiency" validate:"required,oneof=basic intermediate fluent native"`
}

type PreferredLocation struct {
	City     string `json:"city" validate:"required,max=100,valid_name"`
	Priority int    `json:"priority" validate:"required,gte=1"`
}

type WorkHistoryEntry struct {
	Company          string  `json:"company" validate:"required,max=150,no_emoji"`
	Role             string  `json:"role" validate:"required,max=100,no_emoji"`
	StartDate        string  `json:"start_date" validate:"required,date_ymd"`
	EndDate          *string `json:"end_date,omitempty" validate:"omitempty,date_ymd"`
	CurrentlyWorking bool    `json:"currently_working"`
	Description      string  `json:"description" validate:"max=1000"`
}

type Salary struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	Period string  `json:"period" validate:"required,oneof=monthly yearly"`
}

type Skill struct {
	Name  string `json:"name" validate:"required,max=80,no_emoji"`
	Level string `json:"level" validate:"required,oneof=beginner intermediate advanced expert"`
}

type Certification struct {
	Name         string  `json:"name" validate:"required,max=150,no_emoji"`
	Issuer       string  `json:"issuer" validate:"max=150,no_emoji"`
	IssueDate    *string `json:"issue_date,omitempty" validate:"omitempty,date_ymd"`
	ExpiryDate   *string `json:"expiry_date,omitempty" validate:"omitempty,date_ymd"`
	CredentialID string  `json:"credential_id" validate:"max=100"`
}

type NotificationSettings struct {
	Enabled           bool `json:"notifications_enabled"`
	EmailEnabled      bool `json:"email_notifications"`
	SMSEnabled        bool `json:"sms_notifications"`
	JobAlerts         bool `json:"job_alerts"`
	MarketingMessages bool `json:"marketing_messages"`
}

// DefaultNotificationSettings are applied when a profile is created
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:           true,
		EmailEnabled:      true,
		SMSEnabled:        true,
		JobAlerts:         true,
		MarketingMessages: false,
	}
}

// ProfileSummary is the compact projection returned by auth and /profiles/me
type ProfileSummary struct {
	ID                string     `json:"id"`
	Phone             string     `json:"phone_number"`
	Email             *string    `json:"email,omitempty"`
	FullName          *string    `json:"full_name,omitempty"`
	City              *string    `json:"city,omitempty"`
	ExperienceLevel   string     `json:"experience_level"`
	PhoneVerified     bool       `json:"phone_verified"`
	CompletionPercent int        `json:"completion_percent"`
	ProfileCompleted  bool       `json:"profile_completed"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

func (p *Profile) Summary() *ProfileSummary {
	return &ProfileSummary{
		ID:                p.ID,
		Phone:             p.Phone,
		Email:             p.Email,
		FullName:          p.FullName,
		City:              p.City,
		ExperienceLevel:   p.ExperienceLevel,
		PhoneVerified:     p.PhoneVerified,
		CompletionPercent: p.CompletionPercent,
		ProfileCompleted:  p.ProfileCompleted,
		LastLoginAt:       p.LastLoginAt,
	}
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByPhone(ctx context.Context, phone string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	// Update persists the whole record, including the derived completion
	// fields, as one write.
	Update(ctx context.Context, profile *Profile) error
	// UpdateChallenge persists only the OTP sub-record. Used for attempt
	// increments so a failed verification still durably counts.
	UpdateChallenge(ctx context.Context, id string, challenge *Challenge) error
}

type AuthUsecase interface {
	RequestChallenge(ctx context.Context, phone, channel string) (*ChallengeReceipt, error)
	ResendChallenge(ctx context.Context, phone, channel string) (*ChallengeReceipt, error)
	VerifyChallenge(ctx context.Context, phone, code string) (*AuthSession, error)
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, id string) (*ProfileSummary, error)
	GetCompleteProfile(ctx context.Context, id string) (*Profile, *CompletionBreakdown, error)
	UpdatePersonalDetails(ctx context.Context, id string, in *PersonalDetailsInput) (*Profile, error)
	UpdateLanguage(ctx context.Context, id string, in *LanguageInput) (*Profile, error)
	UpdateLocationPreferences(ctx context.Context, id string, in *LocationPreferencesInput) (*Profile, error)
	UpdateWorkAvailability(ctx context.Context, id string, in *WorkAvailabilityInput) (*Profile, error)
	UpdateExperience(ctx context.Context, id string, in *ExperienceInput) (*Profile, error)
	UpdateSkills(ctx context.Context, id string, in *SkillsInput) (*Profile, error)
	UpdateJobPreferences(ctx context.Context, id string, in *JobPreferencesInput) (*Profile, error)
	UpdateNotificationSettings(ctx context.Context, id string, in *NotificationSettingsInput) (*Profile, error)
	Deactivate(ctx context.Context, id string) error
}

// ChallengeReceipt is returned to the caller after an OTP issuance.
// Delivery is reported explicitly rather than failing the issuance: a failed
// send leaves the challenge valid.
type ChallengeReceipt struct {
	Phone            string         `json:"phone_number"`
	Channel          string         `json:"channel"`
	ExpiresInMinutes int            `json:"expires_in_minutes"`
	Delivery         DeliveryStatus `json:"delivery"`
	// Code is only populated in dev mode
	Code string `json:"otp_code,omitempty"`
}

type DeliveryStatus struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

// AuthSession is the result of a successful OTP verification
type AuthSession struct {
	Token   string          `json:"token"`
	Profile *ProfileSummary `json:"profile"`
}
