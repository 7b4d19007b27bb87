package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, phone, email, full_name, birth_date, gender, city,
	display_language, languages, preferred_locations, willing_to_relocate,
	employment_types, experience_level, total_experience_years, work_history,
	last_salary, expected_salary, skills, certifications,
	job_categories, preferred_shifts, joining_availability, accommodation_required,
	notifications_enabled, email_notifications, sms_notifications, job_alerts, marketing_messages,
	phone_verified, email_verified, otp_code, otp_expires_at, otp_attempts,
	is_active, last_login_at, completion_percent, profile_completed,
	created_at, updated_at`

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	                  $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
	                  $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39)`

	args, err := writeArgs(p)
	if err != nil {
		return apperror.Internal(err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An account with this phone number or email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *profileRepo) GetByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE phone = $1`
	return r.getOne(ctx, query, phone)
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *profileRepo) getOne(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update persists the whole record, including the derived completion fields
// and the OTP sub-record, as one write.
func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET
		email = $2, full_name = $3, birth_date = $4, gender = $5, city = $6,
		display_language = $7, languages = $8, preferred_locations = $9, willing_to_relocate = $10,
		employment_types = $11, experience_level = $12, total_experience_years = $13, work_history = $14,
		last_salary = $15, expected_salary = $16, skills = $17, certifications = $18,
		job_categories = $19, preferred_shifts = $20, joining_availability = $21, accommodation_required = $22,
		notifications_enabled = $23, email_notifications = $24, sms_notifications = $25, job_alerts = $26, marketing_messages = $27,
		phone_verified = $28, email_verified = $29, otp_code = $30, otp_expires_at = $31, otp_attempts = $32,
		is_active = $33, last_login_at = $34, completion_percent = $35, profile_completed = $36,
		updated_at = $37
		WHERE id = $1`

	args, err := writeArgs(p)
	if err != nil {
		return apperror.Internal(err)
	}
	// writeArgs orders columns for INSERT; drop the immutable phone and
	// created_at for the update parameter list.
	updateArgs := make([]any, 0, 37)
	updateArgs = append(updateArgs, args[0])      // id
	updateArgs = append(updateArgs, args[2:37]...) // email .. profile_completed
	updateArgs = append(updateArgs, args[38])     // updated_at

	tag, err := r.db.Exec(ctx, query, updateArgs...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email is already registered to another account")
		}
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Profile not found")
	}
	return nil
}

// UpdateChallenge writes only the OTP sub-record. A nil challenge clears it.
func (r *profileRepo) UpdateChallenge(ctx context.Context, id string, challenge *domain.Challenge) error {
	query := `UPDATE profiles SET otp_code = $2, otp_expires_at = $3, otp_attempts = $4, updated_at = NOW()
	          WHERE id = $1`

	var args []any
	if challenge == nil {
		args = []any{id, nil, nil, 0}
	} else {
		args = []any{id, challenge.Code, challenge.ExpiresAt, challenge.Attempts}
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Profile not found")
	}
	return nil
}

// writeArgs flattens a profile into the column order of profileColumns
func writeArgs(p *domain.Profile) ([]any, error) {
	languages, err := marshalList(p.Languages)
	if err != nil {
		return nil, fmt.Errorf("marshal languages: %w", err)
	}
	locations, err := marshalList(p.PreferredLocations)
	if err != nil {
		return nil, fmt.Errorf("marshal preferred_locations: %w", err)
	}
	history, err := marshalList(p.WorkHistory)
	if err != nil {
		return nil, fmt.Errorf("marshal work_history: %w", err)
	}
	skills, err := marshalList(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}
	certs, err := marshalList(p.Certifications)
	if err != nil {
		return nil, fmt.Errorf("marshal certifications: %w", err)
	}
	lastSalary, err := marshalOptional(p.LastSalary)
	if err != nil {
		return nil, fmt.Errorf("marshal last_salary: %w", err)
	}
	expectedSalary, err := marshalOptional(p.ExpectedSalary)
	if err != nil {
		return nil, fmt.Errorf("marshal expected_salary: %w", err)
	}

	var otpCode any
	var otpExpires any
	otpAttempts := 0
	if p.Challenge != nil {
		otpCode = p.Challenge.Code
		otpExpires = p.Challenge.ExpiresAt
		otpAttempts = p.Challenge.Attempts
	}

	return []any{
		p.ID, p.Phone, p.Email, p.FullName, p.BirthDate, p.Gender, p.City,
		p.DisplayLanguage, languages, locations, p.WillingToRelocate,
		pq.Array(p.EmploymentTypes), p.ExperienceLevel, p.TotalExperienceYears, history,
		lastSalary, expectedSalary, skills, certs,
		pq.Array(p.JobCategories), pq.Array(p.PreferredShifts), p.JoiningAvailability, p.AccommodationRequired,
		p.Notifications.Enabled, p.Notifications.EmailEnabled, p.Notifications.SMSEnabled,
		p.Notifications.JobAlerts, p.Notifications.MarketingMessages,
		p.PhoneVerified, p.EmailVerified, otpCode, otpExpires, otpAttempts,
		p.IsActive, p.LastLoginAt, p.CompletionPercent, p.ProfileCompleted,
		p.CreatedAt, p.UpdatedAt,
	}, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var languages, locations, history, skills, certs []byte
	var lastSalary, expectedSalary []byte
	var otpCode *string
	var otpExpires *time.Time
	var otpAttempts int

	err := row.Scan(
		&p.ID, &p.Phone, &p.Email, &p.FullName, &p.BirthDate, &p.Gender, &p.City,
		&p.DisplayLanguage, &languages, &locations, &p.WillingToRelocate,
		pq.Array(&p.EmploymentTypes), &p.ExperienceLevel, &p.TotalExperienceYears, &history,
		&lastSalary, &expectedSalary, &skills, &certs,
		pq.Array(&p.JobCategories), pq.Array(&p.PreferredShifts), &p.JoiningAvailability, &p.AccommodationRequired,
		&p.Notifications.Enabled, &p.Notifications.EmailEnabled, &p.Notifications.SMSEnabled,
		&p.Notifications.JobAlerts, &p.Notifications.MarketingMessages,
		&p.PhoneVerified, &p.EmailVerified, &otpCode, &otpExpires, &otpAttempts,
		&p.IsActive, &p.LastLoginAt, &p.CompletionPercent, &p.ProfileCompleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalList(languages, &p.Languages); err != nil {
		return nil, fmt.Errorf("unmarshal languages: %w", err)
	}
	if err := unmarshalList(locations, &p.PreferredLocations); err != nil {
		return nil, fmt.Errorf("unmarshal preferred_locations: %w", err)
	}
	if err := unmarshalList(history, &p.WorkHistory); err != nil {
		return nil, fmt.Errorf("unmarshal work_history: %w", err)
	}
	if err := unmarshalList(skills, &p.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := unmarshalList(certs, &p.Certifications); err != nil {
		return nil, fmt.Errorf("unmarshal certifications: %w", err)
	}
	if lastSalary != nil {
		p.LastSalary = &domain.Salary{}
		if err := json.Unmarshal(lastSalary, p.LastSalary); err != nil {
			return nil, fmt.Errorf("unmarshal last_salary: %w", err)
		}
	}
	if expectedSalary != nil {
		p.ExpectedSalary = &domain.Salary{}
		if err := json.Unmarshal(expectedSalary, p.ExpectedSalary); err != nil {
			return nil, fmt.Errorf("unmarshal expected_salary: %w", err)
		}
	}

	if otpCode != nil && otpExpires != nil {
		p.Challenge = &domain.Challenge{
			Code:      *otpCode,
			ExpiresAt: *otpExpires,
			Attempts:  otpAttempts,
		}
	}

	return &p, nil
}

func marshalList(v any) ([]byte, error) {
	return json.Marshal(v)
}

func marshalOptional(v *domain.Salary) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalList(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
