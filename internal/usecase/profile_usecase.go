package usecase

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// requireSelf ensures the context identity matches the requested profile.
// The handlers always pass the authenticated ID, but the check keeps the
// usecase safe when called from anywhere else.
func requireSelf(ctx context.Context, id string) error {
	ctxID, ok := ctx.Value(domain.KeyProfileID).(string)
	if !ok || ctxID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxID != id {
		return apperror.Forbidden("You can only modify your own profile")
	}
	return nil
}

func (u *profileUsecase) load(ctx context.Context, id string) (*domain.Profile, error) {
	if err := requireSelf(ctx, id); err != nil {
		return nil, err
	}
	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

// save recomputes the completion score and persists the record in one write
func (u *profileUsecase) save(ctx context.Context, profile *domain.Profile) error {
	profile.Rescore()
	profile.UpdatedAt = time.Now()
	return u.repo.Update(ctx, profile)
}

func (u *profileUsecase) checkInput(in any) error {
	if err := u.validate.Struct(in); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}
	return nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id string) (*domain.ProfileSummary, error) {
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return profile.Summary(), nil
}

func (u *profileUsecase) GetCompleteProfile(ctx context.Context, id string) (*domain.Profile, *domain.CompletionBreakdown, error) {
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	breakdown := profile.Breakdown()
	return profile, &breakdown, nil
}

func (u *profileUsecase) UpdatePersonalDetails(ctx context.Context, id string, in *domain.PersonalDetailsInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != "" {
		other, err := u.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		// Changing to the caller's own current value is a no-op, not a conflict
		if other != nil && other.ID != profile.ID {
			return nil, apperror.Conflict("Email is already registered to another account")
		}
		if profile.Email == nil || *profile.Email != *in.Email {
			profile.EmailVerified = false
		}
		profile.Email = in.Email
	}
	if in.FullName != nil {
		profile.FullName = in.FullName
	}
	if in.BirthDate != nil {
		// Format already validated by the date_ymd tag
		birth, err := time.Parse("2006-01-02", *in.BirthDate)
		if err != nil {
			return nil, apperror.BadRequest("Date of birth must be in YYYY-MM-DD format")
		}
		profile.BirthDate = &birth
	}
	if in.Gender != nil {
		profile.Gender = in.Gender
	}
	if in.City != nil {
		profile.City = in.City
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateLanguage(ctx context.Context, id string, in *domain.LanguageInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.DisplayLanguage != nil {
		profile.DisplayLanguage = *in.DisplayLanguage
	}
	if in.Languages != nil {
		profile.Languages = *in.Languages
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateLocationPreferences(ctx context.Context, id string, in *domain.LocationPreferencesInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	if in.PreferredLocations != nil {
		if err := checkDistinctPriorities(*in.PreferredLocations); err != nil {
			return nil, err
		}
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.PreferredLocations != nil {
		profile.PreferredLocations = *in.PreferredLocations
	}
	if in.WillingToRelocate != nil {
		profile.WillingToRelocate = *in.WillingToRelocate
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// checkDistinctPriorities rejects location lists where two entries share a
// priority. The size cap is enforced by the max=3 tag.
func checkDistinctPriorities(locations []domain.PreferredLocation) error {
	seen := make(map[int]bool, len(locations))
	for _, loc := range locations {
		if seen[loc.Priority] {
			return apperror.Validation([]string{"Preferred locations: priorities must be distinct"})
		}
		seen[loc.Priority] = true
	}
	return nil
}

func (u *profileUsecase) UpdateWorkAvailability(ctx context.Context, id string, in *domain.WorkAvailabilityInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.EmploymentTypes != nil {
		profile.EmploymentTypes = *in.EmploymentTypes
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateExperience(ctx context.Context, id string, in *domain.ExperienceInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ExperienceLevel != nil {
		profile.ExperienceLevel = *in.ExperienceLevel
	}
	if in.TotalExperienceYears != nil {
		profile.TotalExperienceYears = *in.TotalExperienceYears
	}
	if in.WorkHistory != nil {
		profile.WorkHistory = *in.WorkHistory
	}
	if in.LastSalary != nil {
		profile.LastSalary = in.LastSalary
	}
	if in.ExpectedSalary != nil {
		profile.ExpectedSalary = in.ExpectedSalary
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateSkills(ctx context.Context, id string, in *domain.SkillsInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Skills != nil {
		profile.Skills = *in.Skills
	}
	if in.Certifications != nil {
		profile.Certifications = *in.Certifications
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateJobPreferences(ctx context.Context, id string, in *domain.JobPreferencesInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.JobCategories != nil {
		profile.JobCategories = *in.JobCategories
	}
	if in.PreferredShifts != nil {
		profile.PreferredShifts = *in.PreferredShifts
	}
	if in.JoiningAvailability != nil {
		profile.JoiningAvailability = in.JoiningAvailability
	}
	if in.AccommodationRequired != nil {
		profile.AccommodationRequired = *in.AccommodationRequired
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateNotificationSettings(ctx context.Context, id string, in *domain.NotificationSettingsInput) (*domain.Profile, error) {
	if err := u.checkInput(in); err != nil {
		return nil, err
	}
	profile, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Enabled != nil {
		profile.Notifications.Enabled = *in.Enabled
	}
	if in.EmailEnabled != nil {
		profile.Notifications.EmailEnabled = *in.EmailEnabled
	}
	if in.SMSEnabled != nil {
		profile.Notifications.SMSEnabled = *in.SMSEnabled
	}
	if in.JobAlerts != nil {
		profile.Notifications.JobAlerts = *in.JobAlerts
	}
	if in.MarketingMessages != nil {
		profile.Notifications.MarketingMessages = *in.MarketingMessages
	}

	if err := u.save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Deactivate flips the active flag. Records are never hard-deleted.
func (u *profileUsecase) Deactivate(ctx context.Context, id string) error {
	profile, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	profile.IsActive = false
	return u.save(ctx, profile)
}
