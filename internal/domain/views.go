package domain

import "time"

// Section projections returned by the update endpoints alongside the new
// completion percentage.

type PersonalDetailsSection struct {
	FullName  *string    `json:"full_name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	City      *string    `json:"city,omitempty"`
}

func (p *Profile) PersonalDetails() PersonalDetailsSection {
	return PersonalDetailsSection{
		FullName:  p.FullName,
		Email:     p.Email,
		BirthDate: p.BirthDate,
		Gender:    p.Gender,
		City:      p.City,
	}
}

type LanguageSection struct {
	DisplayLanguage string          `json:"display_language"`
	Languages       []LanguageSkill `json:"languages"`
}

func (p *Profile) Language() LanguageSection {
	return LanguageSection{
		DisplayLanguage: p.DisplayLanguage,
		Languages:       p.Languages,
	}
}

type LocationPreferencesSection struct {
	PreferredLocations []PreferredLocation `json:"preferred_locations"`
	WillingToRelocate  bool                `json:"willing_to_relocate"`
}

func (p *Profile) LocationPreferences() LocationPreferencesSection {
	return LocationPreferencesSection{
		PreferredLocations: p.PreferredLocations,
		WillingToRelocate:  p.WillingToRelocate,
	}
}

type WorkAvailabilitySection struct {
	EmploymentTypes []string `json:"employment_types"`
}

func (p *Profile) WorkAvailability() WorkAvailabilitySection {
	return WorkAvailabilitySection{EmploymentTypes: p.EmploymentTypes}
}

type ExperienceSection struct {
	ExperienceLevel      string             `json:"experience_level"`
	TotalExperienceYears int                `json:"total_experience_years"`
	WorkHistory          []WorkHistoryEntry `json:"work_history"`
	LastSalary           *Salary            `json:"last_salary,omitempty"`
	ExpectedSalary       *Salary            `json:"expected_salary,omitempty"`
}

func (p *Profile) Experience() ExperienceSection {
	return ExperienceSection{
		ExperienceLevel:      p.ExperienceLevel,
		TotalExperienceYears: p.TotalExperienceYears,
		WorkHistory:          p.WorkHistory,
		LastSalary:           p.LastSalary,
		ExpectedSalary:       p.ExpectedSalary,
	}
}

type SkillsSection struct {
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
}

func (p *Profile) SkillsSection() SkillsSection {
	return SkillsSection{
		Skills:         p.Skills,
		Certifications: p.Certifications,
	}
}

type JobPreferencesSection struct {
	JobCategories         []string `json:"job_categories"`
	PreferredShifts       []string `json:"preferred_shifts"`
	JoiningAvailability   *string  `json:"joining_availability,omitempty"`
	AccommodationRequired bool     `json:"accommodation_required"`
}

func (p *Profile) JobPreferences() JobPreferencesSection {
	return JobPreferencesSection{
		JobCategories:         p.JobCategories,
		PreferredShifts:       p.PreferredShifts,
		JoiningAvailability:   p.JoiningAvailability,
		AccommodationRequired: p.AccommodationRequired,
	}
}
