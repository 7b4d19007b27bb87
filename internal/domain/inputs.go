package domain

// Section update payloads. Nil pointer fields are left unchanged (partial
// update); supplied list-valued fields replace the stored list wholesale.

type PersonalDetailsInput struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=2,max=100,valid_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	BirthDate *string `json:"birth_date" validate:"omitempty,date_ymd"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female other"`
	City      *string `json:"city" validate:"omitempty,max=100,valid_name"`
}

type LanguageInput struct {
	DisplayLanguage *string          `json:"display_language" validate:"omitempty,min=2,max=30,valid_name"`
	Languages       *[]LanguageSkill `json:"languages" validate:"omitempty,dive"`
}

type LocationPreferencesInput struct {
	PreferredLocations *[]PreferredLocation `json:"preferred_locations" validate:"omitempty,max=3,dive"`
	WillingToRelocate  *bool                `json:"willing_to_relocate"`
}

type WorkAvailabilityInput struct {
	EmploymentTypes *[]string `json:"employment_types" validate:"omitempty,dive,oneof=full-time part-time contract freelance internship"`
}

type ExperienceInput struct {
	ExperienceLevel      *string             `json:"experience_level" validate:"omitempty,oneof=fresher experienced"`
	TotalExperienceYears *int                `json:"total_experience_years" validate:"omitempty,gte=0,lte=50"`
	WorkHistory          *[]WorkHistoryEntry `json:"work_history" validate:"omitempty,dive"`
	LastSalary           *Salary             `json:"last_salary" validate:"omitempty"`
	ExpectedSalary       *Salary             `json:"expected_salary" validate:"omitempty"`
}

type SkillsInput struct {
	Skills         *[]Skill         `json:"skills" validate:"omitempty,dive"`
	Certifications *[]Certification `json:"certifications" validate:"omitempty,dive"`
}

type JobPreferencesInput struct {
	JobCategories         *[]string `json:"job_categories" validate:"omitempty,dive,oneof=construction delivery driver factory healthcare hospitality housekeeping office retail security"`
	PreferredShifts       *[]string `json:"preferred_shifts" validate:"omitempty,dive,oneof=day night rotational"`
	JoiningAvailability   *string   `json:"joining_availability" validate:"omitempty,oneof=immediate within-week within-month"`
	AccommodationRequired *bool     `json:"accommodation_required"`
}

type NotificationSettingsInput struct {
	Enabled           *bool `json:"notifications_enabled"`
	EmailEnabled      *bool `json:"email_notifications"`
	SMSEnabled        *bool `json:"sms_notifications"`
	JobAlerts         *bool `json:"job_alerts"`
	MarketingMessages *bool `json:"marketing_messages"`
}
