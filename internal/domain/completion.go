package domain

import "math"

// CompletionBreakdown lists the fixed predicates that make up the profile
// completion score, one flag per predicate.
type CompletionBreakdown struct {
	FullName          bool `json:"full_name"`
	Email             bool `json:"email"`
	BirthDate         bool `json:"birth_date"`
	Gender            bool `json:"gender"`
	City              bool `json:"city"`
	PreferredLocation bool `json:"preferred_location"`
	WorkAvailability  bool `json:"work_availability"`
	ExperienceLevel   bool `json:"experience_level"`
	Skill             bool `json:"skill"`
	JobCategory       bool `json:"job_category"`
}

const completionPredicates = 10

// CompletedThreshold is the percentage at or above which a profile counts as complete.
const CompletedThreshold = 80

// Breakdown evaluates the completion predicates against the snapshot.
func (p *Profile) Breakdown() CompletionBreakdown {
	return CompletionBreakdown{
		FullName:          p.FullName != nil && *p.FullName != "",
		Email:             p.Email != nil && *p.Email != "",
		BirthDate:         p.BirthDate != nil,
		Gender:            p.Gender != nil && *p.Gender != "",
		City:              p.City != nil && *p.City != "",
		PreferredLocation: len(p.PreferredLocations) > 0,
		WorkAvailability:  len(p.EmploymentTypes) > 0,
		ExperienceLevel:   p.ExperienceLevel != "",
		Skill:             len(p.Skills) > 0,
		JobCategory:       len(p.JobCategories) > 0,
	}
}

// Score converts a breakdown into (percentage, completed). Percentage is
// round-half-up of matched/total; completed means percentage >= 80.
func (b CompletionBreakdown) Score() (int, bool) {
	matched := 0
	for _, ok := range []bool{
		b.FullName, b.Email, b.BirthDate, b.Gender, b.City,
		b.PreferredLocation, b.WorkAvailability, b.ExperienceLevel,
		b.Skill, b.JobCategory,
	} {
		if ok {
			matched++
		}
	}
	percent := int(math.Round(float64(matched) / completionPredicates * 100))
	return percent, percent >= CompletedThreshold
}

// Rescore recomputes the derived completion fields in place. Callers must
// invoke it before any persisted mutation so the stored score never goes
// stale.
func (p *Profile) Rescore() {
	p.CompletionPercent, p.ProfileCompleted = p.Breakdown().Score()
}
