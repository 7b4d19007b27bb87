package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Identity
	"FullName":  "Full name",
	"Email":     "Email",
	"BirthDate": "Date of birth",
	"Gender":    "Gender",
	"City":      "City",

	// Language
	"DisplayLanguage": "Display language",
	"Languages":       "Languages",
	"Proficiency":     "Language proficiency",

	// Location preference
	"PreferredLocations": "Preferred locations",
	"Priority":           "Location priority",
	"WillingToRelocate":  "Relocation willingness",

	// Work availability
	"EmploymentTypes": "Employment types",

	// Experience
	"ExperienceLevel":      "Experience level",
	"TotalExperienceYears": "Total years of experience",
	"WorkHistory":          "Work history",
	"Company":              "Employer",
	"Role":                 "Role",
	"StartDate":            "Start date",
	"EndDate":              "End date",
	"Description":          "Description",
	"LastSalary":           "Last drawn salary",
	"ExpectedSalary":       "Expected salary",
	"Amount":               "Salary amount",
	"Period":               "Salary period",

	// Skills
	"Skills":         "Skills",
	"Level":          "Skill level",
	"Certifications": "Certifications",
	"Issuer":         "Issuer",
	"IssueDate":      "Issue date",
	"ExpiryDate":     "Expiry date",
	"CredentialID":   "Credential ID",

	// Job preference
	"JobCategories":         "Job categories",
	"PreferredShifts":       "Preferred shifts",
	"JoiningAvailability":   "Joining availability",
	"AccommodationRequired": "Accommodation requirement",

	// Auth
	"Phone":   "Phone number",
	"Channel": "Channel",
	"Code":    "OTP code",
	"Name":    "Name",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s: required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: must be %s or more", label, param)

	case "lte":
		return fmt.Sprintf("%s: must be %s or less", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces, and common punctuation (. ' - /) are allowed", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number format (7-15 digits, with/without +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: emoji and special symbols are not allowed", label)

	case "date_ymd":
		return fmt.Sprintf("%s: must be a date in YYYY-MM-DD format", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validation failed (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
