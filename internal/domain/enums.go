package domain

// Enum values accepted by the profile sections. The validator tags on the
// input structs mirror these lists; the slices exist for checks that run
// outside struct validation (element-level membership on replaced lists).

var ValidGenders = []string{"male", "female", "other"}

var ValidProficiencies = []string{"basic", "intermediate", "fluent", "native"}

var ValidEmploymentTypes = []string{"full-time", "part-time", "contract", "freelance", "internship"}

var ValidExperienceLevels = []string{"fresher", "experienced"}

var ValidSalaryPeriods = []string{"monthly", "yearly"}

var ValidSkillLevels = []string{"beginner", "intermediate", "advanced", "expert"}

var ValidJobCategories = []string{
	"construction",
	"delivery",
	"driver",
	"factory",
	"healthcare",
	"hospitality",
	"housekeeping",
	"office",
	"retail",
	"security",
}

var ValidShifts = []string{"day", "night", "rotational"}

var ValidJoiningAvailabilities = []string{"immediate", "within-week", "within-month"}

// Notification channels for OTP delivery
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// DefaultDisplayLanguage is applied when a profile is created
const DefaultDisplayLanguage = "english"

// DefaultExperienceLevel is applied when a profile is created
const DefaultExperienceLevel = "fresher"
