package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", handler.GetProfile)
		profiles.GET("/me/complete", handler.GetCompleteProfile)
		profiles.DELETE("/me", handler.Deactivate)
		profiles.PUT("/me/personal-details", handler.UpdatePersonalDetails)
		profiles.PUT("/me/language", handler.UpdateLanguage)
		profiles.PUT("/me/location-preferences", handler.UpdateLocationPreferences)
		profiles.PUT("/me/work-availability", handler.UpdateWorkAvailability)
		profiles.PUT("/me/experience", handler.UpdateExperience)
		profiles.PUT("/me/skills", handler.UpdateSkills)
		profiles.PUT("/me/job-preferences", handler.UpdateJobPreferences)
		profiles.PUT("/me/notification-settings", handler.UpdateNotificationSettings)
	}
}

// GetProfile godoc
// @Summary      Get current profile summary
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileSummary}
// @Failure      401  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	// Pass 'c' directly: gin.Context carries the auth keys for the usecase
	summary, err := h.profileUC.GetProfile(c, c.GetString(string(domain.KeyProfileID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile summary", summary)
}

// GetCompleteProfile godoc
// @Summary      Get the full profile with completion breakdown
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profiles/me/complete [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetCompleteProfile(c *gin.Context) {
	profile, breakdown, err := h.profileUC.GetCompleteProfile(c, c.GetString(string(domain.KeyProfileID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Complete profile", gin.H{
		"profile":              profile,
		"completion_breakdown": breakdown,
	})
}

// Deactivate godoc
// @Summary      Deactivate the current account
// @Description  Flips the active flag. The record is retained; sessions stop resolving.
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profiles/me [delete]
// @Security     BearerAuth
func (h *ProfileHandler) Deactivate(c *gin.Context) {
	if err := h.profileUC.Deactivate(c, c.GetString(string(domain.KeyProfileID))); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deactivated", nil)
}

// UpdatePersonalDetails godoc
// @Summary      Update identity fields
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.PersonalDetailsInput  true  "Fields to change"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profiles/me/personal-details [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdatePersonalDetails(c *gin.Context) {
	var in domain.PersonalDetailsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdatePersonalDetails(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Personal details updated", gin.H{
		"personal_details":   profile.PersonalDetails(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateLanguage godoc
// @Summary      Update display language and spoken languages
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/language [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateLanguage(c *gin.Context) {
	var in domain.LanguageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateLanguage(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Language settings updated", gin.H{
		"language":           profile.Language(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateLocationPreferences godoc
// @Summary      Update preferred work locations
// @Description  At most 3 locations with pairwise distinct priorities.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/location-preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateLocationPreferences(c *gin.Context) {
	var in domain.LocationPreferencesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateLocationPreferences(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Location preferences updated", gin.H{
		"location_preferences": profile.LocationPreferences(),
		"completion_percent":   profile.CompletionPercent,
	})
}

// UpdateWorkAvailability godoc
// @Summary      Update employment type availability
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/work-availability [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateWorkAvailability(c *gin.Context) {
	var in domain.WorkAvailabilityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateWorkAvailability(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work availability updated", gin.H{
		"work_availability":  profile.WorkAvailability(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateExperience godoc
// @Summary      Update experience, work history, and salary
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/experience [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	var in domain.ExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateExperience(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", gin.H{
		"experience":         profile.Experience(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateSkills godoc
// @Summary      Update skills and certifications
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/skills [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	var in domain.SkillsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateSkills(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", gin.H{
		"skills":             profile.SkillsSection(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateJobPreferences godoc
// @Summary      Update job category, shift, and joining preferences
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/job-preferences [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateJobPreferences(c *gin.Context) {
	var in domain.JobPreferencesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateJobPreferences(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job preferences updated", gin.H{
		"job_preferences":    profile.JobPreferences(),
		"completion_percent": profile.CompletionPercent,
	})
}

// UpdateNotificationSettings godoc
// @Summary      Update notification toggles
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me/notification-settings [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateNotificationSettings(c *gin.Context) {
	var in domain.NotificationSettingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateNotificationSettings(c, c.GetString(string(domain.KeyProfileID)), &in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification settings updated", gin.H{
		"notification_settings": profile.Notifications,
		"completion_percent":    profile.CompletionPercent,
	})
}
