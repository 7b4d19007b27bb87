package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, otpLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	auth.Use(otpLimiter)
	{
		auth.POST("/otp/request", handler.RequestOTP)
		auth.POST("/otp/verify", handler.VerifyOTP)
		auth.POST("/otp/resend", handler.ResendOTP)
	}
}

type RequestOTPRequest struct {
	Phone   string `json:"phone_number" binding:"required,valid_phone"`
	Channel string `json:"channel" binding:"required,oneof=sms whatsapp"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone_number" binding:"required,valid_phone"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// RequestOTP godoc
// @Summary      Request a verification code
// @Description  Issues a 6-digit OTP for the phone number and dispatches it over sms or whatsapp. Creates the profile on first contact.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RequestOTPRequest  true  "Phone number and channel"
// @Success      200      {object}  response.Response{data=domain.ChallengeReceipt}
// @Failure      400      {object}  response.Response
// @Router       /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	receipt, err := h.authUC.RequestChallenge(c.Request.Context(), req.Phone, req.Channel)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification code sent", receipt)
}

// VerifyOTP godoc
// @Summary      Verify a code and start a session
// @Description  Exchanges a correct OTP for a signed session token. Three incorrect attempts kill the challenge.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyOTPRequest  true  "Phone number and code"
// @Success      200      {object}  response.Response{data=domain.AuthSession}
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.authUC.VerifyChallenge(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Phone number verified", session)
}

// ResendOTP godoc
// @Summary      Re-send a verification code
// @Description  Issues a fresh OTP for a known phone number, replacing any prior challenge.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RequestOTPRequest  true  "Phone number and channel"
// @Success      200      {object}  response.Response{data=domain.ChallengeReceipt}
// @Failure      404      {object}  response.Response
// @Router       /auth/otp/resend [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	receipt, err := h.authUC.ResendChallenge(c.Request.Context(), req.Phone, req.Channel)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification code re-sent", receipt)
}
