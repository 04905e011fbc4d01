package handlers

import (
	"errors"
	"net/http"

	"lawlink/services/auth"
	"lawlink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the login endpoints.
type AuthHandler struct {
	Auth auth.AuthService
}

// NewAuthHandler builds an AuthHandler over the given service.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

// LoginHandler handles POST /login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please enter all the fields")
		return
	}

	resp, err := h.Auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid Email or Password")
			return
		}
		utils.GetLogger().Error("LoginHandler: authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONData(c, http.StatusOK, "Authenticated Successfully", resp)
}

// GoogleAuthHandler handles POST /google-auth.
func (h *AuthHandler) GoogleAuthHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please provide a token")
		return
	}

	resp, err := h.Auth.FederatedLogin(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountNotFound):
			utils.JSONError(c, http.StatusBadRequest, "User Not Found")
		case errors.Is(err, auth.ErrFederationInvalid):
			utils.JSONError(c, http.StatusBadRequest, "Google Authentication Failed")
		default:
			utils.GetLogger().Error("GoogleAuthHandler: federated login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Google Authentication Failed")
		}
		return
	}
	utils.JSONData(c, http.StatusOK, "Authenticated Successfully", resp)
}
