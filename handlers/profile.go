package handlers

import (
	"errors"
	"fmt"
	"net/http"

	accountRepo "lawlink/database/repository/account"
	profileRepo "lawlink/database/repository/profile"
	"lawlink/models"
	"lawlink/services/registration"
	"lawlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RoleHandlers exposes the signup/get/update endpoints for one role
// variant. One instance is built per profile role at startup.
type RoleHandlers[T any, PT models.ProfilePtr[T]] struct {
	Reg *registration.Orchestrator[T, PT]
}

// NewRoleHandlers builds the handler set over the given orchestrator.
func NewRoleHandlers[T any, PT models.ProfilePtr[T]](reg *registration.Orchestrator[T, PT]) *RoleHandlers[T, PT] {
	return &RoleHandlers[T, PT]{Reg: reg}
}

// SignupHandler handles POST /signup/{role}. The body is flat JSON, so it
// is bound twice: once for the credentials and once for the profile fields.
func (h *RoleHandlers[T, PT]) SignupHandler(c *gin.Context) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	var fields T
	if err := c.ShouldBindBodyWith(&fields, binding.JSON); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.Reg.Register(creds.Email, creds.Password, fields)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, accountRepo.ErrDuplicateEmail):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.GetLogger().Error("SignupHandler: registration failed",
				zap.String("role", string(h.Reg.Role)), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Error during signup")
		}
		return
	}

	message := fmt.Sprintf("%s registered successfully", h.Reg.Role.Label())
	utils.JSONData(c, http.StatusCreated, message, profile)
}

// GetProfileHandler handles GET /{role}s/getprofile/:userId.
func (h *RoleHandlers[T, PT]) GetProfileHandler(c *gin.Context) {
	userID := c.Param("userId")

	profile, err := h.Reg.GetProfile(userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", h.Reg.Role.Label()))
			return
		}
		utils.GetLogger().Error("GetProfileHandler: fetch failed",
			zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error")
		return
	}
	utils.JSONData(c, http.StatusOK, "", profile)
}

// UpdateProfileHandler handles PUT /{role}s/updateprofile/:userId. Only the
// fields present in the body are changed.
func (h *RoleHandlers[T, PT]) UpdateProfileHandler(c *gin.Context) {
	userID := c.Param("userId")

	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.Reg.UpdateProfile(userID, patch)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, profileRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", h.Reg.Role.Label()))
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Error())
		default:
			utils.GetLogger().Error("UpdateProfileHandler: update failed",
				zap.String("userId", userID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	utils.JSONData(c, http.StatusOK, "", profile)
}
