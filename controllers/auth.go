package controllers

import (
	"net/http"
	"time"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewAuthController(s *store.Store, log *zap.Logger) *AuthController {
	return &AuthController{Store: s, Log: log}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = "technician"
	}
	if role != "owner" && role != "technician" {
		utils.RespondWithError(c, http.StatusBadRequest, "Role must be one of: owner, technician")
		return
	}

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Password: input.Password, // hashed in BeforeCreate hook
		Role:     role,
		IsActive: true,
	}
	if err := ctl.Store.CreateUser(&user); err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		ctl.Log.Error("token generation failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login verifies credentials and issues a JWT
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Store.GetUserByEmail(input.Email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		// Same message either way so probes can't enumerate accounts.
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if !user.IsActive {
		utils.RespondWithError(c, http.StatusUnauthorized, "Account is disabled")
		return
	}

	if err := ctl.Store.TouchLastLogin(user.ID); err != nil {
		ctl.Log.Warn("failed to record last login", zap.Error(err))
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		ctl.Log.Error("token generation failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	user.LastLogin = &now
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's profile
func (ctl *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	user, err := ctl.Store.GetUser(id)
	if err != nil {
		respondStoreError(c, ctl.Log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
