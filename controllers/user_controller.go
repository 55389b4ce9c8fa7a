package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/services"
)

// UserServiceAPI defines the interface for account service operations
type UserServiceAPI interface {
	Register(ctx context.Context, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	VerifyToken(ctx context.Context, tokenStr string) (*models.User, error)
}

type UserController struct {
	service   UserServiceAPI
	validator *RequestValidator
}

func NewUserController(service UserServiceAPI) *UserController {
	return &UserController{
		service:   service,
		validator: NewRequestValidator(),
	}
}

func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if !uc.validator.BindAndValidate(c, &req) {
		return
	}

	result, err := uc.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	zap.L().Info("User registered", zap.String("email", result.User.Email))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data": gin.H{
			"user": gin.H{
				"id":    result.User.ID.Hex(),
				"email": result.User.Email,
			},
			"token": result.Token,
		},
	})
}

func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if !uc.validator.BindAndValidate(c, &req) {
		return
	}

	result, err := uc.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"user": gin.H{
				"id":    result.User.ID.Hex(),
				"email": result.User.Email,
			},
			"token": result.Token,
		},
	})
}

// Me returns the user the auth middleware resolved from the bearer token.
func (uc *UserController) Me(c *gin.Context) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please authenticate"})
		return
	}
	user := value.(*models.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":    user.ID.Hex(),
			"email": user.Email,
		},
	})
}
