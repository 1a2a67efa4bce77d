package handlers

import (
	"net/http"

	"uniportal/services/user"
	"uniportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles sign-in through the external identity provider.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// GoogleSignInHandler handles POST /auth/google. The identity claims are
// trusted as supplied; on a first sign-in the user record is created with
// the placeholder career value.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email  string `json:"email"`
		Nombre string `json:"nombre"`
		Image  string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El email y el nombre son obligatorios."})
		return
	}
	if req.Email == "" || req.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El email y el nombre son obligatorios."})
		return
	}

	usuario, err := h.UserService.SignIn(req.Email, req.Nombre, req.Image)
	if err != nil {
		logger.Error("Sign-in failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"usuario": usuario,
	})
}
