package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/debjganguly/uhi-backend-go/pkg/response"
)

// AuthHandler issues JWTs for the protected admin endpoints
type AuthHandler struct {
	secret   string
	user     string
	password string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(secret, user, password string) *AuthHandler {
	return &AuthHandler{
		secret:   secret,
		user:     user,
		password: password,
	}
}

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Token handles POST /api/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	if req.Username != h.user || req.Password != h.password {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		response.InternalError(c, "Failed to sign token")
		return
	}

	response.Success(c, gin.H{
		"token":      signed,
		"expires_at": now.Add(24 * time.Hour).Unix(),
	})
}
