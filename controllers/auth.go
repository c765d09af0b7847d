package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 30 * time.Minute

// Role is the closed set of roles a token may carry.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the caller reconstructed from a verified token. It is
// produced only by AuthMiddleware; handlers never re-verify the token.
type Identity struct {
	Username string
	ID       uint
	Role     Role
}

const identityKey = "current_user"

// ErrInvalidToken covers malformed tokens, bad signatures, expiry and
// incomplete claims alike, so a caller cannot tell which check failed.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"user_role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Nom      string `json:"nom" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=8,max=70"`
}

// GenerateToken signs a claim set {sub, id, user_role, exp} with the
// process-wide secret.
func GenerateToken(username string, userID uint, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// ValidateToken verifies the signature and expiry and requires the three
// identity claims to be present with a known role.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return config.JWTSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if Role(claims.Role) != RoleUser && Role(claims.Role) != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AuthMiddleware is the single enforcement point for "is this caller
// known". On success the caller identity is stored in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		claims, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(identityKey, Identity{
			Username: claims.Subject,
			ID:       claims.UserID,
			Role:     Role(claims.Role),
		})
		c.Next()
	}
}

// CurrentUser returns the identity placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

func validateUsername(username string) error {
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return errors.New("username must contain only letters and digits")
		}
	}
	return nil
}

func validatePassword(password string) error {
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	return nil
}

// Register creates a new account. The role is always "user": callers
// cannot self-assign admin.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}
	if err := validateUsername(req.Username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := strings.ToLower(req.Username)

	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", req.Email, username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "a user with this email or username already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process password"})
		return
	}

	user := models.User{
		Nom:            req.Nom,
		Email:          req.Email,
		Username:       username,
		HashedPassword: string(hashed),
		Role:           string(RoleUser),
	}

	tx := config.DB.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"nom":      user.Nom,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Login verifies form-encoded credentials and issues a 30 minute token.
// An unknown username and a wrong password are indistinguishable.
func Login(c *gin.Context) {
	username := strings.ToLower(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := GenerateToken(user.Username, user.ID, user.Role, tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
