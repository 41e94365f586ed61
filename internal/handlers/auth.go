package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skinquiz/internal/store"
	"skinquiz/internal/utils"
)

// normalizeEmail trims surrounding whitespace and lower-cases. Applied
// before storage and before every comparison, so casing and whitespace
// never split one address into two accounts.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Register handles user registration.
func (h *Handler) Register(c *gin.Context) {
	// Pointer fields distinguish an absent key from an empty value.
	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Password  *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName == nil || req.LastName == nil || req.Email == nil || req.Password == nil {
		fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	firstName := strings.TrimSpace(*req.FirstName)
	lastName := strings.TrimSpace(*req.LastName)
	email := normalizeEmail(*req.Email)
	password := *req.Password
	phone := ""
	if req.Phone != nil {
		phone = strings.TrimSpace(*req.Phone)
	}

	if firstName == "" || lastName == "" || email == "" || strings.TrimSpace(password) == "" {
		fail(c, http.StatusBadRequest, "Empty fields are not allowed")
		return
	}

	if len(password) < 8 {
		fail(c, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	_, err := h.store.CreateUser(c.Request.Context(), store.CreateUserParams{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: utils.HashPassword(password),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fail(c, http.StatusConflict, "Email already registered")
			return
		}
		logrus.WithField("email", email).Error("Error inserting user: ", err)
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully",
		"user": gin.H{
			"firstName": firstName,
			"lastName":  lastName,
			"email":     email,
		},
	})
}

// Login handles user login. A wrong email and a wrong password produce
// the same answer; callers cannot tell which part failed.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	email := normalizeEmail(req.Email)
	user, err := h.store.FindUserByCredentials(c.Request.Context(), email, utils.HashPassword(req.Password))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logrus.Error("Error querying user: ", err)
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		},
	})
}
