package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skinquiz/internal/models"
	"skinquiz/internal/store"
)

// SaveQuiz stores the latest quiz result for a user. Repeated saves for
// the same user replace the previous result; the response does not say
// whether this was the first save or a replacement.
func (h *Handler) SaveQuiz(c *gin.Context) {
	var req struct {
		UserID          int      `json:"userId"`
		SkinType        string   `json:"skinType"`
		RoutineLevel    string   `json:"routineLevel"`
		Concerns        []string `json:"concerns"`
		Allergies       []string `json:"allergies"`
		Notes           string   `json:"notes"`
		Recommendations []string `json:"recommendations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID <= 0 {
		fail(c, http.StatusBadRequest, "Missing userId")
		return
	}

	err := h.store.UpsertQuizResult(c.Request.Context(), models.QuizResult{
		UserID:          req.UserID,
		SkinType:        strings.TrimSpace(req.SkinType),
		RoutineLevel:    strings.TrimSpace(req.RoutineLevel),
		Concerns:        req.Concerns,
		Allergies:       req.Allergies,
		Notes:           strings.TrimSpace(req.Notes),
		Recommendations: req.Recommendations,
	})
	if err != nil {
		logrus.WithField("user_id", req.UserID).Error("Error saving quiz result: ", err)
		if store.IsForeignKeyViolation(err) {
			fail(c, http.StatusInternalServerError, "userId does not reference an existing user")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quiz saved",
	})
}

// Profile returns a user together with their latest quiz result. A user
// who has not taken the quiz yet gets "quiz": null, not an error.
func (h *Handler) Profile(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		fail(c, http.StatusBadRequest, "Missing userId")
		return
	}
	userID, err := strconv.Atoi(raw)
	if err != nil || userID <= 0 {
		fail(c, http.StatusBadRequest, "Invalid userId")
		return
	}

	user, err := h.store.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		logrus.WithField("user_id", userID).Error("Error querying user: ", err)
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var quizPayload gin.H
	quiz, err := h.store.FindQuizResultByUserID(c.Request.Context(), userID)
	switch {
	case err == nil:
		quizPayload = gin.H{
			"skinType":        quiz.SkinType,
			"concerns":        quiz.Concerns,
			"allergies":       quiz.Allergies,
			"routineLevel":    quiz.RoutineLevel,
			"notes":           quiz.Notes,
			"recommendations": quiz.Recommendations,
			"createdAt":       quiz.CreatedAt,
		}
	case errors.Is(err, store.ErrNotFound):
		// No quiz taken yet; a valid, expected state.
	default:
		logrus.WithField("user_id", userID).Error("Error querying quiz result: ", err)
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		},
		"quiz": quizPayload,
	})
}
