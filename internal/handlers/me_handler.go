package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/middleware"
)

type MeHandler struct {
	users domain.UserRepository
}

func NewMeHandler(users domain.UserRepository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.FindUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err, "failed_to_load_user")
		return
	}
	if u == nil {
		httperr.Respond(c, user.ErrUserNotFound, "user_not_found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}
