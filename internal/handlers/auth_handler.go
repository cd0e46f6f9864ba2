package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	ucAuth "github.com/BruksfildServices01/appointment-booking/internal/usecase/auth"
)

type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

type AuthHandler struct {
	register *ucAuth.RegisterClient
	login    *ucAuth.LoginUser
	tokens   TokenIssuer
}

func NewAuthHandler(
	register *ucAuth.RegisterClient,
	login *ucAuth.LoginUser,
	tokens TokenIssuer,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		tokens:   tokens,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_register")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		httperr.Respond(c, err, "failed_to_generate_token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_login")
		return
	}

	token, err := h.tokens.Issue(out.ID, out.Role)
	if err != nil {
		httperr.Respond(c, err, "failed_to_generate_token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  out,
		"token": token,
	})
}
