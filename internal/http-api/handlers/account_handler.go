package handlers

import (
	"log/slog"
	"net/http"

	"cinelog/internal/http-api/dto"
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/auth"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accounts service.AccountService
	logger   *slog.Logger
}

func NewAccountHandler(accounts service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// Me returns the authenticated caller's profile.
func (h *AccountHandler) Me(c *gin.Context) {
	user, err := h.accounts.GetByID(c.Request.Context(), c.GetString(auth.CtxUserID))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) UpdateMe(c *gin.Context) {
	var req dto.UserUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	user, err := h.accounts.UpdateProfile(c.Request.Context(), c.GetString(auth.CtxUserID), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.accounts.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AccountHandler) Get(c *gin.Context) {
	user, err := h.accounts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) SetRole(c *gin.Context) {
	var req dto.RoleUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, bindError(err))
		return
	}
	user, err := h.accounts.SetRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
