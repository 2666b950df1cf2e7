package handler

import (
	"net/http"

	"backend/internal/apperror"
	"backend/internal/service"
	"backend/pkg/response"
	"backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	group := router.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.GET("/me", auth, h.Me)
	}
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// Login handles POST /auth/login, issuing a session token for a known user.
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Login Payload"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.ErrorBody
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, []validation.Violation{{Field: "email", Message: "is required"}})
		return
	}
	if v := validation.New().Check("email", validation.Required(req.Email), validation.Email(req.Email)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

// Me handles GET /auth/me, returning the authenticated user.
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.ErrorBody
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	rawID := c.GetString("userID")
	userID, err := uuid.Parse(rawID)
	if err != nil {
		respondError(c, apperror.Unauthorized("Invalid token", err))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}
