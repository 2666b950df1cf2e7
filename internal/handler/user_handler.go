package handler

import (
	"net/http"
	"strconv"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for User endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	users := router.Group("/users", auth)
	{
		users.GET("", h.ListUsers)
		users.GET("/by-email", h.GetUserByEmail)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// ListUsers handles GET /users with paging, search and super-admin filter
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page          query  int     false  "Page (1-based)"
// @Param        limit         query  int     false  "Page size"
// @Param        search        query  string  false  "Substring match on email or name"
// @Param        isSuperAdmin  query  bool    false  "Filter by super-admin flag"
// @Success      200  {object}  response.Response
// @Router       /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.Parse(c)
	filter := model.UserFilter{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: c.Query("search"),
	}
	if raw := c.Query("isSuperAdmin"); raw != "" {
		isSuperAdmin, err := strconv.ParseBool(raw)
		if err != nil {
			respondValidation(c, []validation.Violation{{Field: "isSuperAdmin", Message: "must be a boolean"}})
			return
		}
		filter.IsSuperAdmin = &isSuperAdmin
	}

	page, err := h.userService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// GetUserByID handles GET /users/:id
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// GetUserByEmail handles GET /users/by-email?email=
// @Summary      Get user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Email"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.ErrorBody
// @Router       /api/v1/users/by-email [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if v := validation.New().Check("email", validation.Required(email), validation.Email(email)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// CreateUser handles POST /users
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.UserCreateInput  true  "Create User Payload"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in model.UserCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}
	if v := validation.New().
		Check("email", validation.Required(in.Email), validation.Email(in.Email), validation.MaxLen(in.Email, 255)).
		Check("name", validation.MaxLen(in.Name, 255)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}

// UpdateUser handles PATCH /users/:id with partial-update semantics: absent
// fields stay unchanged, an explicit null clears googleId.
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "User ID"
// @Param        payload  body      model.UserUpdateInput  true  "Partial Update Payload"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var in model.UserUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}
	if email, supplied := in.Email.Value(); supplied {
		if v := validation.New().Check("email", validation.Required(email), validation.Email(email)); !v.Valid() {
			respondValidation(c, v.Violations())
			return
		}
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// DeleteUser handles DELETE /users/:id
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}
