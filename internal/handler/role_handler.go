package handler

import (
	"net/http"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	roles := router.Group("/roles", auth)
	{
		roles.GET("", h.ListRoles)
		roles.GET("/:id", h.GetRoleByID)
		roles.POST("", h.CreateRole)
		roles.PATCH("/:id", h.UpdateRole)
		roles.DELETE("/:id", h.DeleteRole)
	}
}

// ListRoles handles GET /roles, optionally scoped to one app
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page (1-based)"
// @Param        limit   query  int     false  "Page size"
// @Param        search  query  string  false  "Substring match on name"
// @Param        appId   query  string  false  "Filter by owning app"
// @Success      200  {object}  response.Response
// @Router       /api/v1/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	params := pagination.Parse(c)
	filter := model.RoleFilter{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: c.Query("search"),
	}
	if raw := c.Query("appId"); raw != "" {
		appID, err := uuid.Parse(raw)
		if err != nil {
			respondValidation(c, []validation.Violation{{Field: "appId", Message: "must be a valid uuid"}})
			return
		}
		filter.AppID = &appID
	}

	page, err := h.roleService.ListRoles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// GetRoleByID handles GET /roles/:id
// @Summary      Get role by id
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) GetRoleByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// CreateRole handles POST /roles
// @Summary      Create a new role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.RoleCreateInput  true  "Create Role Payload"
// @Success      201      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var in model.RoleCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}
	if v := validation.New().Check("name", validation.Required(in.Name), validation.MaxLen(in.Name, 255)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, role))
}

// UpdateRole handles PATCH /roles/:id
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Role ID"
// @Param        payload  body      model.RoleUpdateInput  true  "Partial Update Payload"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/roles/{id} [patch]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var in model.RoleUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// DeleteRole handles DELETE /roles/:id
// @Summary      Delete a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.DeleteRole(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}
