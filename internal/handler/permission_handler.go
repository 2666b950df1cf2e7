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

type PermissionHandler struct {
	permissionService service.PermissionService
}

func NewPermissionHandler(permissionService service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	perms := router.Group("/permissions", auth)
	{
		perms.GET("", h.ListPermissions)
		perms.GET("/:id", h.GetPermissionByID)
		perms.POST("", h.CreatePermission)
		perms.PATCH("/:id", h.UpdatePermission)
		perms.DELETE("/:id", h.DeletePermission)
	}
}

// ListPermissions handles GET /permissions, optionally scoped to one app
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page (1-based)"
// @Param        limit   query  int     false  "Page size"
// @Param        search  query  string  false  "Substring match on name"
// @Param        appId   query  string  false  "Filter by owning app"
// @Success      200  {object}  response.Response
// @Router       /api/v1/permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	params := pagination.Parse(c)
	filter := model.PermissionFilter{
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

	page, err := h.permissionService.ListPermissions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// GetPermissionByID handles GET /permissions/:id
// @Summary      Get permission by id
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Permission ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/permissions/{id} [get]
func (h *PermissionHandler) GetPermissionByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	perm, err := h.permissionService.GetPermissionByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perm))
}

// CreatePermission handles POST /permissions
// @Summary      Create a new permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.PermissionCreateInput  true  "Create Permission Payload"
// @Success      201      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var in model.PermissionCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}
	if v := validation.New().Check("name", validation.Required(in.Name), validation.MaxLen(in.Name, 255)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	perm, err := h.permissionService.CreatePermission(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, perm))
}

// UpdatePermission handles PATCH /permissions/:id
// @Summary      Update a permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Permission ID"
// @Param        payload  body      model.PermissionUpdateInput  true  "Partial Update Payload"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/permissions/{id} [patch]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var in model.PermissionUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}

	perm, err := h.permissionService.UpdatePermission(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perm))
}

// DeletePermission handles DELETE /permissions/:id
// @Summary      Delete a permission
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Permission ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	perm, err := h.permissionService.DeletePermission(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perm))
}
