package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// GrantHandler exposes the association endpoints: app access, role
// assignment, role permissions, direct user permissions and the effective
// permission view.
type GrantHandler struct {
	grantService service.GrantService
}

func NewGrantHandler(grantService service.GrantService) *GrantHandler {
	return &GrantHandler{grantService: grantService}
}

func (h *GrantHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	users := router.Group("/users", auth)
	{
		users.PUT("/:id/apps/:appId", h.GrantAppAccess)
		users.DELETE("/:id/apps/:appId", h.RevokeAppAccess)
		users.PUT("/:id/roles/:roleId", h.AssignRole)
		users.DELETE("/:id/roles/:roleId", h.UnassignRole)
		users.PUT("/:id/permissions/:permissionId", h.GrantUserPermission)
		users.DELETE("/:id/permissions/:permissionId", h.RevokeUserPermission)
		users.GET("/:id/apps/:appId/permissions", h.EffectivePermissions)
	}

	roles := router.Group("/roles", auth)
	{
		roles.PUT("/:id/permissions/:permissionId", h.GrantRolePermission)
		roles.DELETE("/:id/permissions/:permissionId", h.RevokeRolePermission)
	}
}

// GrantAppAccess handles PUT /users/:id/apps/:appId
// @Summary      Grant a user access to an app
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "User ID"
// @Param        appId  path      string  true  "App ID"
// @Success      201    {object}  response.Response
// @Failure      404    {object}  response.ErrorBody
// @Failure      409    {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/apps/{appId} [put]
func (h *GrantHandler) GrantAppAccess(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	appID, ok := parseUUIDParam(c, "appId")
	if !ok {
		return
	}

	if err := h.grantService.GrantAppAccess(c.Request.Context(), userID, appID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, nil))
}

// RevokeAppAccess handles DELETE /users/:id/apps/:appId
// @Summary      Revoke a user's access to an app
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "User ID"
// @Param        appId  path      string  true  "App ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/apps/{appId} [delete]
func (h *GrantHandler) RevokeAppAccess(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	appID, ok := parseUUIDParam(c, "appId")
	if !ok {
		return
	}

	if err := h.grantService.RevokeAppAccess(c.Request.Context(), userID, appID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// AssignRole handles PUT /users/:id/roles/:roleId
// @Summary      Assign a role to a user
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "User ID"
// @Param        roleId  path      string  true  "Role ID"
// @Success      201     {object}  response.Response
// @Failure      404     {object}  response.ErrorBody
// @Failure      409     {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/roles/{roleId} [put]
func (h *GrantHandler) AssignRole(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseUUIDParam(c, "roleId")
	if !ok {
		return
	}

	if err := h.grantService.AssignRole(c.Request.Context(), userID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, nil))
}

// UnassignRole handles DELETE /users/:id/roles/:roleId
// @Summary      Remove a role from a user
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "User ID"
// @Param        roleId  path      string  true  "Role ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/roles/{roleId} [delete]
func (h *GrantHandler) UnassignRole(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roleID, ok := parseUUIDParam(c, "roleId")
	if !ok {
		return
	}

	if err := h.grantService.UnassignRole(c.Request.Context(), userID, roleID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// GrantRolePermission handles PUT /roles/:id/permissions/:permissionId
// @Summary      Grant a permission to a role
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true  "Role ID"
// @Param        permissionId  path      string  true  "Permission ID"
// @Success      201           {object}  response.Response
// @Failure      404           {object}  response.ErrorBody
// @Failure      409           {object}  response.ErrorBody
// @Router       /api/v1/roles/{id}/permissions/{permissionId} [put]
func (h *GrantHandler) GrantRolePermission(c *gin.Context) {
	roleID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	permissionID, ok := parseUUIDParam(c, "permissionId")
	if !ok {
		return
	}

	if err := h.grantService.GrantRolePermission(c.Request.Context(), roleID, permissionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, nil))
}

// RevokeRolePermission handles DELETE /roles/:id/permissions/:permissionId
// @Summary      Revoke a permission from a role
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true  "Role ID"
// @Param        permissionId  path      string  true  "Permission ID"
// @Success      200           {object}  response.Response
// @Failure      404           {object}  response.ErrorBody
// @Router       /api/v1/roles/{id}/permissions/{permissionId} [delete]
func (h *GrantHandler) RevokeRolePermission(c *gin.Context) {
	roleID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	permissionID, ok := parseUUIDParam(c, "permissionId")
	if !ok {
		return
	}

	if err := h.grantService.RevokeRolePermission(c.Request.Context(), roleID, permissionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// GrantUserPermission handles PUT /users/:id/permissions/:permissionId
// @Summary      Grant a permission directly to a user
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true  "User ID"
// @Param        permissionId  path      string  true  "Permission ID"
// @Success      201           {object}  response.Response
// @Failure      404           {object}  response.ErrorBody
// @Failure      409           {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/permissions/{permissionId} [put]
func (h *GrantHandler) GrantUserPermission(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	permissionID, ok := parseUUIDParam(c, "permissionId")
	if !ok {
		return
	}

	if err := h.grantService.GrantUserPermission(c.Request.Context(), userID, permissionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, nil))
}

// RevokeUserPermission handles DELETE /users/:id/permissions/:permissionId
// @Summary      Revoke a direct permission from a user
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string  true  "User ID"
// @Param        permissionId  path      string  true  "Permission ID"
// @Success      200           {object}  response.Response
// @Failure      404           {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/permissions/{permissionId} [delete]
func (h *GrantHandler) RevokeUserPermission(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	permissionID, ok := parseUUIDParam(c, "permissionId")
	if !ok {
		return
	}

	if err := h.grantService.RevokeUserPermission(c.Request.Context(), userID, permissionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, nil))
}

// EffectivePermissions handles GET /users/:id/apps/:appId/permissions
// @Summary      Effective permissions of a user within an app
// @Description  Union of permissions carried by the app's roles and direct grants on the app's permissions; requires an active app access grant.
// @Tags         grants
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "User ID"
// @Param        appId  path      string  true  "App ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.ErrorBody
// @Failure      404    {object}  response.ErrorBody
// @Router       /api/v1/users/{id}/apps/{appId}/permissions [get]
func (h *GrantHandler) EffectivePermissions(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	appID, ok := parseUUIDParam(c, "appId")
	if !ok {
		return
	}

	perms, err := h.grantService.EffectivePermissions(c.Request.Context(), userID, appID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, perms))
}
