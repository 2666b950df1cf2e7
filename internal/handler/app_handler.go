package handler

import (
	"net/http"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AppHandler struct {
	appService service.AppService
}

func NewAppHandler(appService service.AppService) *AppHandler {
	return &AppHandler{appService: appService}
}

func (h *AppHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	apps := router.Group("/apps", auth)
	{
		apps.GET("", h.ListApps)
		apps.GET("/:id", h.GetAppByID)
		apps.POST("", h.CreateApp)
		apps.PATCH("/:id", h.UpdateApp)
		apps.DELETE("/:id", h.DeleteApp)
	}
}

// ListApps handles GET /apps
// @Summary      List apps
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page (1-based)"
// @Param        limit   query  int     false  "Page size"
// @Param        search  query  string  false  "Substring match on name or description"
// @Success      200  {object}  response.Response
// @Router       /api/v1/apps [get]
func (h *AppHandler) ListApps(c *gin.Context) {
	params := pagination.Parse(c)
	page, err := h.appService.ListApps(c.Request.Context(), model.AppFilter{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// GetAppByID handles GET /apps/:id
// @Summary      Get app by id
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "App ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/apps/{id} [get]
func (h *AppHandler) GetAppByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.GetAppByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}

// CreateApp handles POST /apps
// @Summary      Create a new app
// @Tags         apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.AppCreateInput  true  "Create App Payload"
// @Success      201      {object}  response.Response
// @Failure      409      {object}  response.ErrorBody
// @Router       /api/v1/apps [post]
func (h *AppHandler) CreateApp(c *gin.Context) {
	var in model.AppCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}
	if v := validation.New().Check("name", validation.Required(in.Name), validation.MaxLen(in.Name, 255)); !v.Valid() {
		respondValidation(c, v.Violations())
		return
	}

	app, err := h.appService.CreateApp(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, app))
}

// UpdateApp handles PATCH /apps/:id
// @Summary      Update an app
// @Tags         apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "App ID"
// @Param        payload  body      model.AppUpdateInput  true  "Partial Update Payload"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/v1/apps/{id} [patch]
func (h *AppHandler) UpdateApp(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var in model.AppUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondValidation(c, []validation.Violation{{Field: "body", Message: err.Error()}})
		return
	}

	app, err := h.appService.UpdateApp(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}

// DeleteApp handles DELETE /apps/:id; roles, permissions and grants owned by
// the app are removed by the cascading schema.
// @Summary      Delete an app
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "App ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/v1/apps/{id} [delete]
func (h *AppHandler) DeleteApp(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.appService.DeleteApp(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, app))
}
