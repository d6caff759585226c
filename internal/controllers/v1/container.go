package v1

import (
	"errors"
	"net/http"

	"github.com/cargoyard/backend/internal/httputil"
	"github.com/cargoyard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// RegisterContainerRoutes registers the routes for containers with
// the RouterGroup that is passed.
func RegisterContainerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsContainerList)
		r.GET("", GetContainers)
		r.POST("", CreateContainer)
	}

	// Container with ID
	{
		r.OPTIONS("/:id", OptionsContainerDetail)
		r.GET("/:id", GetContainer)
		r.GET("/:id/history", GetContainerHistory)
		r.POST("/:id/unload", UnloadContainer)
		r.POST("/:id/release", ReleaseContainer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Containers
// @Success		204
// @Router			/v1/containers [options]
func OptionsContainerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Containers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/containers/{id} [options]
func OptionsContainerDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Container{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Register container
// @Description	Registers a container at the gate and records its arrival event
// @Tags			Containers
// @Accept			json
// @Produce		json
// @Success		201			{object}	ContainerResponse
// @Failure		400			{object}	ContainerResponse
// @Failure		500			{object}	ContainerResponse
// @Param			container	body		ContainerEditable	true	"Container"
// @Router			/v1/containers [post]
func CreateContainer(c *gin.Context) {
	var editable ContainerEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return
	}

	container := models.Container{
		Number:  editable.Number,
		Type:    editable.Type,
		Carrier: editable.Carrier,
	}

	// The unique index catches the race between two concurrent
	// registrations and surfaces the same friendly error
	err = models.CreateContainer(models.DB, &container, editable.Note)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return
	}

	data := newContainer(c, container)
	c.JSON(http.StatusCreated, ContainerResponse{Data: &data})
}

// @Summary		Get containers
// @Description	Returns all containers with their last movement, newest registration first
// @Tags			Containers
// @Produce		json
// @Success		200	{object}	ContainerListResponse
// @Failure		500	{object}	ContainerListResponse
// @Param			number	query	string	false	"Filter by container number, glob syntax is supported"
// @Param			carrier	query	string	false	"Filter by carrier"
// @Param			status	query	string	false	"Filter by lifecycle status"
// @Router			/v1/containers [get]
func GetContainers(c *gin.Context) {
	var filter ContainerQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	containers, err := models.LoadContainers(models.DB.Where(&filterModel, queryFields...))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Container, 0, len(containers))
	for _, container := range containers {
		if filter.Number != "" && !glob.Glob(filter.Number, container.Number) {
			continue
		}

		data = append(data, newContainer(c, container))
	}

	c.JSON(http.StatusOK, ContainerListResponse{Data: data})
}

// @Summary		Get container
// @Description	Returns a specific container
// @Tags			Containers
// @Produce		json
// @Success		200	{object}	ContainerResponse
// @Failure		400	{object}	ContainerResponse
// @Failure		404	{object}	ContainerResponse
// @Failure		500	{object}	ContainerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/containers/{id} [get]
func GetContainer(c *gin.Context) {
	container, ok := containerFromURI(c)
	if !ok {
		return
	}

	err := container.WithLastMovement(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return
	}

	data := newContainer(c, container)
	c.JSON(http.StatusOK, ContainerResponse{Data: &data})
}

// @Summary		Get container history
// @Description	Returns all movement events of a container, newest first
// @Tags			Containers
// @Produce		json
// @Success		200	{object}	MovementEventListResponse
// @Failure		400	{object}	MovementEventListResponse
// @Failure		404	{object}	MovementEventListResponse
// @Failure		500	{object}	MovementEventListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/containers/{id}/history [get]
func GetContainerHistory(c *gin.Context) {
	container, ok := containerFromURI(c)
	if !ok {
		return
	}

	events, err := container.History(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MovementEventListResponse{
			Error: &s,
		})
		return
	}

	data := make([]MovementEvent, 0, len(events))
	for _, event := range events {
		data = append(data, newMovementEvent(event))
	}

	c.JSON(http.StatusOK, MovementEventListResponse{Data: data})
}

// @Summary		Unload container
// @Description	Moves the container to the empty yard and records the movement
// @Tags			Containers
// @Accept			json
// @Produce		json
// @Success		200			{object}	ContainerResponse
// @Failure		400			{object}	ContainerResponse
// @Failure		404			{object}	ContainerResponse
// @Failure		500			{object}	ContainerResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			movement	body		MovementEditable	false	"Movement note"
// @Router			/v1/containers/{id}/unload [post]
func UnloadContainer(c *gin.Context) {
	transitionContainer(c, (*models.Container).Unload)
}

// @Summary		Release container
// @Description	Releases the container for exit and records the movement
// @Tags			Containers
// @Accept			json
// @Produce		json
// @Success		200			{object}	ContainerResponse
// @Failure		400			{object}	ContainerResponse
// @Failure		404			{object}	ContainerResponse
// @Failure		500			{object}	ContainerResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			movement	body		MovementEditable	false	"Movement note"
// @Router			/v1/containers/{id}/release [post]
func ReleaseContainer(c *gin.Context) {
	transitionContainer(c, (*models.Container).Release)
}

// transitionContainer executes a container state change with the note from
// the request body.
func transitionContainer(c *gin.Context, transition func(*models.Container, *gorm.DB, string) error) {
	container, ok := containerFromURI(c)
	if !ok {
		return
	}

	// The body is optional for transitions
	var editable MovementEditable
	err := httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return
	}

	err = transition(&container, models.DB, editable.Note)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return
	}

	data := newContainer(c, container)
	c.JSON(http.StatusOK, ContainerResponse{Data: &data})
}

// containerFromURI loads the container addressed by the id URI parameter.
// On failure, the error response has already been written.
func containerFromURI(c *gin.Context) (models.Container, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return models.Container{}, false
	}

	var container models.Container
	err = models.DB.First(&container, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContainerResponse{
			Error: &s,
		})
		return models.Container{}, false
	}

	return container, true
}
