package v1

import (
	"fmt"
	"time"

	"github.com/cargoyard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ContainerEditable is the request body for registering a container.
type ContainerEditable struct {
	Number  string `json:"number" binding:"required" example:"MSCU1234567"`  // Container number, unique in the yard
	Type    string `json:"type" binding:"required" example:"40HC"`           // Container type
	Carrier string `json:"carrier" binding:"required" example:"MSC"`         // Carrier operating the container
	Note    string `json:"note" example:"arrived on truck ABC-1234"`         // Note for the arrival event, generated when empty
}

// MovementEditable is the request body for container transitions.
type MovementEditable struct {
	Note string `json:"note" example:"cargo moved to warehouse 3"` // Note for the movement event, generated when empty
}

type ContainerLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/containers/d430d7c3-d14c-4712-9336-ee56965a6673"`            // The container itself
	History string `json:"history" example:"https://example.com/api/v1/containers/d430d7c3-d14c-4712-9336-ee56965a6673/history"` // The movement history of the container
}

// Container is the representation of a container in API v1.
type Container struct {
	models.DefaultModel
	Number       string                 `json:"number" example:"MSCU1234567"`                 // Container number
	Type         string                 `json:"type" example:"40HC"`                          // Container type
	Carrier      string                 `json:"carrier" example:"MSC"`                        // Carrier operating the container
	Status       models.ContainerStatus `json:"status" example:"gate"`                        // Current lifecycle status
	Location     string                 `json:"location" example:"gate"`                      // Current location in the yard
	LastMovement *time.Time             `json:"lastMovement" example:"2024-03-18T09:15:00Z"`  // Timestamp of the most recent movement event
	Links        ContainerLinks         `json:"links"`
}

// newContainer returns the API v1 representation of the resource
func newContainer(c *gin.Context, model models.Container) Container {
	url := c.GetString(string(models.DBContextURL))

	return Container{
		DefaultModel: model.DefaultModel,
		Number:       model.Number,
		Type:         model.Type,
		Carrier:      model.Carrier,
		Status:       model.Status,
		Location:     model.Location,
		LastMovement: model.LastMovement,
		Links: ContainerLinks{
			Self:    fmt.Sprintf("%s/v1/containers/%s", url, model.ID),
			History: fmt.Sprintf("%s/v1/containers/%s/history", url, model.ID),
		},
	}
}

// MovementEvent is the representation of a movement event in API v1.
type MovementEvent struct {
	models.DefaultModel
	Kind      models.MovementKind `json:"kind" example:"arrival-at-gate"`            // Kind of the movement
	Timestamp time.Time           `json:"timestamp" example:"2024-03-18T09:15:00Z"`  // Time the movement happened
	Note      string              `json:"note" example:"arrived on truck ABC-1234"`  // Free-text note
}

// newMovementEvent returns the API v1 representation of the resource
func newMovementEvent(model models.MovementEvent) MovementEvent {
	return MovementEvent{
		DefaultModel: model.DefaultModel,
		Kind:         model.Kind,
		Timestamp:    model.Timestamp,
		Note:         model.Note,
	}
}

type ContainerResponse struct {
	Data  *Container `json:"data"`                                                        // The Container data, if the request was successful
	Error *string    `json:"error" example:"a container with this number is already registered"` // The error, if any occurred
}

type ContainerListResponse struct {
	Data  []Container `json:"data"`                                                          // List of containers
	Error *string     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type MovementEventListResponse struct {
	Data  []MovementEvent `json:"data"`                                       // Movement history, newest first
	Error *string         `json:"error" example:"there is no container matching your query"` // The error, if any occurred
}

// ContainerQueryFilter contains the supported query parameters for the
// container list.
type ContainerQueryFilter struct {
	Number  string `form:"number" filterField:"false"` // Filter by container number, glob syntax is supported
	Carrier string `form:"carrier"`                    // Filter by carrier
	Status  string `form:"status"`                     // Filter by lifecycle status
}

func (f ContainerQueryFilter) model() models.Container {
	return models.Container{
		Carrier: f.Carrier,
		Status:  models.ContainerStatus(f.Status),
	}
}
