package v1

import (
	"net/http"

	"github.com/cargoyard/backend/internal/httputil"
	"github.com/cargoyard/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterShipmentRoutes registers the routes for shipments with
// the RouterGroup that is passed.
func RegisterShipmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsShipmentList)
	r.GET("", GetShipments)
	r.POST("", CreateShipment)

	r.OPTIONS("/:id", OptionsShipmentDetail)
	r.GET("/:id", GetShipment)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shipments
// @Success		204
// @Router			/v1/shipments [options]
func OptionsShipmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shipments
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/shipments/{id} [options]
func OptionsShipmentDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, httpError{Error: s})
		return
	}

	var shipment models.Shipment
	err := models.DB.First(&shipment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), httpError{Error: s})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get shipment
// @Description	Returns a single shipment allocation
// @Tags			Shipments
// @Produce		json
// @Success		200	{object}	ShipmentResponse
// @Failure		400	{object}	ShipmentResponse
// @Failure		404	{object}	ShipmentResponse
// @Failure		500	{object}	ShipmentResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/shipments/{id} [get]
func GetShipment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ShipmentResponse{Error: &s})
		return
	}

	var shipment models.Shipment
	err := models.DB.First(&shipment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShipmentResponse{Error: &s})
		return
	}

	data := newShipment(c, shipment)
	c.JSON(http.StatusOK, ShipmentResponse{Data: &data})
}

// @Summary		Register shipment
// @Description	Registers an outgoing shipment with one allocation per referenced invoice. Every allocation is checked against the remaining balance of its invoice.
// @Tags			Shipments
// @Accept			json
// @Produce		json
// @Success		201			{object}	ShipmentCreateResponse
// @Failure		400			{object}	ShipmentCreateResponse
// @Failure		500			{object}	ShipmentCreateResponse
// @Param			shipment	body		ShipmentEditable	true	"Shipment"
// @Router			/v1/shipments [post]
func CreateShipment(c *gin.Context) {
	var editable ShipmentEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShipmentCreateResponse{
			Error: &s,
		})
		return
	}

	r := ShipmentCreateResponse{Data: make([]Shipment, 0, len(editable.Items))}

	for _, item := range editable.Items {
		shipment := models.Shipment{
			ShipmentNumber: editable.ShipmentNumber,
			InvoiceNumber:  item.InvoiceNumber,
			WeightKg:       item.WeightKg,
			FreightValue:   item.FreightValue,
			ShipmentDate:   editable.ShipmentDate,
		}

		// Allocations recorded before a failing one stay recorded
		err = models.CreateShipment(models.DB, &shipment)
		if err != nil {
			s := err.Error()
			r.Error = &s
			c.JSON(status(err), r)
			return
		}

		r.Data = append(r.Data, newShipment(c, shipment))
	}

	c.JSON(http.StatusCreated, r)
}

// @Summary		Get shipments
// @Description	Returns all shipment allocations, newest shipment date first
// @Tags			Shipments
// @Produce		json
// @Success		200	{object}	ShipmentListResponse
// @Failure		500	{object}	ShipmentListResponse
// @Router			/v1/shipments [get]
func GetShipments(c *gin.Context) {
	shipments, err := models.LoadShipments(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShipmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Shipment, 0, len(shipments))
	for _, shipment := range shipments {
		data = append(data, newShipment(c, shipment))
	}

	c.JSON(http.StatusOK, ShipmentListResponse{Data: data})
}
