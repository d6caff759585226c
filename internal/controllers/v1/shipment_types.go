package v1

import (
	"fmt"

	"github.com/cargoyard/backend/internal/models"
	"github.com/cargoyard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShipmentItemEditable is one allocation of an outgoing shipment against
// an invoice.
type ShipmentItemEditable struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required" example:"12345"` // Number of the invoice to draw against
	WeightKg      decimal.Decimal `json:"weightKg" example:"1000"`                          // Weight to allocate in kg
	FreightValue  decimal.Decimal `json:"freightValue" example:"1250.50"`                   // Freight value for this allocation
}

// ShipmentEditable is the request body for registering an outgoing shipment.
type ShipmentEditable struct {
	ShipmentNumber string                 `json:"shipmentNumber" binding:"required" example:"CTE-2024-001"`  // Waybill number of the shipment
	ShipmentDate   types.Date             `json:"shipmentDate" binding:"required" example:"2024-03-18"`      // Date of the shipment
	Items          []ShipmentItemEditable `json:"items" binding:"required,min=1,dive"`                       // Allocations, at least one
}

type ShipmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/shipments/d430d7c3-d14c-4712-9336-ee56965a6673"` // The shipment itself
}

// Shipment is the representation of a shipment allocation in API v1.
type Shipment struct {
	models.DefaultModel
	ShipmentNumber string          `json:"shipmentNumber" example:"CTE-2024-001"` // Waybill number of the shipment
	InvoiceNumber  string          `json:"invoiceNumber" example:"12345"`         // Number of the invoice drawn against
	WeightKg       decimal.Decimal `json:"weightKg" example:"1000"`               // Allocated weight in kg
	FreightValue   decimal.Decimal `json:"freightValue" example:"1250.50"`        // Freight value for this allocation
	ShipmentDate   types.Date      `json:"shipmentDate" example:"2024-03-18"`     // Date of the shipment
	Links          ShipmentLinks   `json:"links"`
}

// newShipment returns the API v1 representation of the resource
func newShipment(c *gin.Context, model models.Shipment) Shipment {
	url := c.GetString(string(models.DBContextURL))

	return Shipment{
		DefaultModel:   model.DefaultModel,
		ShipmentNumber: model.ShipmentNumber,
		InvoiceNumber:  model.InvoiceNumber,
		WeightKg:       model.WeightKg,
		FreightValue:   model.FreightValue,
		ShipmentDate:   model.ShipmentDate,
		Links: ShipmentLinks{
			Self: fmt.Sprintf("%s/v1/shipments/%s", url, model.ID),
		},
	}
}

type ShipmentResponse struct {
	Data  *Shipment `json:"data"`                                                          // The Shipment data, if the request was successful
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type ShipmentCreateResponse struct {
	Data  []Shipment `json:"data"`                                                       // The created allocations
	Error *string    `json:"error" example:"the shipment weight exceeds the remaining balance"` // The error, if any occurred
}

type ShipmentListResponse struct {
	Data  []Shipment `json:"data"`                                                          // List of shipments
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
