package v1

import (
	"fmt"

	"github.com/cargoyard/backend/internal/models"
	"github.com/cargoyard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvoiceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/invoices/d430d7c3-d14c-4712-9336-ee56965a6673"` // The invoice itself
}

// Invoice is the representation of an incoming invoice in API v1.
type Invoice struct {
	models.DefaultModel
	Number          string          `json:"number" example:"12345"`                       // Invoice number from the source document
	IssueDate       types.Date      `json:"issueDate" example:"2024-03-18"`               // Date the invoice was issued
	Product         string          `json:"product" example:"Soja em grãos (+2 itens)"`   // Primary product description
	WeightKg        decimal.Decimal `json:"weightKg" example:"71000"`                     // Total weight in kg
	Value           decimal.Decimal `json:"value" example:"105000.40"`                    // Total value
	IssuerID        string          `json:"issuerId" example:"12345678000195"`            // Tax ID of the issuer
	RecipientID     string          `json:"recipientId" example:"98765432000121"`         // Tax ID of the recipient
	ShippedWeight   decimal.Decimal `json:"shippedWeight" example:"31000"`                // Weight already allocated to shipments in kg
	ShipmentNumbers []string        `json:"shipmentNumbers" example:"CTE-2024-001"`       // Shipment numbers drawing against this invoice
	Links           InvoiceLinks    `json:"links"`
}

// newInvoice returns the API v1 representation of the resource
func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	url := c.GetString(string(models.DBContextURL))

	shipmentNumbers := model.ShipmentNumbers
	if shipmentNumbers == nil {
		shipmentNumbers = make([]string, 0)
	}

	return Invoice{
		DefaultModel:    model.DefaultModel,
		Number:          model.Number,
		IssueDate:       model.IssueDate,
		Product:         model.Product,
		WeightKg:        model.WeightKg,
		Value:           model.Value,
		IssuerID:        model.IssuerID,
		RecipientID:     model.RecipientID,
		ShippedWeight:   model.ShippedWeight,
		ShipmentNumbers: shipmentNumbers,
		Links: InvoiceLinks{
			Self: fmt.Sprintf("%s/v1/invoices/%s", url, model.ID),
		},
	}
}

type InvoiceResponse struct {
	Data  *Invoice `json:"data"`                                              // The Invoice data, if the request was successful
	Error *string  `json:"error" example:"no NFe structure was found in the XML document"` // The error, if any occurred
}

type InvoiceListResponse struct {
	Data  []Invoice `json:"data"`                                                          // List of invoices
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
