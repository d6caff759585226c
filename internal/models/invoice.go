package models

import (
	"strings"

	"github.com/cargoyard/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Invoice represents an incoming cargo invoice. It establishes the weight
// and value available for outgoing shipments.
//
// Invoices are created once on upload and are immutable afterwards. The
// invoice number is intentionally not unique: the issuing systems we receive
// documents from re-use numbers across issuers, so all balance calculations
// sum over every row sharing a number.
type Invoice struct {
	DefaultModel
	Number      string `gorm:"index"`
	IssueDate   types.Date
	Product     string
	WeightKg    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Value       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IssuerID    string
	RecipientID string

	// Both fields are calculated from the shipments referencing the invoice
	ShippedWeight   decimal.Decimal `gorm:"-"`
	ShipmentNumbers []string        `gorm:"-"`
}

func (i Invoice) Self() string {
	return "Invoice"
}

// BeforeSave trims whitespace from the string fields.
func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	i.Number = strings.TrimSpace(i.Number)
	i.Product = strings.TrimSpace(i.Product)
	i.IssuerID = strings.TrimSpace(i.IssuerID)
	i.RecipientID = strings.TrimSpace(i.RecipientID)

	return nil
}

// WithCalculations computes the derived fields from the shipments that
// reference the invoice number.
func (i *Invoice) WithCalculations(db *gorm.DB) error {
	var shipments []Shipment

	err := db.
		Where(&Shipment{InvoiceNumber: i.Number}).
		Order("shipment_date ASC, created_at ASC").
		Find(&shipments).Error
	if err != nil {
		return err
	}

	i.ShippedWeight = decimal.Zero
	i.ShipmentNumbers = make([]string, 0)

	for _, shipment := range shipments {
		i.ShippedWeight = i.ShippedWeight.Add(shipment.WeightKg)

		if !slices.Contains(i.ShipmentNumbers, shipment.ShipmentNumber) {
			i.ShipmentNumbers = append(i.ShipmentNumbers, shipment.ShipmentNumber)
		}
	}

	return nil
}

// LoadInvoices returns all invoices ordered by issue date, newest first,
// with their derived shipment fields calculated.
func LoadInvoices(db *gorm.DB) ([]Invoice, error) {
	var invoices []Invoice

	err := db.Order("issue_date DESC, created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	for i := range invoices {
		err = invoices[i].WithCalculations(db)
		if err != nil {
			return nil, err
		}
	}

	return invoices, nil
}

// RemainingBalance returns the weight still available for shipment against
// an invoice number. An unknown invoice number has a balance of zero, it is
// not an error.
func RemainingBalance(db *gorm.DB, number string) (decimal.Decimal, error) {
	var available decimal.NullDecimal

	err := db.Model(&Invoice{}).
		Where("number = ?", number).
		Select("SUM(weight_kg)").
		Row().
		Scan(&available)
	if err != nil {
		return decimal.Zero, err
	}

	// No invoice with this number exists
	if !available.Valid {
		return decimal.Zero, nil
	}

	var shipped decimal.NullDecimal

	err = db.Model(&Shipment{}).
		Where("invoice_number = ?", number).
		Select("SUM(weight_kg)").
		Row().
		Scan(&shipped)
	if err != nil {
		return decimal.Zero, err
	}

	if !shipped.Valid {
		return available.Decimal, nil
	}

	return available.Decimal.Sub(shipped.Decimal), nil
}
