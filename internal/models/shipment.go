package models

import (
	"fmt"
	"strings"

	"github.com/cargoyard/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shipment represents an outgoing shipment allocation: a partial or full
// draw against the weight of one incoming invoice. Multiple shipments may
// reference the same invoice number. Shipments are immutable once created.
type Shipment struct {
	DefaultModel
	ShipmentNumber string `gorm:"index"`
	InvoiceNumber  string `gorm:"index"`
	WeightKg       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	FreightValue   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ShipmentDate   types.Date
}

func (s Shipment) Self() string {
	return "Shipment"
}

// BeforeSave trims whitespace from the string fields.
func (s *Shipment) BeforeSave(_ *gorm.DB) error {
	s.ShipmentNumber = strings.TrimSpace(s.ShipmentNumber)
	s.InvoiceNumber = strings.TrimSpace(s.InvoiceNumber)

	return nil
}

// CreateShipment checks the remaining balance of the referenced invoice and
// persists the shipment. Check and insert run in one transaction so that
// concurrent shipments against the same invoice cannot jointly overdraw it.
func CreateShipment(db *gorm.DB, shipment *Shipment) error {
	if !shipment.WeightKg.IsPositive() {
		return fmt.Errorf("%w: got %s kg", ErrShipmentWeightNotPositive, shipment.WeightKg)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		balance, err := RemainingBalance(tx, shipment.InvoiceNumber)
		if err != nil {
			return err
		}

		if shipment.WeightKg.GreaterThan(balance) {
			return fmt.Errorf("%w: requested %s kg with %s kg remaining for invoice %s",
				ErrShipmentExceedsBalance, shipment.WeightKg, balance, shipment.InvoiceNumber)
		}

		return tx.Create(shipment).Error
	})
}

// LoadShipments returns all shipments, newest shipment date first.
func LoadShipments(db *gorm.DB) ([]Shipment, error) {
	var shipments []Shipment

	err := db.Order("shipment_date DESC, created_at DESC").Find(&shipments).Error
	if err != nil {
		return nil, err
	}

	return shipments, nil
}
