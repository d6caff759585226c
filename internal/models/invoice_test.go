package models_test

import (
	"strings"

	"github.com/cargoyard/backend/internal/models"
	"github.com/cargoyard/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInvoiceTrimWhitespace() {
	number := "  1418  "
	product := "\t Soybean meal   "
	issuerID := " 12345678000195 "

	invoice := suite.createTestInvoice(models.Invoice{
		Number:   number,
		Product:  product,
		IssuerID: issuerID,
		WeightKg: decimal.NewFromInt(1000),
	})

	assert.Equal(suite.T(), strings.TrimSpace(number), invoice.Number)
	assert.Equal(suite.T(), strings.TrimSpace(product), invoice.Product)
	assert.Equal(suite.T(), strings.TrimSpace(issuerID), invoice.IssuerID)
}

func (suite *TestSuiteStandard) TestInvoiceCalculations() {
	invoice := suite.createTestInvoice(models.Invoice{
		Number:   "900001",
		WeightKg: decimal.NewFromInt(1000),
	})

	_ = suite.createTestShipment(models.Shipment{
		ShipmentNumber: "S-1",
		InvoiceNumber:  invoice.Number,
		WeightKg:       decimal.NewFromInt(300),
	})
	_ = suite.createTestShipment(models.Shipment{
		ShipmentNumber: "S-1",
		InvoiceNumber:  invoice.Number,
		WeightKg:       decimal.NewFromInt(100),
	})
	_ = suite.createTestShipment(models.Shipment{
		ShipmentNumber: "S-2",
		InvoiceNumber:  invoice.Number,
		WeightKg:       decimal.NewFromInt(200),
	})

	err := invoice.WithCalculations(models.DB)
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), invoice.ShippedWeight.Equal(decimal.NewFromInt(600)), "shipped weight is wrong: %s", invoice.ShippedWeight)

	// Shipment numbers are deduplicated
	assert.Equal(suite.T(), []string{"S-1", "S-2"}, invoice.ShipmentNumbers)
}

func (suite *TestSuiteStandard) TestInvoiceCalculationsNoShipments() {
	invoice := suite.createTestInvoice(models.Invoice{
		WeightKg: decimal.NewFromInt(1000),
	})

	err := invoice.WithCalculations(models.DB)
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), invoice.ShippedWeight.IsZero())
	assert.NotNil(suite.T(), invoice.ShipmentNumbers)
	assert.Len(suite.T(), invoice.ShipmentNumbers, 0)
}

func (suite *TestSuiteStandard) TestLoadInvoicesOrder() {
	older := suite.createTestInvoice(models.Invoice{
		IssueDate: types.NewDate(2026, 1, 10),
		WeightKg:  decimal.NewFromInt(100),
	})
	newer := suite.createTestInvoice(models.Invoice{
		IssueDate: types.NewDate(2026, 3, 4),
		WeightKg:  decimal.NewFromInt(100),
	})

	invoices, err := models.LoadInvoices(models.DB)
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), invoices, 2) {
		assert.Equal(suite.T(), newer.ID, invoices[0].ID, "invoices must be ordered newest issue date first")
		assert.Equal(suite.T(), older.ID, invoices[1].ID)
	}
}

func (suite *TestSuiteStandard) TestRemainingBalanceUnknownNumber() {
	balance, err := models.RemainingBalance(models.DB, "does-not-exist")
	assert.Nil(suite.T(), err, "an unknown invoice number is not an error")
	assert.True(suite.T(), balance.IsZero())
}

func (suite *TestSuiteStandard) TestRemainingBalance() {
	invoice := suite.createTestInvoice(models.Invoice{
		WeightKg: decimal.NewFromInt(1000),
	})

	_ = suite.createTestShipment(models.Shipment{
		InvoiceNumber: invoice.Number,
		WeightKg:      decimal.NewFromInt(350),
	})

	balance, err := models.RemainingBalance(models.DB, invoice.Number)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(650)), "balance is wrong: %s", balance)
}

// Invoice numbers are not unique, the balance sums over all rows sharing
// the number.
func (suite *TestSuiteStandard) TestRemainingBalanceDuplicateNumbers() {
	_ = suite.createTestInvoice(models.Invoice{
		Number:   "774411",
		WeightKg: decimal.NewFromInt(1000),
	})
	_ = suite.createTestInvoice(models.Invoice{
		Number:   "774411",
		WeightKg: decimal.NewFromInt(500),
	})

	_ = suite.createTestShipment(models.Shipment{
		InvoiceNumber: "774411",
		WeightKg:      decimal.NewFromInt(200),
	})

	balance, err := models.RemainingBalance(models.DB, "774411")
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(1300)), "balance is wrong: %s", balance)
}
