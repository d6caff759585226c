package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerStatistics are the aggregate numbers over all invoices and
// shipments. All sums are zero for empty tables.
type LedgerStatistics struct {
	EntryWeight   decimal.Decimal `json:"entryWeight" example:"120000"`  // Total weight of all invoices in kg
	EntryValue    decimal.Decimal `json:"entryValue" example:"354000.5"` // Total value of all invoices
	ExitWeight    decimal.Decimal `json:"exitWeight" example:"80000"`    // Total weight of all shipments in kg
	ExitFreight   decimal.Decimal `json:"exitFreight" example:"12750"`   // Total freight value of all shipments
	WeightBalance decimal.Decimal `json:"weightBalance" example:"40000"` // Entry weight minus exit weight in kg
}

// LoadLedgerStatistics sums weights and values over all invoices and
// shipments.
func LoadLedgerStatistics(db *gorm.DB) (LedgerStatistics, error) {
	var entryWeight, entryValue decimal.NullDecimal

	err := db.Model(&Invoice{}).
		Select("SUM(weight_kg), SUM(value)").
		Row().
		Scan(&entryWeight, &entryValue)
	if err != nil {
		return LedgerStatistics{}, err
	}

	var exitWeight, exitFreight decimal.NullDecimal

	err = db.Model(&Shipment{}).
		Select("SUM(weight_kg), SUM(freight_value)").
		Row().
		Scan(&exitWeight, &exitFreight)
	if err != nil {
		return LedgerStatistics{}, err
	}

	stats := LedgerStatistics{
		EntryWeight: entryWeight.Decimal,
		EntryValue:  entryValue.Decimal,
		ExitWeight:  exitWeight.Decimal,
		ExitFreight: exitFreight.Decimal,
	}
	stats.WeightBalance = stats.EntryWeight.Sub(stats.ExitWeight)

	return stats, nil
}

// ContainerStatistics are the container counts per lifecycle status.
// Statuses without containers have a count of zero.
type ContainerStatistics struct {
	Total     int64 `json:"total" example:"17"`    // Number of registered containers
	Gate      int64 `json:"gate" example:"3"`      // Containers at the gate
	FullYard  int64 `json:"fullYard" example:"0"`  // Containers in the full yard
	Unloading int64 `json:"unloading" example:"0"` // Containers being unloaded
	EmptyYard int64 `json:"emptyYard" example:"9"` // Containers in the empty yard
	Released  int64 `json:"released" example:"5"`  // Containers released for exit
}

// LoadContainerStatistics counts containers grouped by their status.
func LoadContainerStatistics(db *gorm.DB) (ContainerStatistics, error) {
	var counts []struct {
		Status ContainerStatus
		Count  int64
	}

	err := db.Model(&Container{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&counts).Error
	if err != nil {
		return ContainerStatistics{}, err
	}

	var stats ContainerStatistics
	for _, row := range counts {
		stats.Total += row.Count

		switch row.Status {
		case StatusGate:
			stats.Gate = row.Count
		case StatusFullYard:
			stats.FullYard = row.Count
		case StatusUnloading:
			stats.Unloading = row.Count
		case StatusEmptyYard:
			stats.EmptyYard = row.Count
		case StatusReleased:
			stats.Released = row.Count
		}
	}

	return stats, nil
}
