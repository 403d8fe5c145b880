// services/report_service.go
package services

import (
	"sort"
	"time"

	"salonflow-backend/models"
	"salonflow-backend/utils"

	"github.com/google/uuid"
)

// UnknownName is used when a log's barber or service id cannot be resolved,
// e.g. the barber account was deleted after the log was approved.
const UnknownName = "Unknown"

// BarberStanding is one leaderboard row, ranked by revenue.
type BarberStanding struct {
	BarberID        string  `json:"barberId"`
	BarberName      string  `json:"barberName"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalServices   int     `json:"totalServices"`
	TotalCommission float64 `json:"totalCommission"`
	AvgServicePrice float64 `json:"avgServicePrice"`
}

// ServiceStanding is one service-popularity row, ranked by count.
type ServiceStanding struct {
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"`
}

// InventorySummary holds the stock KPIs, recomputed on every read.
type InventorySummary struct {
	TotalValue      float64 `json:"totalValue"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

// CommissionAmount computes the barber's share of a service price.
func CommissionAmount(price, rate float64) float64 {
	return price * rate
}

// BuildDailyReport aggregates the given approved service logs into a daily
// report snapshot for the day containing date. Callers pass only logs whose
// approvedAt falls on that day. An empty log set yields a valid all-zero
// report, not an error. Profit may be negative; it is not clamped.
func BuildDailyReport(date time.Time, logs []models.ServiceLog, barberNames map[uuid.UUID]string) models.DailyReport {
	report := models.DailyReport{
		Date:                 utils.BeginningOfDay(date),
		BarberBreakdown:      models.BarberBreakdownList{},
		ApprovedServiceCount: len(logs),
	}

	breakdown := make(map[uuid.UUID]*models.BarberRevenueBreakdown)
	var order []uuid.UUID

	for _, log := range logs {
		report.TotalRevenue += log.Price
		report.TotalBarberCommissions += log.CommissionAmount

		entry, ok := breakdown[log.BarberID]
		if !ok {
			name, found := barberNames[log.BarberID]
			if !found {
				name = UnknownName
			}
			entry = &models.BarberRevenueBreakdown{
				BarberID:   log.BarberID.String(),
				BarberName: name,
			}
			breakdown[log.BarberID] = entry
			order = append(order, log.BarberID)
		}
		entry.Revenue += log.Price
		entry.Commission += log.CommissionAmount
		entry.ServiceCount++
	}

	for _, barberID := range order {
		report.BarberBreakdown = append(report.BarberBreakdown, *breakdown[barberID])
	}

	report.Profit = report.TotalRevenue - report.TotalBarberCommissions
	// Fixed 50/50 manager/owner split of the profit
	report.ManagerCommission = report.Profit * 0.5
	report.OwnerCut = report.Profit * 0.5

	return report
}

// BuildBarberLeaderboard ranks barbers by revenue over the given approved
// logs. Unresolved barber ids render as "Unknown".
func BuildBarberLeaderboard(logs []models.ServiceLog, barberNames map[uuid.UUID]string) []BarberStanding {
	stats := make(map[uuid.UUID]*BarberStanding)
	var order []uuid.UUID

	for _, log := range logs {
		entry, ok := stats[log.BarberID]
		if !ok {
			name, found := barberNames[log.BarberID]
			if !found {
				name = UnknownName
			}
			entry = &BarberStanding{
				BarberID:   log.BarberID.String(),
				BarberName: name,
			}
			stats[log.BarberID] = entry
			order = append(order, log.BarberID)
		}
		entry.TotalRevenue += log.Price
		entry.TotalServices++
		entry.TotalCommission += log.CommissionAmount
	}

	standings := make([]BarberStanding, 0, len(order))
	for _, barberID := range order {
		entry := stats[barberID]
		entry.AvgServicePrice = entry.TotalRevenue / float64(entry.TotalServices)
		standings = append(standings, *entry)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalRevenue > standings[j].TotalRevenue
	})

	return standings
}

// BuildServiceLeaderboard ranks services by how often they were performed.
func BuildServiceLeaderboard(logs []models.ServiceLog, serviceNames map[uuid.UUID]string) []ServiceStanding {
	stats := make(map[uuid.UUID]*ServiceStanding)
	var order []uuid.UUID

	for _, log := range logs {
		entry, ok := stats[log.ServiceID]
		if !ok {
			name, found := serviceNames[log.ServiceID]
			if !found {
				name = UnknownName
			}
			entry = &ServiceStanding{
				ServiceID:   log.ServiceID.String(),
				ServiceName: name,
			}
			stats[log.ServiceID] = entry
			order = append(order, log.ServiceID)
		}
		entry.Count++
		entry.TotalRevenue += log.Price
	}

	standings := make([]ServiceStanding, 0, len(order))
	for _, serviceID := range order {
		entry := stats[serviceID]
		entry.AvgPrice = entry.TotalRevenue / float64(entry.Count)
		standings = append(standings, *entry)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Count > standings[j].Count
	})

	return standings
}

// ComputeInventoryKPIs summarises the full item list. An item with
// stock equal to its reorder point counts as low stock; an item at zero
// counts only as out of stock.
func ComputeInventoryKPIs(items []models.InventoryItem) InventorySummary {
	var summary InventorySummary
	for _, item := range items {
		summary.TotalValue += item.CostPrice * float64(item.Stock)
		switch {
		case item.Stock == 0:
			summary.OutOfStockCount++
		case item.Stock <= item.ReorderPoint:
			summary.LowStockCount++
		}
	}
	return summary
}
