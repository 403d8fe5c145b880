package services

import (
	"math"
	"reflect"
	"testing"
	"time"

	"salonflow-backend/models"

	"github.com/google/uuid"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func approvedLog(barberID, serviceID uuid.UUID, price, rate float64) models.ServiceLog {
	return models.ServiceLog{
		ID:               uuid.New(),
		BarberID:         barberID,
		ServiceID:        serviceID,
		Price:            price,
		CommissionRate:   rate,
		CommissionAmount: CommissionAmount(price, rate),
		Status:           models.LogStatusApproved,
	}
}

func TestCommissionAmount(t *testing.T) {
	if got := CommissionAmount(1500, 0.45); !almostEqual(got, 675) {
		t.Errorf("CommissionAmount(1500, 0.45) = %v, want 675", got)
	}
	if got := CommissionAmount(0, 0.5); !almostEqual(got, 0) {
		t.Errorf("CommissionAmount(0, 0.5) = %v, want 0", got)
	}
	if got := CommissionAmount(100, 0); !almostEqual(got, 0) {
		t.Errorf("CommissionAmount(100, 0) = %v, want 0", got)
	}
	if got := CommissionAmount(100, 1); !almostEqual(got, 100) {
		t.Errorf("CommissionAmount(100, 1) = %v, want 100", got)
	}
}

func TestBuildDailyReportSingleBarber(t *testing.T) {
	barberID := uuid.New()
	serviceID := uuid.New()
	names := map[uuid.UUID]string{barberID: "Kasun"}

	// Service at 1500 with a 45% commission rate, logged twice
	logs := []models.ServiceLog{
		approvedLog(barberID, serviceID, 1500, 0.45),
		approvedLog(barberID, serviceID, 1500, 0.45),
	}

	date := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)
	report := BuildDailyReport(date, logs, names)

	if !report.Date.Equal(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)) {
		t.Errorf("report date = %v, want start of day", report.Date)
	}
	if !almostEqual(report.TotalRevenue, 3000) {
		t.Errorf("TotalRevenue = %v, want 3000", report.TotalRevenue)
	}
	if !almostEqual(report.TotalBarberCommissions, 1350) {
		t.Errorf("TotalBarberCommissions = %v, want 1350", report.TotalBarberCommissions)
	}
	if !almostEqual(report.Profit, 1650) {
		t.Errorf("Profit = %v, want 1650", report.Profit)
	}
	if !almostEqual(report.ManagerCommission, 825) {
		t.Errorf("ManagerCommission = %v, want 825", report.ManagerCommission)
	}
	if !almostEqual(report.OwnerCut, 825) {
		t.Errorf("OwnerCut = %v, want 825", report.OwnerCut)
	}
	if report.ApprovedServiceCount != 2 {
		t.Errorf("ApprovedServiceCount = %d, want 2", report.ApprovedServiceCount)
	}

	if len(report.BarberBreakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(report.BarberBreakdown))
	}
	entry := report.BarberBreakdown[0]
	if entry.BarberName != "Kasun" {
		t.Errorf("barber name = %q, want Kasun", entry.BarberName)
	}
	if entry.ServiceCount != 2 {
		t.Errorf("service count = %d, want 2", entry.ServiceCount)
	}
	if !almostEqual(entry.Revenue, 3000) || !almostEqual(entry.Commission, 1350) {
		t.Errorf("breakdown revenue/commission = %v/%v, want 3000/1350", entry.Revenue, entry.Commission)
	}
}

func TestBuildDailyReportEmptyDay(t *testing.T) {
	report := BuildDailyReport(time.Now(), nil, map[uuid.UUID]string{})

	if report.TotalRevenue != 0 || report.TotalBarberCommissions != 0 ||
		report.Profit != 0 || report.ManagerCommission != 0 || report.OwnerCut != 0 {
		t.Errorf("empty day report has non-zero monetary fields: %+v", report)
	}
	if report.ApprovedServiceCount != 0 {
		t.Errorf("ApprovedServiceCount = %d, want 0", report.ApprovedServiceCount)
	}
	if report.BarberBreakdown == nil {
		t.Error("breakdown is nil, want empty list")
	}
	if len(report.BarberBreakdown) != 0 {
		t.Errorf("breakdown has %d entries, want 0", len(report.BarberBreakdown))
	}
}

func TestBuildDailyReportIdempotent(t *testing.T) {
	barberA := uuid.New()
	barberB := uuid.New()
	serviceID := uuid.New()
	names := map[uuid.UUID]string{barberA: "Nuwan", barberB: "Tharindu"}

	logs := []models.ServiceLog{
		approvedLog(barberA, serviceID, 1200, 0.4),
		approvedLog(barberB, serviceID, 800, 0.5),
		approvedLog(barberA, serviceID, 2500, 0.35),
	}

	date := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local)
	first := BuildDailyReport(date, logs, names)
	second := BuildDailyReport(date, logs, names)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("regenerating from identical logs produced different reports:\n%+v\n%+v", first, second)
	}
}

func TestBuildDailyReportBreakdownSums(t *testing.T) {
	barberA := uuid.New()
	barberB := uuid.New()
	barberC := uuid.New()
	serviceID := uuid.New()
	names := map[uuid.UUID]string{barberA: "A", barberB: "B", barberC: "C"}

	logs := []models.ServiceLog{
		approvedLog(barberA, serviceID, 1000, 0.4),
		approvedLog(barberB, serviceID, 1500, 0.45),
		approvedLog(barberC, serviceID, 700, 0.5),
		approvedLog(barberB, serviceID, 300, 0.45),
	}

	report := BuildDailyReport(time.Now(), logs, names)

	var revenueSum, commissionSum float64
	for _, entry := range report.BarberBreakdown {
		revenueSum += entry.Revenue
		commissionSum += entry.Commission
	}

	if !almostEqual(revenueSum, report.TotalRevenue) {
		t.Errorf("breakdown revenue sum %v != total revenue %v", revenueSum, report.TotalRevenue)
	}
	if !almostEqual(commissionSum, report.TotalBarberCommissions) {
		t.Errorf("breakdown commission sum %v != total commissions %v", commissionSum, report.TotalBarberCommissions)
	}
	if !almostEqual(report.Profit, report.TotalRevenue-report.TotalBarberCommissions) {
		t.Errorf("profit %v != revenue - commissions", report.Profit)
	}
	if !almostEqual(report.ManagerCommission, report.Profit*0.5) || !almostEqual(report.OwnerCut, report.Profit*0.5) {
		t.Errorf("split %v/%v, want half of %v each", report.ManagerCommission, report.OwnerCut, report.Profit)
	}
}

func TestBuildDailyReportUnknownBarber(t *testing.T) {
	orphanedBarber := uuid.New()
	logs := []models.ServiceLog{
		approvedLog(orphanedBarber, uuid.New(), 500, 0.4),
	}

	report := BuildDailyReport(time.Now(), logs, map[uuid.UUID]string{})

	if len(report.BarberBreakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(report.BarberBreakdown))
	}
	if report.BarberBreakdown[0].BarberName != UnknownName {
		t.Errorf("barber name = %q, want %q", report.BarberBreakdown[0].BarberName, UnknownName)
	}
}

func TestBuildDailyReportNegativeProfitNotClamped(t *testing.T) {
	// An override pushes commission above the price; profit goes negative
	barberID := uuid.New()
	logs := []models.ServiceLog{
		{
			BarberID:         barberID,
			ServiceID:        uuid.New(),
			Price:            100,
			CommissionRate:   0.45,
			CommissionAmount: 150,
			Status:           models.LogStatusApproved,
		},
	}

	report := BuildDailyReport(time.Now(), logs, map[uuid.UUID]string{barberID: "X"})

	if !almostEqual(report.Profit, -50) {
		t.Errorf("Profit = %v, want -50", report.Profit)
	}
	if !almostEqual(report.ManagerCommission, -25) || !almostEqual(report.OwnerCut, -25) {
		t.Errorf("split = %v/%v, want -25 each", report.ManagerCommission, report.OwnerCut)
	}
}

func TestBuildBarberLeaderboard(t *testing.T) {
	top := uuid.New()
	mid := uuid.New()
	low := uuid.New()
	serviceID := uuid.New()
	names := map[uuid.UUID]string{top: "Top", mid: "Mid", low: "Low"}

	logs := []models.ServiceLog{
		approvedLog(low, serviceID, 500, 0.4),
		approvedLog(top, serviceID, 2000, 0.4),
		approvedLog(mid, serviceID, 600, 0.4),
		approvedLog(top, serviceID, 1000, 0.4),
		approvedLog(mid, serviceID, 400, 0.4),
	}

	standings := BuildBarberLeaderboard(logs, names)

	if len(standings) != 3 {
		t.Fatalf("got %d standings, want 3", len(standings))
	}
	if standings[0].BarberName != "Top" || standings[1].BarberName != "Mid" || standings[2].BarberName != "Low" {
		t.Errorf("order = %s, %s, %s; want Top, Mid, Low",
			standings[0].BarberName, standings[1].BarberName, standings[2].BarberName)
	}
	if standings[0].TotalServices != 2 {
		t.Errorf("top barber services = %d, want 2", standings[0].TotalServices)
	}
	if !almostEqual(standings[0].AvgServicePrice, 1500) {
		t.Errorf("top barber avg price = %v, want 1500", standings[0].AvgServicePrice)
	}
	if !almostEqual(standings[0].TotalCommission, 1200) {
		t.Errorf("top barber commission = %v, want 1200", standings[0].TotalCommission)
	}
}

func TestBuildServiceLeaderboard(t *testing.T) {
	haircut := uuid.New()
	shave := uuid.New()
	barberID := uuid.New()
	names := map[uuid.UUID]string{haircut: "Haircut", shave: "Shave"}

	logs := []models.ServiceLog{
		approvedLog(barberID, shave, 800, 0.4),
		approvedLog(barberID, haircut, 1500, 0.45),
		approvedLog(barberID, haircut, 1400, 0.45),
		approvedLog(barberID, haircut, 1600, 0.45),
	}

	standings := BuildServiceLeaderboard(logs, names)

	if len(standings) != 2 {
		t.Fatalf("got %d standings, want 2", len(standings))
	}
	if standings[0].ServiceName != "Haircut" || standings[0].Count != 3 {
		t.Errorf("first standing = %s x%d, want Haircut x3", standings[0].ServiceName, standings[0].Count)
	}
	if !almostEqual(standings[0].AvgPrice, 1500) {
		t.Errorf("haircut avg price = %v, want 1500", standings[0].AvgPrice)
	}
	if !almostEqual(standings[0].TotalRevenue, 4500) {
		t.Errorf("haircut revenue = %v, want 4500", standings[0].TotalRevenue)
	}
}

func TestComputeInventoryKPIs(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "Pomade", Stock: 5, ReorderPoint: 5, CostPrice: 200},   // at reorder point: low stock
		{Name: "Razor blades", Stock: 0, ReorderPoint: 3, CostPrice: 50}, // out of stock only
		{Name: "Shampoo", Stock: 20, ReorderPoint: 5, CostPrice: 100},    // healthy
		{Name: "Wax", Stock: 2, ReorderPoint: 4, CostPrice: 150},         // below reorder point
	}

	summary := ComputeInventoryKPIs(items)

	if summary.LowStockCount != 2 {
		t.Errorf("LowStockCount = %d, want 2", summary.LowStockCount)
	}
	if summary.OutOfStockCount != 1 {
		t.Errorf("OutOfStockCount = %d, want 1", summary.OutOfStockCount)
	}
	want := 5*200.0 + 0*50.0 + 20*100.0 + 2*150.0
	if !almostEqual(summary.TotalValue, want) {
		t.Errorf("TotalValue = %v, want %v", summary.TotalValue, want)
	}
}

func TestComputeInventoryKPIsEmpty(t *testing.T) {
	summary := ComputeInventoryKPIs(nil)
	if summary.TotalValue != 0 || summary.LowStockCount != 0 || summary.OutOfStockCount != 0 {
		t.Errorf("empty inventory summary = %+v, want zeros", summary)
	}
}
