package services_test

import (
	"testing"
	"time"

	"dealer-app/models"
	"dealer-app/services"
)

var kpiReference = time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)

func closedDeal(salesRep, addedDate string, salesPrice int) models.Customer {
	return models.Customer{
		SalesRep:  salesRep,
		AddedDate: addedDate,
		DealInfo: models.DealInfo{
			SalesPrice: salesPrice,
			Statuses: models.DealStatuses{
				Contract: models.DealStatus{Checked: true, Date: addedDate},
			},
		},
	}
}

func openDeal(salesRep, addedDate string) models.Customer {
	return models.Customer{SalesRep: salesRep, AddedDate: addedDate}
}

func TestCalculateKPIs_EmptyGroup(t *testing.T) {
	got := services.CalculateKPIs(nil, "Takahashi")

	if got.SalesRep != "Takahashi" {
		t.Errorf("salesRep = %q", got.SalesRep)
	}
	if got.DealCount != 0 || got.CloseCount != 0 || got.Sales != 0 {
		t.Errorf("counts must be zero: %+v", got)
	}
	if got.CloseRate != 0 || got.InstantCloseRate != 0 || got.LoanRate != 0 ||
		got.TradeInRate != 0 || got.OptionAttachRate != 0 || got.LineExchangeRate != 0 {
		t.Errorf("rates must be zero-guarded: %+v", got)
	}
}

func TestCalculateKPIs_CloseRateAndSales(t *testing.T) {
	customers := []models.Customer{}
	for i := 0; i < 4; i++ {
		customers = append(customers, closedDeal("Takahashi", "2025-02-01", 1000000))
	}
	for i := 0; i < 6; i++ {
		customers = append(customers, openDeal("Takahashi", "2025-02-01"))
	}

	got := services.CalculateKPIs(customers, "Takahashi")

	if got.DealCount != 10 || got.CloseCount != 4 {
		t.Fatalf("counts = %d/%d, want 10/4", got.DealCount, got.CloseCount)
	}
	if got.CloseRate != 40 {
		t.Errorf("closeRate = %v, want 40", got.CloseRate)
	}
	if got.Sales != 4000000 {
		t.Errorf("sales = %d, want 4000000 (closed deals only)", got.Sales)
	}
}

func TestCalculateKPIs_ClosedOnlyRates(t *testing.T) {
	instant := closedDeal("Suzuki", "2025-02-01", 2000000)
	instant.DealInfo.IsInstantClose = true
	instant.DealInfo.PaymentMethod = models.PaymentLoan
	instant.DealInfo.HasTradeIn = true
	instant.DealInfo.Options = []models.DealOption{
		{Category: "Coating", Name: "Glass coating", Amount: 80000},
		{Category: "Warranty", Name: "Extended warranty", Amount: 50000},
	}

	plain := closedDeal("Suzuki", "2025-02-01", 1500000)
	plain.DealInfo.PaymentMethod = models.PaymentCash

	// An open deal with a loan must not count toward the loan rate.
	open := openDeal("Suzuki", "2025-02-01")
	open.DealInfo.PaymentMethod = models.PaymentLoan

	got := services.CalculateKPIs([]models.Customer{instant, plain, open}, "Suzuki")

	if got.InstantCloseRate != 50 {
		t.Errorf("instantCloseRate = %v, want 50", got.InstantCloseRate)
	}
	if got.LoanRate != 50 {
		t.Errorf("loanRate = %v, want 50", got.LoanRate)
	}
	if got.TradeInRate != 50 {
		t.Errorf("tradeInRate = %v, want 50", got.TradeInRate)
	}
	if got.OptionAttachRate != 1 {
		t.Errorf("optionAttachRate = %v, want 1 (2 options over 2 closed)", got.OptionAttachRate)
	}
}

func TestCalculateKPIs_LineExchangeOverWholeGroup(t *testing.T) {
	withLine := openDeal("Sato", "2025-02-01")
	withLine.DealInfo.Statuses.LineContact = models.DealStatus{Checked: true, Date: "2025-02-01"}

	customers := []models.Customer{
		withLine,
		openDeal("Sato", "2025-02-01"),
		openDeal("Sato", "2025-02-01"),
		closedDeal("Sato", "2025-02-01", 1000000),
	}

	got := services.CalculateKPIs(customers, "Sato")

	if got.LineExchangeRate != 25 {
		t.Errorf("lineExchangeRate = %v, want 25 (1 of 4, whole group)", got.LineExchangeRate)
	}
}

func TestFilterByPeriod_InclusiveBounds(t *testing.T) {
	customRange := &services.DateRange{Start: "2025-01-10", End: "2025-01-20"}

	tests := []struct {
		addedDate string
		want      bool
	}{
		{"2025-01-09", false},
		{"2025-01-10", true},
		{"2025-01-15", true},
		{"2025-01-20", true},
		{"2025-01-21", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.addedDate, func(t *testing.T) {
			customers := []models.Customer{openDeal("Takahashi", tt.addedDate)}
			got := services.FilterByPeriod(customers, services.PeriodCustom, customRange, kpiReference)
			if (len(got) == 1) != tt.want {
				t.Errorf("addedDate %q kept=%v, want %v", tt.addedDate, len(got) == 1, tt.want)
			}
		})
	}
}

func TestFilterByPeriod_ThisMonth(t *testing.T) {
	customers := []models.Customer{
		openDeal("Takahashi", "2025-01-31"),
		openDeal("Takahashi", "2025-02-01"),
		openDeal("Takahashi", "2025-02-28"),
		openDeal("Takahashi", "2025-03-01"),
	}

	got := services.FilterByPeriod(customers, services.PeriodThisMonth, nil, kpiReference)

	if len(got) != 2 {
		t.Fatalf("kept %d customers, want 2", len(got))
	}
	if got[0].AddedDate != "2025-02-01" || got[1].AddedDate != "2025-02-28" {
		t.Errorf("wrong customers kept: %s, %s", got[0].AddedDate, got[1].AddedDate)
	}
}

func TestFilterByPeriod_LastMonth(t *testing.T) {
	customers := []models.Customer{
		openDeal("Takahashi", "2024-12-31"),
		openDeal("Takahashi", "2025-01-01"),
		openDeal("Takahashi", "2025-01-31"),
		openDeal("Takahashi", "2025-02-01"),
	}

	got := services.FilterByPeriod(customers, services.PeriodLastMonth, nil, kpiReference)

	if len(got) != 2 {
		t.Fatalf("kept %d customers, want 2", len(got))
	}
}

func TestCalculateTargetUnits(t *testing.T) {
	// February 2025 has 28 days: 30440 / 30.44 * 28 = 28000.
	got := services.CalculateTargetUnits(30440, services.PeriodThisMonth, nil, kpiReference)
	if got != 28000 {
		t.Errorf("target units = %d, want 28000", got)
	}
}

func TestGetSalesReps_SortedDistinct(t *testing.T) {
	customers := []models.Customer{
		openDeal("Suzuki", "2025-02-01"),
		openDeal("Takahashi", "2025-02-01"),
		openDeal("Suzuki", "2025-02-02"),
		openDeal("", "2025-02-03"),
	}

	got := services.GetSalesReps(customers)

	want := []string{"Suzuki", "Takahashi"}
	if len(got) != len(want) {
		t.Fatalf("reps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reps = %v, want %v", got, want)
		}
	}
}

func TestCalculateMonthlyKPIs_SortedBuckets(t *testing.T) {
	customers := []models.Customer{
		closedDeal("Takahashi", "2025-02-10", 1000000),
		closedDeal("Takahashi", "2025-01-05", 2000000),
		openDeal("Takahashi", "2025-01-20"),
	}

	got := services.CalculateMonthlyKPIs(customers, "")

	if len(got) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(got))
	}
	if got[0].Period != "2025-01" || got[1].Period != "2025-02" {
		t.Errorf("buckets out of order: %s, %s", got[0].Period, got[1].Period)
	}
	if got[0].DealCount != 2 || got[0].Sales != 2000000 {
		t.Errorf("january bucket wrong: %+v", got[0])
	}
}

func TestCalculateWeeklyKPIs_ISOWeekKey(t *testing.T) {
	// 2025-01-14 is a Tuesday in ISO week 3 of 2025.
	got := services.CalculateWeeklyKPIs([]models.Customer{openDeal("Suzuki", "2025-01-14")}, "")

	if len(got) != 1 {
		t.Fatalf("bucket count = %d, want 1", len(got))
	}
	if got[0].Period != "2025-W03" {
		t.Errorf("week key = %q, want 2025-W03", got[0].Period)
	}
}

func TestCalculateDailyKPIs_FiltersBySalesRep(t *testing.T) {
	customers := []models.Customer{
		openDeal("Suzuki", "2025-02-01"),
		openDeal("Takahashi", "2025-02-01"),
		openDeal("Suzuki", "2025-02-02"),
	}

	got := services.CalculateDailyKPIs(customers, "Suzuki")

	if len(got) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(got))
	}
	for _, bucket := range got {
		if bucket.DealCount != 1 {
			t.Errorf("bucket %s dealCount = %d, want 1", bucket.Period, bucket.DealCount)
		}
	}
}

func TestCalculateKPIsBySalesRep(t *testing.T) {
	customers := []models.Customer{
		closedDeal("Suzuki", "2025-02-01", 1000000),
		closedDeal("Takahashi", "2025-02-01", 9000000),
	}

	got := services.CalculateKPIsBySalesRep(customers, "Suzuki")

	if got.SalesRep != "Suzuki" || got.DealCount != 1 || got.Sales != 1000000 {
		t.Errorf("rep KPIs leaked other reps' deals: %+v", got)
	}
}

func TestCalculateCompanyKPIs_Label(t *testing.T) {
	got := services.CalculateCompanyKPIs([]models.Customer{closedDeal("Suzuki", "2025-02-01", 1000000)})
	if got.SalesRep != services.CompanyLabel {
		t.Errorf("company label = %q, want %q", got.SalesRep, services.CompanyLabel)
	}
}
