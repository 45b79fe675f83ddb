package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"dealer-app/models"
	"dealer-app/utils"

	"golang.org/x/exp/maps"
)

// Period filter types for the sales dashboard.
const (
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodCustom    = "custom"
)

// CompanyLabel is the salesRep value of company-wide KPI rows.
const CompanyLabel = "company"

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SalesKPI struct {
	SalesRep         string  `json:"salesRep"`
	DealCount        int     `json:"dealCount"`
	CloseCount       int     `json:"closeCount"`
	CloseRate        float64 `json:"closeRate"`
	Sales            int     `json:"sales"`
	InstantCloseRate float64 `json:"instantCloseRate"`
	LoanRate         float64 `json:"loanRate"`
	TradeInRate      float64 `json:"tradeInRate"`
	OptionAttachRate float64 `json:"optionAttachRate"`
	LineExchangeRate float64 `json:"lineExchangeRate"`
}

// PeriodKPI is one bucket of the trend charts, keyed by '2025-01',
// '2025-W03' or '2025-01-14' depending on the bucketing unit.
type PeriodKPI struct {
	Period string `json:"period"`
	SalesKPI
}

// Per-rep monthly sales targets and the company-wide total, used by the
// target achievement view.
var SalesTargets = map[string]int{
	"Takahashi": 8000000,
	"Suzuki":    7500000,
	"Sato":      8500000,
	"Tanaka":    7000000,
	"Yamamoto":  6500000,
}

const CompanyTarget = 37500000

func periodDates(periodType string, customRange *DateRange, reference time.Time) (time.Time, time.Time) {
	switch {
	case periodType == PeriodCustom && customRange != nil:
		start, _ := time.Parse(utils.DateLayout, customRange.Start)
		end, _ := time.Parse(utils.DateLayout, customRange.End)
		return start, end
	case periodType == PeriodLastMonth:
		start := time.Date(reference.Year(), reference.Month()-1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(reference.Year(), reference.Month(), 0, 0, 0, 0, 0, time.UTC)
		return start, end
	default:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(reference.Year(), reference.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		return start, end
	}
}

// FilterByPeriod keeps customers whose addedDate falls inside the period.
// Both boundary dates are inclusive.
func FilterByPeriod(customers []models.Customer, periodType string, customRange *DateRange, reference time.Time) []models.Customer {
	start, end := periodDates(periodType, customRange, reference)

	filtered := []models.Customer{}
	for _, c := range customers {
		added, err := time.Parse(utils.DateLayout, c.AddedDate)
		if err != nil {
			continue
		}
		if !added.Before(start) && !added.After(end) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// CalculateTargetUnits prorates a monthly target over the period's day
// count, using the average month length of 30.44 days.
func CalculateTargetUnits(monthlyTarget int, periodType string, customRange *DateRange, reference time.Time) int {
	start, end := periodDates(periodType, customRange, reference)
	days := int(end.Sub(start).Hours()/24) + 1
	return int(math.Round(float64(monthlyTarget) / 30.44 * float64(days)))
}

// CalculateKPIs computes the KPI set over one group of customers. Every rate
// guards the zero-denominator case and yields 0.
func CalculateKPIs(customers []models.Customer, salesRep string) SalesKPI {
	dealCount := len(customers)

	closed := []models.Customer{}
	for _, c := range customers {
		if c.DealInfo.Statuses.Contract.Checked {
			closed = append(closed, c)
		}
	}
	closeCount := len(closed)

	closeRate := 0.0
	if dealCount > 0 {
		closeRate = float64(closeCount) / float64(dealCount) * 100
	}

	sales := 0
	instantCloseCount := 0
	loanCount := 0
	tradeInCount := 0
	totalOptions := 0
	for _, c := range closed {
		sales += c.DealInfo.SalesPrice
		if c.DealInfo.IsInstantClose {
			instantCloseCount++
		}
		if c.DealInfo.PaymentMethod == models.PaymentLoan {
			loanCount++
		}
		if c.DealInfo.HasTradeIn {
			tradeInCount++
		}
		totalOptions += len(c.DealInfo.Options)
	}

	instantCloseRate := 0.0
	loanRate := 0.0
	tradeInRate := 0.0
	optionAttachRate := 0.0
	if closeCount > 0 {
		instantCloseRate = float64(instantCloseCount) / float64(closeCount) * 100
		loanRate = float64(loanCount) / float64(closeCount) * 100
		tradeInRate = float64(tradeInCount) / float64(closeCount) * 100
		optionAttachRate = float64(totalOptions) / float64(closeCount)
	}

	// LINE exchange is measured over the whole group, not closed-only.
	lineExchangeCount := 0
	for _, c := range customers {
		if c.DealInfo.Statuses.LineContact.Checked {
			lineExchangeCount++
		}
	}
	lineExchangeRate := 0.0
	if dealCount > 0 {
		lineExchangeRate = float64(lineExchangeCount) / float64(dealCount) * 100
	}

	return SalesKPI{
		SalesRep:         salesRep,
		DealCount:        dealCount,
		CloseCount:       closeCount,
		CloseRate:        closeRate,
		Sales:            sales,
		InstantCloseRate: instantCloseRate,
		LoanRate:         loanRate,
		TradeInRate:      tradeInRate,
		OptionAttachRate: optionAttachRate,
		LineExchangeRate: lineExchangeRate,
	}
}

func CalculateCompanyKPIs(customers []models.Customer) SalesKPI {
	return CalculateKPIs(customers, CompanyLabel)
}

func CalculateKPIsBySalesRep(customers []models.Customer, salesRep string) SalesKPI {
	repCustomers := []models.Customer{}
	for _, c := range customers {
		if c.SalesRep == salesRep {
			repCustomers = append(repCustomers, c)
		}
	}
	return CalculateKPIs(repCustomers, salesRep)
}

func CalculateAllSalesRepsKPIs(customers []models.Customer) []SalesKPI {
	kpis := []SalesKPI{}
	for _, rep := range GetSalesReps(customers) {
		kpis = append(kpis, CalculateKPIsBySalesRep(customers, rep))
	}
	return kpis
}

// GetSalesReps returns the distinct sales reps in the collection, sorted.
func GetSalesReps(customers []models.Customer) []string {
	set := map[string]bool{}
	for _, c := range customers {
		if c.SalesRep != "" {
			set[c.SalesRep] = true
		}
	}
	reps := maps.Keys(set)
	sort.Strings(reps)
	return reps
}

func bucketKPIs(customers []models.Customer, salesRep string, keyOf func(models.Customer) string) []PeriodKPI {
	groups := map[string][]models.Customer{}
	for _, c := range customers {
		if salesRep != "" && c.SalesRep != salesRep {
			continue
		}
		key := keyOf(c)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], c)
	}

	periods := maps.Keys(groups)
	sort.Strings(periods)

	kpis := []PeriodKPI{}
	for _, period := range periods {
		kpis = append(kpis, PeriodKPI{Period: period, SalesKPI: CalculateKPIs(groups[period], "")})
	}
	return kpis
}

// CalculateMonthlyKPIs groups by calendar month of addedDate.
func CalculateMonthlyKPIs(customers []models.Customer, salesRep string) []PeriodKPI {
	return bucketKPIs(customers, salesRep, func(c models.Customer) string {
		added, err := time.Parse(utils.DateLayout, c.AddedDate)
		if err != nil {
			return ""
		}
		return added.Format("2006-01")
	})
}

// CalculateWeeklyKPIs groups by ISO week of addedDate.
func CalculateWeeklyKPIs(customers []models.Customer, salesRep string) []PeriodKPI {
	return bucketKPIs(customers, salesRep, func(c models.Customer) string {
		added, err := time.Parse(utils.DateLayout, c.AddedDate)
		if err != nil {
			return ""
		}
		year, week := added.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	})
}

// CalculateDailyKPIs groups by the exact addedDate.
func CalculateDailyKPIs(customers []models.Customer, salesRep string) []PeriodKPI {
	return bucketKPIs(customers, salesRep, func(c models.Customer) string {
		return c.AddedDate
	})
}
