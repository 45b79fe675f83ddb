package controllers

import (
	"fmt"
	"time"

	"dealer-app/config"
	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/services"
	"dealer-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type DashboardController struct {
	Repo *repositories.CustomerRepository
}

func NewDashboardController(repo *repositories.CustomerRepository) *DashboardController {
	return &DashboardController{Repo: repo}
}

// referenceDate resolves the dashboard's "today" for this-month/last-month
// periods.
func referenceDate() time.Time {
	if ref, err := time.Parse(utils.DateLayout, config.KPIReferenceDate); err == nil {
		return ref
	}
	return time.Now()
}

func periodFromQuery(ctx *fiber.Ctx) (string, *services.DateRange) {
	periodType := ctx.Query("period", services.PeriodThisMonth)

	var customRange *services.DateRange
	if periodType == services.PeriodCustom {
		customRange = &services.DateRange{
			Start: ctx.Query("start"),
			End:   ctx.Query("end"),
		}
	}
	return periodType, customRange
}

func (c *DashboardController) filteredCustomers(ctx *fiber.Ctx) []models.Customer {
	periodType, customRange := periodFromQuery(ctx)
	return services.FilterByPeriod(c.Repo.All(), periodType, customRange, referenceDate())
}

// GetDashboard returns the company-wide KPI block plus one block per sales
// rep for the requested period.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	filtered := c.filteredCustomers(ctx)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "KPIs calculated",
		"data": fiber.Map{
			"company":   services.CalculateCompanyKPIs(filtered),
			"salesReps": services.CalculateAllSalesRepsKPIs(filtered),
		},
	})
}

// GetTrend returns period-bucketed KPIs for the charts.
func (c *DashboardController) GetTrend(ctx *fiber.Ctx) error {
	customers := c.Repo.All()
	salesRep := ctx.Query("sales_rep")

	var buckets []services.PeriodKPI
	switch ctx.Query("unit", "monthly") {
	case "weekly":
		buckets = services.CalculateWeeklyKPIs(customers, salesRep)
	case "daily":
		buckets = services.CalculateDailyKPIs(customers, salesRep)
	default:
		buckets = services.CalculateMonthlyKPIs(customers, salesRep)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Trend calculated", "data": buckets})
}

type targetAchievement struct {
	SalesRep        string  `json:"salesRep"`
	Target          int     `json:"target"`
	Sales           int     `json:"sales"`
	AchievementRate float64 `json:"achievementRate"`
}

// GetTargets compares per-rep sales against the prorated monthly targets.
func (c *DashboardController) GetTargets(ctx *fiber.Ctx) error {
	periodType, customRange := periodFromQuery(ctx)
	ref := referenceDate()
	filtered := services.FilterByPeriod(c.Repo.All(), periodType, customRange, ref)

	achievements := []targetAchievement{}
	for _, rep := range services.GetSalesReps(filtered) {
		kpi := services.CalculateKPIsBySalesRep(filtered, rep)
		target := services.CalculateTargetUnits(services.SalesTargets[rep], periodType, customRange, ref)
		achievements = append(achievements, targetAchievement{
			SalesRep:        rep,
			Target:          target,
			Sales:           kpi.Sales,
			AchievementRate: achievementRate(kpi.Sales, target),
		})
	}

	companyKPI := services.CalculateCompanyKPIs(filtered)
	companyTarget := services.CalculateTargetUnits(services.CompanyTarget, periodType, customRange, ref)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Targets calculated",
		"data": fiber.Map{
			"company": targetAchievement{
				SalesRep:        services.CompanyLabel,
				Target:          companyTarget,
				Sales:           companyKPI.Sales,
				AchievementRate: achievementRate(companyKPI.Sales, companyTarget),
			},
			"salesReps": achievements,
		},
	})
}

func achievementRate(sales, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(sales) / float64(target) * 100
}

// ExportReport streams the KPI table of the requested period as an .xlsx
// download.
func (c *DashboardController) ExportReport(ctx *fiber.Ctx) error {
	filtered := c.filteredCustomers(ctx)

	rows := append(services.CalculateAllSalesRepsKPIs(filtered), services.CalculateCompanyKPIs(filtered))

	f := excelize.NewFile()
	defer f.Close()

	sheet := "KPI Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Sales Rep", "Deals", "Closed", "Close Rate (%)", "Sales",
		"Instant Close Rate (%)", "Loan Rate (%)", "Trade-in Rate (%)",
		"Options per Close", "LINE Exchange Rate (%)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, kpi := range rows {
		values := []interface{}{kpi.SalesRep, kpi.DealCount, kpi.CloseCount, kpi.CloseRate,
			kpi.Sales, kpi.InstantCloseRate, kpi.LoanRate, kpi.TradeInRate,
			kpi.OptionAttachRate, kpi.LineExchangeRate}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kpi_report_%s.xlsx"`, utils.Today()))

	return f.Write(ctx.Response().BodyWriter())
}
