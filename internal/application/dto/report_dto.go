package dto

import "github.com/shopspring/decimal"

// SuggestionResponse respuesta de GET /api/suggestion/:foodId.
type SuggestionResponse struct {
	FoodID            string          `json:"food_id"`
	FoodName          string          `json:"food_name"`
	SufficientData    bool            `json:"sufficient_data"`
	SampleDays        int             `json:"sample_days"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"`
	SalesVariability  decimal.Decimal `json:"sales_variability"` // coeficiente de variación acotado
	WasteFraction     decimal.Decimal `json:"waste_fraction"`
	SuggestedQuantity int             `json:"suggested_quantity"`
	Message           string          `json:"message,omitempty"`
}

// WeeklySummaryItem agregado semanal por alimento.
type WeeklySummaryItem struct {
	FoodID            string          `json:"food_id"`
	FoodName          string          `json:"food_name"`
	TotalPrepared     int             `json:"total_prepared"`
	TotalSold         int             `json:"total_sold"`
	TotalWasted       int             `json:"total_wasted"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalWasteValue   decimal.Decimal `json:"total_waste_value"`
	WastagePercentage decimal.Decimal `json:"wastage_percentage"`
}

// WeeklySummaryResponse respuesta de GET /api/weekly_summary.
type WeeklySummaryResponse struct {
	WeekStart         string              `json:"week_start"`
	WeekEnd           string              `json:"week_end"`
	Items             []WeeklySummaryItem `json:"items"`
	TotalCost         decimal.Decimal     `json:"total_cost"`
	TotalRevenue      decimal.Decimal     `json:"total_revenue"`
	TotalWasteValue   decimal.Decimal     `json:"total_waste_value"`
	GrossResult       decimal.Decimal     `json:"gross_result"` // ingresos - costo
	WastagePercentage decimal.Decimal     `json:"wastage_percentage"`
}

// DashboardResponse respuesta de GET /api/dashboard: el día de hoy de un vistazo.
type DashboardResponse struct {
	Date              string          `json:"date"`
	TotalPrepared     int             `json:"total_prepared"`
	TotalSold         int             `json:"total_sold"`
	TotalWasted       int             `json:"total_wasted"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalWasteValue   decimal.Decimal `json:"total_waste_value"`
	WastagePercentage decimal.Decimal `json:"wastage_percentage"`
	UnresolvedAlerts  int             `json:"unresolved_alerts"`
}
