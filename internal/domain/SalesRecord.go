package domain

import "time"

// SalesRecord representa uma observação de vendas de um par região-produto em uma data.
// Imutável após o carregamento do snapshot.
type SalesRecord struct {
	Date             time.Time `json:"date"`
	Region           string    `json:"region"`
	Product          string    `json:"product"`
	TotalSales       float64   `json:"total_sales"`
	TargetDaily      float64   `json:"target_daily"`
	SalesYesterday   float64   `json:"sales_yesterday"`
	Avg7dSales       float64   `json:"avg_7d_sales"`
	DeltaVsYesterday float64   `json:"delta_vs_yesterday"`
	DeltaVsTarget    float64   `json:"delta_vs_target"`
	DayName          string    `json:"day_name"`
	IsWeekend        bool      `json:"is_weekend"`
}

// Pair retorna o identificador do par região-produto, usado em logs e relatórios
func (r SalesRecord) Pair() string {
	return r.Region + " - " + r.Product
}
