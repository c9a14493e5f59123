package domain

// InsightReport é o relatório diário em linguagem natural com seus metadados
type InsightReport struct {
	Date    string   `json:"date"`
	DayName string   `json:"day_name"`
	Status  Severity `json:"status"`
	Report  string   `json:"report"`
}
