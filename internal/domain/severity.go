// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Severity representa o nível de criticidade de uma avaliação
type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Ordem total das severidades: OK < WARNING < CRITICAL
var severityRank = map[Severity]int{
	SeverityOK:       0,
	SeverityWarning:  1,
	SeverityCritical: 2,
}

// Rank retorna a posição da severidade na ordem total
func (s Severity) Rank() int {
	return severityRank[s]
}

// MaxSeverity retorna a severidade mais alta entre as duas
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// IsValid verifica se o valor é uma severidade conhecida
func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}
