package domain

// RuleFinding representa o resultado de uma única regra aplicada a um registro.
// Consumido imediatamente pela etapa de merge; não é persistido.
type RuleFinding struct {
	Rule     string   `json:"rule"`     // Identificador da regra (ex: R1.2, R2.3)
	Severity Severity `json:"severity"` // Severidade atribuída pela regra
	Basis    float64  `json:"basis"`    // Percentual que disparou a regra
	Message  string   `json:"message"`  // Mensagem legível da violação
}

// RowVerdict representa um registro de vendas com a severidade final consolidada
type RowVerdict struct {
	Record         SalesRecord   `json:"record"`
	Severity       Severity      `json:"status"`
	Findings       []RuleFinding `json:"violations,omitempty"`
	Reason         string        `json:"reason"`
	AdjustmentNote string        `json:"adjustment_note,omitempty"`
}
