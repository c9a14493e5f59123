package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatBRL formata um valor monetário no padrão brasileiro, sem centavos
// (ex: 1234567.89 -> "R$ 1.234.568")
func FormatBRL(value float64) string {
	rounded := int64(math.Round(value))

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)

	// Insere o separador de milhar a cada três dígitos
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	if negative {
		return "R$ -" + string(out)
	}
	return "R$ " + string(out)
}

// FormatSignedPercent formata um percentual com sinal explícito e uma casa decimal
// (ex: 5.04 -> "+5.0%", -10.26 -> "-10.3%")
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// FormatPercent formata um percentual com uma casa decimal, sem sinal explícito
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
