package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ToCount converte um valor bruto de planilha em contagem inteira.
// Vazio e NaN valem zero; frações são truncadas. Negativos são mantidos como vieram.
func ToCount(value any) (int, error) {
	var amount decimal.Decimal

	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int32:
		amount = decimal.NewFromInt32(v)
	case int64:
		amount = decimal.NewFromInt(v)
	case float32:
		return ToCount(float64(v))
	case float64:
		if math.IsNaN(v) {
			return 0, nil
		}
		if math.IsInf(v, 0) {
			return 0, fmt.Errorf("valor infinito")
		}
		amount = decimal.NewFromFloat(v)
	case json.Number:
		return ToCount(v.String())
	case string:
		text := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if text == "" || strings.EqualFold(text, "nan") {
			return 0, nil
		}
		parsed, err := decimal.NewFromString(text)
		if err != nil {
			return 0, fmt.Errorf("valor numérico inválido %q: %w", v, err)
		}
		amount = parsed
	default:
		return 0, fmt.Errorf("tipo numérico não suportado: %T", value)
	}

	return int(amount.Truncate(0).IntPart()), nil
}
