package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// ComputeWindow calcula o período de um relatório a partir da data de referência.
//
// A semana de negócio vai de sexta a quinta. Uma sexta-feira já abre uma nova semana,
// então "week" (a última semana completa) termina na quinta anterior à semana corrente.
func ComputeWindow(reference time.Time, kind domain.WindowKind) (domain.ReportWindow, error) {
	ref := domain.NormalizeDate(reference)
	window := domain.ReportWindow{Kind: kind, Label: kind.Label()}

	switch kind {
	case domain.WindowCurrentWeek, domain.WindowWeek:
		daysSinceFriday := (int(ref.Weekday()) - int(time.Friday) + 7) % 7
		window.Start = ref.AddDate(0, 0, -daysSinceFriday)
		window.End = window.Start.AddDate(0, 0, 6)
		if kind == domain.WindowWeek {
			window.Start = window.Start.AddDate(0, 0, -7)
			window.End = window.End.AddDate(0, 0, -7)
		}
	case domain.WindowMonth:
		window.Start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		window.End = ref
	case domain.WindowYear:
		window.Start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		window.End = ref
	default:
		return domain.ReportWindow{}, fmt.Errorf("tipo de período inválido: %q", kind)
	}

	return window, nil
}

// Aggregate soma as métricas dos registros do livro dentro do período, inclusive nas pontas
func Aggregate(ledger domain.Ledger, window domain.ReportWindow) domain.Totals {
	var totals domain.Totals
	for _, entry := range ledger.Between(window.Start, window.End) {
		totals.Add(entry)
	}
	return totals
}
