package domain

import (
	"fmt"
	"time"
)

// WindowKind define o tipo de período de um relatório
type WindowKind string

const (
	// WindowWeek é a última semana de negócio completa (sexta a quinta)
	WindowWeek WindowKind = "week"
	// WindowCurrentWeek é a semana de negócio em andamento que contém a data de referência
	WindowCurrentWeek WindowKind = "current_week"
	// WindowMonth vai do dia 1 do mês até a data de referência
	WindowMonth WindowKind = "month"
	// WindowYear vai de 1º de janeiro até a data de referência
	WindowYear WindowKind = "year"
)

var windowLabels = map[WindowKind]string{
	WindowWeek:        "上周",
	WindowCurrentWeek: "本周",
	WindowMonth:       "本月",
	WindowYear:        "本年",
}

// ParseWindowKind valida o tipo de período recebido pela API ou CLI
func ParseWindowKind(value string) (WindowKind, error) {
	kind := WindowKind(value)
	if _, ok := windowLabels[kind]; !ok {
		return "", fmt.Errorf("tipo de período inválido: %q (aceitos: week, current_week, month, year)", value)
	}
	return kind, nil
}

// Label retorna o rótulo exibido para o tipo de período
func (k WindowKind) Label() string {
	return windowLabels[k]
}

// ReportWindow é um intervalo de datas fechado [Start, End]
type ReportWindow struct {
	Kind  WindowKind `json:"kind"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Label string     `json:"label"`
}

// Contains verifica se a data está dentro do período, inclusive nas pontas
func (w ReportWindow) Contains(date time.Time) bool {
	date = NormalizeDate(date)
	return !date.Before(w.Start) && !date.After(w.End)
}

// Days retorna a quantidade de dias do período
func (w ReportWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Totals é a soma das métricas dentro de um período.
// Entries conta os registros somados, para diferenciar "sem dados" de "tudo zero".
type Totals struct {
	Entries              int `json:"entries"`
	RoutineCTPatients    int `json:"routine_ct_patients"`
	RoutineCTSites       int `json:"routine_ct_sites"`
	RoutineDRPatients    int `json:"routine_dr_patients"`
	RoutineDRSites       int `json:"routine_dr_sites"`
	ExamCTSites          int `json:"exam_ct_sites"`
	ExamDRSites          int `json:"exam_dr_sites"`
	ExamFluoroscopySites int `json:"exam_fluoroscopy_sites"`
}

func (t Totals) HasData() bool {
	return t.Entries > 0
}

// Add acumula um registro nos totais
func (t *Totals) Add(entry WorkloadEntry) {
	t.Entries++
	t.RoutineCTPatients += entry.RoutineCTPatients
	t.RoutineCTSites += entry.RoutineCTSites
	t.RoutineDRPatients += entry.RoutineDRPatients
	t.RoutineDRSites += entry.RoutineDRSites
	t.ExamCTSites += entry.ExamCTSites
	t.ExamDRSites += entry.ExamDRSites
	t.ExamFluoroscopySites += entry.ExamFluoroscopySites
}

// Merge soma dois totais
func (t Totals) Merge(other Totals) Totals {
	return Totals{
		Entries:              t.Entries + other.Entries,
		RoutineCTPatients:    t.RoutineCTPatients + other.RoutineCTPatients,
		RoutineCTSites:       t.RoutineCTSites + other.RoutineCTSites,
		RoutineDRPatients:    t.RoutineDRPatients + other.RoutineDRPatients,
		RoutineDRSites:       t.RoutineDRSites + other.RoutineDRSites,
		ExamCTSites:          t.ExamCTSites + other.ExamCTSites,
		ExamDRSites:          t.ExamDRSites + other.ExamDRSites,
		ExamFluoroscopySites: t.ExamFluoroscopySites + other.ExamFluoroscopySites,
	}
}

// Report é o relatório gerado para um período
type Report struct {
	Window      ReportWindow       `json:"window"`
	Totals      Totals             `json:"totals"`
	HasData     bool               `json:"has_data"`
	Text        string             `json:"text,omitempty"`
	Message     string             `json:"message,omitempty"`
	Diagnostics []SourceDiagnostic `json:"diagnostics,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// ArchivedReport é um relatório semanal persistido pelo agendador
type ArchivedReport struct {
	ID        string     `json:"id"`
	Kind      WindowKind `json:"kind"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Totals    Totals     `json:"totals"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"created_at"`
}

// TrendPoint é um ponto diário da tendência do mês
type TrendPoint struct {
	Date           time.Time `json:"date"`
	RoutineCTSites int       `json:"routine_ct_sites"`
	RoutineDRSites int       `json:"routine_dr_sites"`
}
