package domain

import (
	"time"
)

// Nomes das colunas exatamente como a camada de persistência espera
const (
	ColumnBusinessDate         = "日期"
	ColumnRoutineCTPatients    = "常规CT人"
	ColumnRoutineCTSites       = "常规CT部位"
	ColumnRoutineDRPatients    = "常规DR人"
	ColumnRoutineDRSites       = "常规DR部位"
	ColumnExamCTSites          = "查体CT"
	ColumnExamDRSites          = "查体拍片"
	ColumnExamFluoroscopySites = "查体透视"

	// ColumnExamDRSitesLegacy é o nome usado pelas planilhas antigas para 查体拍片
	ColumnExamDRSitesLegacy = "查体DR"
)

// ColumnRole identifica o papel de uma coluna independente do nome usado na origem
type ColumnRole string

const (
	RoleBusinessDate         ColumnRole = "business_date"
	RoleSubmittedAt          ColumnRole = "submitted_at"
	RoleRoutineCTPatients    ColumnRole = "routine_ct_patients"
	RoleRoutineCTSites       ColumnRole = "routine_ct_sites"
	RoleRoutineDRPatients    ColumnRole = "routine_dr_patients"
	RoleRoutineDRSites       ColumnRole = "routine_dr_sites"
	RoleExamCTSites          ColumnRole = "exam_ct_sites"
	RoleExamDRSites          ColumnRole = "exam_dr_sites"
	RoleExamFluoroscopySites ColumnRole = "exam_fluoroscopy_sites"
)

// MetricRoles lista as métricas na ordem canônica das colunas
var MetricRoles = []ColumnRole{
	RoleRoutineCTPatients,
	RoleRoutineCTSites,
	RoleRoutineDRPatients,
	RoleRoutineDRSites,
	RoleExamCTSites,
	RoleExamDRSites,
	RoleExamFluoroscopySites,
}

// CanonicalColumns mapeia cada papel para o nome de coluna canônico
var CanonicalColumns = map[ColumnRole]string{
	RoleBusinessDate:         ColumnBusinessDate,
	RoleRoutineCTPatients:    ColumnRoutineCTPatients,
	RoleRoutineCTSites:       ColumnRoutineCTSites,
	RoleRoutineDRPatients:    ColumnRoutineDRPatients,
	RoleRoutineDRSites:       ColumnRoutineDRSites,
	RoleExamCTSites:          ColumnExamCTSites,
	RoleExamDRSites:          ColumnExamDRSites,
	RoleExamFluoroscopySites: ColumnExamFluoroscopySites,
}

// WorkloadEntry representa a produção de um dia útil do setor de imagem
type WorkloadEntry struct {
	BusinessDate         time.Time  `json:"business_date"`
	RoutineCTPatients    int        `json:"routine_ct_patients"`
	RoutineCTSites       int        `json:"routine_ct_sites"`
	RoutineDRPatients    int        `json:"routine_dr_patients"`
	RoutineDRSites       int        `json:"routine_dr_sites"`
	ExamCTSites          int        `json:"exam_ct_sites"`
	ExamDRSites          int        `json:"exam_dr_sites"`
	ExamFluoroscopySites int        `json:"exam_fluoroscopy_sites"`
	SubmittedAt          *time.Time `json:"submitted_at,omitempty"`
}

// Value retorna o valor de uma métrica pelo seu papel
func (e WorkloadEntry) Value(role ColumnRole) int {
	switch role {
	case RoleRoutineCTPatients:
		return e.RoutineCTPatients
	case RoleRoutineCTSites:
		return e.RoutineCTSites
	case RoleRoutineDRPatients:
		return e.RoutineDRPatients
	case RoleRoutineDRSites:
		return e.RoutineDRSites
	case RoleExamCTSites:
		return e.ExamCTSites
	case RoleExamDRSites:
		return e.ExamDRSites
	case RoleExamFluoroscopySites:
		return e.ExamFluoroscopySites
	}
	return 0
}

// SetValue altera o valor de uma métrica pelo seu papel
func (e *WorkloadEntry) SetValue(role ColumnRole, value int) {
	switch role {
	case RoleRoutineCTPatients:
		e.RoutineCTPatients = value
	case RoleRoutineCTSites:
		e.RoutineCTSites = value
	case RoleRoutineDRPatients:
		e.RoutineDRPatients = value
	case RoleRoutineDRSites:
		e.RoutineDRSites = value
	case RoleExamCTSites:
		e.ExamCTSites = value
	case RoleExamDRSites:
		e.ExamDRSites = value
	case RoleExamFluoroscopySites:
		e.ExamFluoroscopySites = value
	}
}

// Row converte o registro para o formato de linha gravado nas origens
func (e WorkloadEntry) Row() map[string]any {
	row := map[string]any{
		ColumnBusinessDate: e.BusinessDate.Format(time.DateOnly),
	}
	for _, role := range MetricRoles {
		row[CanonicalColumns[role]] = e.Value(role)
	}
	return row
}

// NormalizeDate descarta hora e fuso mantendo o dia do calendário local da data
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
