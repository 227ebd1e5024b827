package reconciling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func batch(source string, rows ...domain.RawRecord) domain.SourceBatch {
	return domain.SourceBatch{Source: source, Schema: domain.CanonicalSchema(), Rows: rows}
}

func TestReconcile(t *testing.T) {
	formSchema := domain.CanonicalSchema().WithSubmissionTimestamp("时间戳记")

	tests := []struct {
		name     string
		batches  []domain.SourceBatch
		validate func(t *testing.T, ledger domain.Ledger, diagnostics []domain.SourceDiagnostic)
	}{
		{
			name: "Origem de maior prioridade vence na mesma data",
			batches: []domain.SourceBatch{
				batch("manual_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "5"}),
				batch("form_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "9"}),
			},
			validate: func(t *testing.T, ledger domain.Ledger, _ []domain.SourceDiagnostic) {
				require.Equal(t, 1, ledger.Len())
				entry, ok := ledger.Get(day(10))
				require.True(t, ok)
				assert.Equal(t, 9, entry.RoutineCTSites)
			},
		},
		{
			name: "Contagem negativa não derruba a linha da origem de maior prioridade",
			batches: []domain.SourceBatch{
				batch("manual_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "5"}),
				batch("form_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "9", "查体CT": "-1"}),
			},
			validate: func(t *testing.T, ledger domain.Ledger, diagnostics []domain.SourceDiagnostic) {
				entry, ok := ledger.Get(day(10))
				require.True(t, ok)
				assert.Equal(t, 9, entry.RoutineCTSites)
				assert.Equal(t, -1, entry.ExamCTSites)

				require.Len(t, diagnostics, 2)
				assert.Equal(t, 0, diagnostics[1].Dropped)
				assert.Equal(t, 1, diagnostics[1].Accepted)
			},
		},
		{
			name: "Datas diferentes são mantidas e ordenadas",
			batches: []domain.SourceBatch{
				batch("seatable",
					domain.RawRecord{"日期": "2024-05-12", "常规CT人": "3"},
					domain.RawRecord{"日期": "2024-05-10", "常规CT人": "1"},
				),
				batch("form_sheet", domain.RawRecord{"日期": "2024-05-11", "常规CT人": "2"}),
			},
			validate: func(t *testing.T, ledger domain.Ledger, _ []domain.SourceDiagnostic) {
				entries := ledger.Entries()
				require.Len(t, entries, 3)
				assert.Equal(t, day(10), entries[0].BusinessDate)
				assert.Equal(t, day(11), entries[1].BusinessDate)
				assert.Equal(t, day(12), entries[2].BusinessDate)
			},
		},
		{
			name: "Reenvio mais recente vence dentro da mesma origem",
			batches: []domain.SourceBatch{
				{
					Source: "form_sheet",
					Schema: formSchema,
					Rows: []domain.RawRecord{
						{"日期": "2024-05-10", "常规DR部位": "30", "时间戳记": "2024-05-10 20:00:00"},
						{"日期": "2024-05-10", "常规DR部位": "10", "时间戳记": "2024-05-10 09:00:00"},
					},
				},
			},
			validate: func(t *testing.T, ledger domain.Ledger, _ []domain.SourceDiagnostic) {
				entry, ok := ledger.Get(day(10))
				require.True(t, ok)
				assert.Equal(t, 30, entry.RoutineDRSites)
			},
		},
		{
			name: "Sem carimbo vale a ordem das linhas",
			batches: []domain.SourceBatch{
				batch("seatable",
					domain.RawRecord{"日期": "2024-05-10", "查体透视": "1"},
					domain.RawRecord{"日期": "2024-05-10", "查体透视": "2"},
				),
			},
			validate: func(t *testing.T, ledger domain.Ledger, _ []domain.SourceDiagnostic) {
				entry, _ := ledger.Get(day(10))
				assert.Equal(t, 2, entry.ExamFluoroscopySites)
			},
		},
		{
			name: "Linha com data inválida é descartada e contada",
			batches: []domain.SourceBatch{
				batch("manual_sheet",
					domain.RawRecord{"日期": "not-a-date", "常规CT人": "4"},
					domain.RawRecord{"日期": "2024-05-10", "常规CT人": "4"},
				),
			},
			validate: func(t *testing.T, ledger domain.Ledger, diagnostics []domain.SourceDiagnostic) {
				assert.Equal(t, 1, ledger.Len())
				require.Len(t, diagnostics, 1)
				assert.Equal(t, 2, diagnostics[0].Rows)
				assert.Equal(t, 1, diagnostics[0].Accepted)
				assert.Equal(t, 1, diagnostics[0].Dropped)
				assert.Equal(t, domain.SourceStatusOK, diagnostics[0].Status)
			},
		},
		{
			name: "Origem com erro é tratada como vazia e diagnosticada",
			batches: []domain.SourceBatch{
				batch("manual_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "5"}),
				{Source: "seatable", Schema: domain.CanonicalSchema(), Err: errors.New("conexão recusada")},
				batch("form_sheet"),
			},
			validate: func(t *testing.T, ledger domain.Ledger, diagnostics []domain.SourceDiagnostic) {
				entry, ok := ledger.Get(day(10))
				require.True(t, ok)
				assert.Equal(t, 5, entry.RoutineCTSites)

				require.Len(t, diagnostics, 3)
				assert.Equal(t, domain.SourceStatusOK, diagnostics[0].Status)
				assert.Equal(t, domain.SourceStatusFailed, diagnostics[1].Status)
				assert.Equal(t, "conexão recusada", diagnostics[1].Error)
				assert.True(t, IsSourceFailure(diagnostics[1]))
				assert.Equal(t, domain.SourceStatusEmpty, diagnostics[2].Status)
			},
		},
		{
			name:    "Sem origens o livro fica vazio",
			batches: nil,
			validate: func(t *testing.T, ledger domain.Ledger, diagnostics []domain.SourceDiagnostic) {
				assert.True(t, ledger.IsEmpty())
				assert.Empty(t, diagnostics)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, diagnostics := Reconcile(tt.batches)
			tt.validate(t, ledger, diagnostics)
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	batches := []domain.SourceBatch{
		batch("manual_sheet",
			domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "5"},
			domain.RawRecord{"日期": "2024-05-11", "常规CT部位": "6"},
		),
		batch("form_sheet", domain.RawRecord{"日期": "2024-05-10", "常规CT部位": "9"}),
	}

	first, _ := Reconcile(batches)

	// Reconciliar o próprio livro com ele mesmo não altera o resultado
	rows := make([]domain.RawRecord, 0)
	for _, entry := range first.Entries() {
		rows = append(rows, domain.RawRecord(entry.Row()))
	}
	second, _ := Reconcile([]domain.SourceBatch{batch("ledger", rows...), batch("ledger", rows...)})

	assert.Equal(t, first.Entries(), second.Entries())
}

func TestReconcile_UniqueDates(t *testing.T) {
	rows := make([]domain.RawRecord, 0)
	for i := 0; i < 30; i++ {
		rows = append(rows, domain.RawRecord{"日期": day(1 + i%7).Format(time.DateOnly), "常规CT人": i})
	}

	ledger, _ := Reconcile([]domain.SourceBatch{batch("a", rows...), batch("b", rows[:10]...)})

	seen := make(map[time.Time]bool)
	for _, entry := range ledger.Entries() {
		assert.False(t, seen[entry.BusinessDate], "data duplicada %s", entry.BusinessDate)
		seen[entry.BusinessDate] = true
	}
	assert.Equal(t, 7, ledger.Len())

	// A origem b reescreve os dias presentes nas suas 10 linhas
	entry, _ := ledger.Get(day(1))
	assert.Equal(t, 7, entry.RoutineCTPatients)
}
