package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestService(reader reconciling.LedgerReader, now time.Time) *Service {
	service := NewService(reader, time.UTC, metrics.NewRegistry()).(*Service)
	service.now = func() time.Time { return now }
	return service
}

func snapshotOf(entries ...domain.WorkloadEntry) *reconciling.Snapshot {
	return &reconciling.Snapshot{Ledger: domain.NewLedger(entries)}
}

func TestService_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mocks.NewMockLedgerReader(ctrl)

	// Sexta-feira, 17 de maio de 2024
	friday := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	service := newTestService(mockReader, friday)

	tests := []struct {
		name      string
		kind      domain.WindowKind
		reference *time.Time
		snapshot  *reconciling.Snapshot
		validate  func(t *testing.T, report *domain.Report)
	}{
		{
			name: "Semana anterior com dados gera o texto",
			kind: domain.WindowWeek,
			snapshot: snapshotOf(
				domain.WorkloadEntry{BusinessDate: date(2024, 5, 10), RoutineCTPatients: 12, RoutineCTSites: 20},
				domain.WorkloadEntry{BusinessDate: date(2024, 5, 16), RoutineDRPatients: 8, RoutineDRSites: 15, ExamCTSites: 3, ExamDRSites: 4, ExamFluoroscopySites: 2},
				domain.WorkloadEntry{BusinessDate: date(2024, 5, 17), RoutineCTSites: 99},
			),
			validate: func(t *testing.T, report *domain.Report) {
				assert.True(t, report.HasData)
				assert.Empty(t, report.Message)
				assert.Equal(t, 2, report.Totals.Entries)
				assert.Equal(t, 20, report.Totals.RoutineCTSites)
				assert.Contains(t, report.Text, "2024年05月10日至2024年05月16日")
				assert.Contains(t, report.Text, "CT：12人，20部位")
			},
		},
		{
			name:     "Período vazio retorna mensagem e nenhum texto",
			kind:     domain.WindowWeek,
			snapshot: snapshotOf(domain.WorkloadEntry{BusinessDate: date(2024, 4, 1), RoutineCTSites: 1}),
			validate: func(t *testing.T, report *domain.Report) {
				assert.False(t, report.HasData)
				assert.Empty(t, report.Text)
				assert.Equal(t, "周期 2024-05-10 ~ 2024-05-16 暂无数据录入", report.Message)
			},
		},
		{
			name:     "Período com registros zerados gera relatório zerado",
			kind:     domain.WindowWeek,
			snapshot: snapshotOf(domain.WorkloadEntry{BusinessDate: date(2024, 5, 13)}),
			validate: func(t *testing.T, report *domain.Report) {
				assert.True(t, report.HasData)
				assert.Contains(t, report.Text, "CT：0人，0部位")
			},
		},
		{
			name:      "Data de referência explícita",
			kind:      domain.WindowMonth,
			reference: func() *time.Time { d := date(2024, 4, 20); return &d }(),
			snapshot: snapshotOf(
				domain.WorkloadEntry{BusinessDate: date(2024, 4, 1), ExamCTSites: 2},
				domain.WorkloadEntry{BusinessDate: date(2024, 4, 21), ExamCTSites: 50},
			),
			validate: func(t *testing.T, report *domain.Report) {
				assert.Equal(t, date(2024, 4, 1), report.Window.Start)
				assert.Equal(t, date(2024, 4, 20), report.Window.End)
				assert.Equal(t, 2, report.Totals.ExamCTSites)
			},
		},
		{
			name: "Diagnósticos das origens acompanham o relatório",
			kind: domain.WindowYear,
			snapshot: &reconciling.Snapshot{
				Diagnostics: []domain.SourceDiagnostic{{Source: "seatable", Status: domain.SourceStatusFailed, Error: "timeout"}},
			},
			validate: func(t *testing.T, report *domain.Report) {
				require.Len(t, report.Diagnostics, 1)
				assert.Equal(t, "seatable", report.Diagnostics[0].Source)
				assert.False(t, report.HasData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetOrRebuild(gomock.Any()).Return(tt.snapshot)

			report, err := service.Report(context.Background(), tt.kind, tt.reference)
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_ReportInvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma leitura do livro deve acontecer
	service := newTestService(mocks.NewMockLedgerReader(ctrl), time.Now())

	_, err := service.Report(context.Background(), domain.WindowKind("x"), nil)
	assert.Error(t, err)
}

func TestService_RecentEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := make([]domain.WorkloadEntry, 0)
	for i := 1; i <= 15; i++ {
		entries = append(entries, domain.WorkloadEntry{BusinessDate: date(2024, 5, i), RoutineCTPatients: i})
	}

	mockReader := mocks.NewMockLedgerReader(ctrl)
	mockReader.EXPECT().GetOrRebuild(gomock.Any()).Return(snapshotOf(entries...)).Times(2)

	service := newTestService(mockReader, time.Now())

	recent, err := service.RecentEntries(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recent, DefaultRecentLimit)
	assert.Equal(t, date(2024, 5, 6), recent[0].BusinessDate)
	assert.Equal(t, date(2024, 5, 15), recent[9].BusinessDate)

	recent, err = service.RecentEntries(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestService_MonthTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mocks.NewMockLedgerReader(ctrl)
	mockReader.EXPECT().GetOrRebuild(gomock.Any()).Return(snapshotOf(
		domain.WorkloadEntry{BusinessDate: date(2024, 4, 30), RoutineCTSites: 1},
		domain.WorkloadEntry{BusinessDate: date(2024, 5, 2), RoutineCTSites: 10, RoutineDRSites: 20},
		domain.WorkloadEntry{BusinessDate: date(2024, 5, 3), RoutineCTSites: 11, RoutineDRSites: 21},
		domain.WorkloadEntry{BusinessDate: date(2024, 6, 1), RoutineCTSites: 1},
	))

	service := newTestService(mockReader, time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC))

	points, err := service.MonthTrend(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendPoint{
		{Date: date(2024, 5, 2), RoutineCTSites: 10, RoutineDRSites: 20},
		{Date: date(2024, 5, 3), RoutineCTSites: 11, RoutineDRSites: 21},
	}, points)
}
