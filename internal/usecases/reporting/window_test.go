package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		kind      domain.WindowKind
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Quarta-feira fica na semana que começou na sexta anterior",
			reference: date(2024, 5, 15),
			kind:      domain.WindowCurrentWeek,
			wantStart: date(2024, 5, 10),
			wantEnd:   date(2024, 5, 16),
		},
		{
			name:      "Sexta-feira abre uma nova semana",
			reference: date(2024, 5, 17),
			kind:      domain.WindowCurrentWeek,
			wantStart: date(2024, 5, 17),
			wantEnd:   date(2024, 5, 23),
		},
		{
			name:      "Quinta-feira fecha a semana",
			reference: date(2024, 5, 16),
			kind:      domain.WindowCurrentWeek,
			wantStart: date(2024, 5, 10),
			wantEnd:   date(2024, 5, 16),
		},
		{
			name:      "Semana anterior vista de uma sexta-feira",
			reference: date(2024, 5, 17),
			kind:      domain.WindowWeek,
			wantStart: date(2024, 5, 10),
			wantEnd:   date(2024, 5, 16),
		},
		{
			name:      "Semana anterior vista de uma quarta-feira",
			reference: date(2024, 5, 15),
			kind:      domain.WindowWeek,
			wantStart: date(2024, 5, 3),
			wantEnd:   date(2024, 5, 9),
		},
		{
			name:      "Semana anterior atravessando a virada do ano",
			reference: date(2024, 1, 2),
			kind:      domain.WindowWeek,
			wantStart: date(2023, 12, 22),
			wantEnd:   date(2023, 12, 28),
		},
		{
			name:      "Mês até a data de referência",
			reference: date(2024, 2, 29),
			kind:      domain.WindowMonth,
			wantStart: date(2024, 2, 1),
			wantEnd:   date(2024, 2, 29),
		},
		{
			name:      "Ano até a data de referência",
			reference: date(2024, 5, 15),
			kind:      domain.WindowYear,
			wantStart: date(2024, 1, 1),
			wantEnd:   date(2024, 5, 15),
		},
		{
			name:      "Horário da referência é descartado",
			reference: time.Date(2024, 5, 15, 23, 59, 0, 0, time.FixedZone("CST", 8*3600)),
			kind:      domain.WindowMonth,
			wantStart: date(2024, 5, 1),
			wantEnd:   date(2024, 5, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ComputeWindow(tt.reference, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, tt.wantEnd, window.End)
			assert.Equal(t, tt.kind, window.Kind)
			assert.Equal(t, tt.kind.Label(), window.Label)
		})
	}
}

func TestComputeWindow_WeeksAlwaysSpanSevenDaysFromFriday(t *testing.T) {
	reference := date(2024, 1, 1)
	for i := 0; i < 366; i++ {
		for _, kind := range []domain.WindowKind{domain.WindowWeek, domain.WindowCurrentWeek} {
			window, err := ComputeWindow(reference, kind)
			require.NoError(t, err)
			assert.Equal(t, time.Friday, window.Start.Weekday())
			assert.Equal(t, time.Thursday, window.End.Weekday())
			assert.Equal(t, 7, window.Days())
		}

		current, _ := ComputeWindow(reference, domain.WindowCurrentWeek)
		assert.True(t, current.Contains(reference))

		reference = reference.AddDate(0, 0, 1)
	}
}

func TestComputeWindow_InvalidKind(t *testing.T) {
	_, err := ComputeWindow(date(2024, 5, 15), domain.WindowKind("quarter"))
	assert.Error(t, err)
}

func TestAggregate(t *testing.T) {
	ledger := domain.NewLedger([]domain.WorkloadEntry{
		{BusinessDate: date(2024, 5, 9), RoutineCTSites: 100},
		{BusinessDate: date(2024, 5, 10), RoutineCTSites: 5, RoutineDRPatients: 2},
		{BusinessDate: date(2024, 5, 13), RoutineCTSites: 0},
		{BusinessDate: date(2024, 5, 17), RoutineCTSites: 3, RoutineDRPatients: 1},
		{BusinessDate: date(2024, 5, 18), RoutineCTSites: 100},
	})

	tests := []struct {
		name   string
		window domain.ReportWindow
		want   domain.Totals
	}{
		{
			name:   "Soma inclusiva nas duas pontas",
			window: domain.ReportWindow{Start: date(2024, 5, 10), End: date(2024, 5, 17)},
			want:   domain.Totals{Entries: 3, RoutineCTSites: 8, RoutineDRPatients: 3},
		},
		{
			name:   "Período sem registros",
			window: domain.ReportWindow{Start: date(2024, 6, 1), End: date(2024, 6, 7)},
			want:   domain.Totals{},
		},
		{
			name:   "Registro zerado conta como dado",
			window: domain.ReportWindow{Start: date(2024, 5, 13), End: date(2024, 5, 13)},
			want:   domain.Totals{Entries: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(ledger, tt.window))
		})
	}
}

func TestAggregate_PartitionIsAdditive(t *testing.T) {
	entries := make([]domain.WorkloadEntry, 0)
	for i := 0; i < 31; i++ {
		entries = append(entries, domain.WorkloadEntry{
			BusinessDate:         date(2024, 5, 1+i),
			RoutineCTPatients:    i,
			RoutineCTSites:       2 * i,
			RoutineDRPatients:    i % 3,
			RoutineDRSites:       i % 5,
			ExamCTSites:          1,
			ExamDRSites:          i % 2,
			ExamFluoroscopySites: 7,
		})
	}
	ledger := domain.NewLedger(entries)

	whole := Aggregate(ledger, domain.ReportWindow{Start: date(2024, 5, 1), End: date(2024, 5, 31)})

	for _, cut := range []int{1, 9, 15, 30} {
		left := Aggregate(ledger, domain.ReportWindow{Start: date(2024, 5, 1), End: date(2024, 5, cut)})
		right := Aggregate(ledger, domain.ReportWindow{Start: date(2024, 5, cut+1), End: date(2024, 5, 31)})
		assert.Equal(t, whole, left.Merge(right), "corte no dia %d", cut)
	}
}
