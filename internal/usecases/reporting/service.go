package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
)

// DefaultRecentLimit é a quantidade de registros exibidos na listagem padrão
const DefaultRecentLimit = 10

type Service struct {
	ledger   reconciling.LedgerReader
	location *time.Location
	metrics  *metrics.Registry
	now      func() time.Time
}

func NewService(ledger reconciling.LedgerReader, location *time.Location, m *metrics.Registry) Reporter {
	if location == nil {
		location = time.Local
	}
	return &Service{
		ledger:   ledger,
		location: location,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *Service) Report(ctx context.Context, kind domain.WindowKind, reference *time.Time) (*domain.Report, error) {
	window, err := ComputeWindow(s.referenceDate(reference), kind)
	if err != nil {
		return nil, err
	}

	snapshot := s.ledger.GetOrRebuild(ctx)
	totals := Aggregate(snapshot.Ledger, window)

	report := &domain.Report{
		Window:      window,
		Totals:      totals,
		HasData:     totals.HasData(),
		Diagnostics: snapshot.Diagnostics,
		GeneratedAt: s.now(),
	}

	// Período sem registros não é um relatório zerado
	if report.HasData {
		report.Text = RenderReport(totals, window)
	} else {
		report.Message = EmptyWindowMessage(window)
	}

	s.metrics.ObserveReport(string(kind), report.HasData)

	logrus.WithFields(logrus.Fields{
		"kind":     kind,
		"start":    window.Start.Format(time.DateOnly),
		"end":      window.End.Format(time.DateOnly),
		"entries":  totals.Entries,
		"warnings": len(snapshot.Warnings()),
	}).Info("Relatório gerado")

	return report, nil
}

func (s *Service) RecentEntries(ctx context.Context, limit int) ([]domain.WorkloadEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	snapshot := s.ledger.GetOrRebuild(ctx)
	return snapshot.Ledger.Last(limit), nil
}

func (s *Service) MonthTrend(ctx context.Context, reference *time.Time) ([]domain.TrendPoint, error) {
	window, err := ComputeWindow(s.referenceDate(reference), domain.WindowMonth)
	if err != nil {
		return nil, err
	}

	// A tendência cobre o mês inteiro, inclusive registros lançados para dias futuros
	end := window.Start.AddDate(0, 1, -1)

	snapshot := s.ledger.GetOrRebuild(ctx)
	entries := snapshot.Ledger.Between(window.Start, end)

	points := make([]domain.TrendPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, domain.TrendPoint{
			Date:           entry.BusinessDate,
			RoutineCTSites: entry.RoutineCTSites,
			RoutineDRSites: entry.RoutineDRSites,
		})
	}
	return points, nil
}

// referenceDate usa a data informada ou o dia de hoje no fuso do hospital
func (s *Service) referenceDate(reference *time.Time) time.Time {
	if reference != nil {
		return domain.NormalizeDate(*reference)
	}
	return domain.NormalizeDate(s.now().In(s.location))
}
