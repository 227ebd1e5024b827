package submitting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
)

type Service struct {
	appender    Appender
	invalidator reconciling.LedgerInvalidator
	timeout     time.Duration
	metrics     *metrics.Registry
	now         func() time.Time
}

func NewService(appender Appender, invalidator reconciling.LedgerInvalidator, timeout time.Duration, m *metrics.Registry) Submitter {
	return &Service{
		appender:    appender,
		invalidator: invalidator,
		timeout:     timeout,
		metrics:     m,
		now:         time.Now,
	}
}

// Submit grava o lançamento no destino configurado e invalida o cache do livro.
// Falhas não são repetidas: quem lançou deve reenviar.
func (s *Service) Submit(ctx context.Context, submission domain.EntrySubmission) (*domain.SubmissionResult, error) {
	entry, err := buildEntry(submission)
	if err != nil {
		return nil, err
	}

	if s.appender == nil {
		return nil, NewSubmissionError(ErrTargetDisabled, apiErrors.ErrServiceDisabled, "", "")
	}

	target := s.appender.TargetName()
	submittedAt := s.now().UTC()
	entry.SubmittedAt = &submittedAt

	appendCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		appendCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err = s.appender.AppendEntry(appendCtx, entry)
	s.metrics.ObserveSubmission(target, err)

	logger := logrus.WithFields(logrus.Fields{
		"target": target,
		"date":   entry.BusinessDate.Format(time.DateOnly),
	})

	if err != nil {
		logger.WithError(err).Error("Erro ao gravar lançamento diário")
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(appendCtx.Err(), context.DeadlineExceeded) {
			return nil, NewSubmissionError(ErrAppendTimeout, apiErrors.ErrSubmissionTimeout, target, err.Error())
		}
		return nil, NewSubmissionError(ErrAppendFailed, apiErrors.ErrSubmissionFailed, target, err.Error())
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	logger.Info("Lançamento diário gravado")

	return &domain.SubmissionResult{Entry: entry, Target: target}, nil
}

func buildEntry(submission domain.EntrySubmission) (domain.WorkloadEntry, error) {
	var entry domain.WorkloadEntry

	if submission.Date == "" {
		return entry, NewSubmissionError(ErrMissingDate, apiErrors.ErrMissingRequiredData, "", "")
	}

	date, ok := utils.ParseLooseDate(submission.Date)
	if !ok {
		return entry, NewSubmissionError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "", submission.Date)
	}

	entry = domain.WorkloadEntry{
		BusinessDate:         domain.NormalizeDate(date),
		RoutineCTPatients:    submission.RoutineCTPatients,
		RoutineCTSites:       submission.RoutineCTSites,
		RoutineDRPatients:    submission.RoutineDRPatients,
		RoutineDRSites:       submission.RoutineDRSites,
		ExamCTSites:          submission.ExamCTSites,
		ExamDRSites:          submission.ExamDRSites,
		ExamFluoroscopySites: submission.ExamFluoroscopySites,
	}

	for _, role := range domain.MetricRoles {
		if entry.Value(role) < 0 {
			return entry, NewSubmissionError(ErrNegativeCount, apiErrors.ErrInvalidFormat, "", domain.CanonicalColumns[role])
		}
	}

	return entry, nil
}
