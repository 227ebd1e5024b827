package submitting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	reconcilingmocks "github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/submitting/mocks"
	"github.com/vfg2006/radiology-workload-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAppender := mocks.NewMockAppender(ctrl)
	mockInvalidator := reconcilingmocks.NewMockLedgerInvalidator(ctrl)

	now := time.Date(2024, 5, 10, 18, 30, 0, 0, time.UTC)
	service := NewService(mockAppender, mockInvalidator, 50*time.Millisecond, nil).(*Service)
	service.now = func() time.Time { return now }

	tests := []struct {
		name       string
		submission domain.EntrySubmission
		setup      func()
		wantErr    error
		wantCode   string
		validate   func(t *testing.T, result *domain.SubmissionResult)
	}{
		{
			name:       "Envio aceito invalida o cache",
			submission: domain.EntrySubmission{Date: "2024-05-10", RoutineCTPatients: 12, RoutineCTSites: 20, ExamDRSites: 4},
			setup: func() {
				mockAppender.EXPECT().TargetName().Return("seatable")
				mockAppender.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, entry domain.WorkloadEntry) error {
						assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), entry.BusinessDate)
						assert.Equal(t, 12, entry.RoutineCTPatients)
						require.NotNil(t, entry.SubmittedAt)
						assert.Equal(t, now, *entry.SubmittedAt)
						return nil
					})
				mockInvalidator.EXPECT().Invalidate()
			},
			validate: func(t *testing.T, result *domain.SubmissionResult) {
				assert.Equal(t, "seatable", result.Target)
				assert.Equal(t, 20, result.Entry.RoutineCTSites)
				assert.Equal(t, 4, result.Entry.ExamDRSites)
			},
		},
		{
			name:       "Data ausente é rejeitada sem chamada externa",
			submission: domain.EntrySubmission{RoutineCTPatients: 1},
			setup:      func() {},
			wantErr:    ErrMissingDate,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "Data inválida é rejeitada sem chamada externa",
			submission: domain.EntrySubmission{Date: "ontem"},
			setup:      func() {},
			wantErr:    ErrInvalidDate,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Contagem negativa é rejeitada",
			submission: domain.EntrySubmission{Date: "2024-05-10", ExamFluoroscopySites: -2},
			setup:      func() {},
			wantErr:    ErrNegativeCount,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Falha na gravação não invalida o cache",
			submission: domain.EntrySubmission{Date: "2024年5月10日"},
			setup: func() {
				mockAppender.EXPECT().TargetName().Return("postgres")
				mockAppender.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			wantErr:  ErrAppendFailed,
			wantCode: apiErrors.ErrSubmissionFailed,
		},
		{
			name:       "Destino que não responde estoura o tempo limite",
			submission: domain.EntrySubmission{Date: "2024-05-10"},
			setup: func() {
				mockAppender.EXPECT().TargetName().Return("seatable")
				mockAppender.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, entry domain.WorkloadEntry) error {
						<-ctx.Done()
						return ctx.Err()
					})
			},
			wantErr:  ErrAppendTimeout,
			wantCode: apiErrors.ErrSubmissionTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Submit(context.Background(), tt.submission)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var submissionErr *SubmissionError
				require.ErrorAs(t, err, &submissionErr)
				assert.Equal(t, tt.wantCode, submissionErr.Code)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_SubmitWithoutTarget(t *testing.T) {
	service := NewService(nil, nil, time.Second, nil)

	_, err := service.Submit(context.Background(), domain.EntrySubmission{Date: "2024-05-10"})

	assert.ErrorIs(t, err, ErrTargetDisabled)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewSubmissionError(ErrMissingDate, apiErrors.ErrMissingRequiredData, "", "")))
	assert.True(t, IsValidationError(ErrNegativeCount))
	assert.False(t, IsValidationError(NewSubmissionError(ErrAppendFailed, apiErrors.ErrSubmissionFailed, "seatable", "")))
}
