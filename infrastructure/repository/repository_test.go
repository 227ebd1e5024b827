package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

func TestBuildSelectEntries(t *testing.T) {
	query, args, err := buildSelectEntries()

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.True(t, strings.HasPrefix(query, "SELECT business_date, routine_ct_patients"))
	assert.Contains(t, query, "FROM workload_entries")
	assert.True(t, strings.HasSuffix(query, "ORDER BY submitted_at ASC, created_at ASC"))
}

func TestBuildInsertEntry(t *testing.T) {
	submittedAt := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	entry := domain.WorkloadEntry{
		BusinessDate:         time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		RoutineCTPatients:    12,
		RoutineCTSites:       20,
		RoutineDRPatients:    8,
		RoutineDRSites:       15,
		ExamCTSites:          3,
		ExamDRSites:          4,
		ExamFluoroscopySites: 2,
	}

	query, args, err := buildInsertEntry("abc123", entry, submittedAt)

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO workload_entries (id,business_date,")
	assert.Contains(t, query, "$10")
	assert.Equal(t, []any{"abc123", "2024-05-10", 12, 20, 8, 15, 3, 4, 2, submittedAt}, args)
}

func TestBuildUpsertReport(t *testing.T) {
	report := &domain.ArchivedReport{
		ID:        "r1",
		Kind:      domain.WindowWeek,
		StartDate: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
		Text:      "texto",
	}

	query, args, err := buildUpsertReport(report, []byte(`{"entries":1}`))

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO workload_reports")
	assert.Contains(t, query, "ON CONFLICT (kind, start_date, end_date) DO UPDATE")
	require.Len(t, args, 7)
	assert.Equal(t, "week", args[1])
	assert.Equal(t, "2024-05-10", args[2])
	assert.Equal(t, "2024-05-16", args[3])
	assert.Equal(t, `{"entries":1}`, args[4])
}

func TestBuildListReports(t *testing.T) {
	query, _, err := buildListReports(0)
	require.NoError(t, err)
	assert.Contains(t, query, "FROM workload_reports wr")
	assert.Contains(t, query, "ORDER BY wr.start_date DESC LIMIT 20")

	query, _, err = buildListReports(5)
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 5")
}

func TestWorkloadEntryRepository_Identity(t *testing.T) {
	repo := NewWorkloadEntryRepository(nil)

	assert.Equal(t, "postgres", repo.Name())
	assert.Equal(t, "postgres", repo.TargetName())
	assert.True(t, repo.Schema().HasSubmissionTimestamp())
}
