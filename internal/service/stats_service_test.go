package service

import (
	"context"
	"testing"

	"backend/internal/apperror"
	"backend/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructorStats(t *testing.T) {
	repo := &fakeStatsRepo{counts: map[string]int64{
		database.CollCurrentStudents:  12,
		database.CollStudentRequests:  3,
		database.CollApprovedStudents: 7,
		database.CollRejectedStudents: 2,
	}}
	svc := NewStatsService(repo)

	counts, err := svc.InstructorStats(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, len(database.InstructorStatsCollections))
	assert.Equal(t, int64(12), counts[database.CollCurrentStudents])
	assert.Equal(t, int64(3), counts[database.CollStudentRequests])
	assert.NotContains(t, counts, database.CollInstructorRequests)
}

func TestAdminStatsCoversAllCollections(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{counts: map[string]int64{}})

	counts, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, counts, len(database.AllCollections))
}

func TestStatsFailureReturnsNoPartialResult(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{err: assert.AnError})

	counts, err := svc.AdminStats(context.Background())
	require.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	assert.Nil(t, counts)
}
