package dbmodels

import (
	"testing"

	"campus-backend/models"

	"github.com/stretchr/testify/require"
)

func stagesReq(statuses ...models.ApprovalStatus) OutpassRequest {
	rec := OutpassRequest{Status: models.OutpassStatusPending}
	for idx, status := range statuses {
		rec.ApprovalStages = append(rec.ApprovalStages, OutpassApproval{
			Stage:  idx + 1,
			Status: status,
		})
	}
	return rec
}

func TestDeriveStatus(t *testing.T) {
	t.Run("all stages pending keeps the request pending", func(t *testing.T) {
		rec := stagesReq(models.AStatusPending, models.AStatusPending)
		require.Equal(t, models.OutpassStatusPending, rec.DeriveStatus())
	})

	t.Run("partial approval keeps the request pending", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusPending)
		require.Equal(t, models.OutpassStatusPending, rec.DeriveStatus())
	})

	t.Run("full approval approves the request", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusApproved)
		require.Equal(t, models.OutpassStatusApproved, rec.DeriveStatus())
	})

	t.Run("any rejection rejects the request", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusRejected)
		require.Equal(t, models.OutpassStatusRejected, rec.DeriveStatus())
	})

	t.Run("expired and cancelled are kept as is", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusApproved)
		rec.Status = models.OutpassStatusExpired
		require.Equal(t, models.OutpassStatusExpired, rec.DeriveStatus())

		rec.Status = models.OutpassStatusCancelled
		require.Equal(t, models.OutpassStatusCancelled, rec.DeriveStatus())
	})

	t.Run("no stages never approves", func(t *testing.T) {
		rec := OutpassRequest{Status: models.OutpassStatusPending}
		require.Equal(t, models.OutpassStatusPending, rec.DeriveStatus())
	})
}

func TestGetCurrentApprovalStage(t *testing.T) {
	t.Run("first undecided stage is current", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusPending)
		isLast, stage := rec.GetCurrentApprovalStage()
		require.NotNil(t, stage)
		require.Equal(t, 2, stage.Stage)
		require.True(t, isLast)
	})

	t.Run("fully decided chain has no current stage", func(t *testing.T) {
		rec := stagesReq(models.AStatusApproved, models.AStatusApproved)
		_, stage := rec.GetCurrentApprovalStage()
		require.Nil(t, stage)
	})

	t.Run("first of two pending stages is not last", func(t *testing.T) {
		rec := stagesReq(models.AStatusPending, models.AStatusPending)
		isLast, stage := rec.GetCurrentApprovalStage()
		require.NotNil(t, stage)
		require.Equal(t, 1, stage.Stage)
		require.False(t, isLast)
	})
}
