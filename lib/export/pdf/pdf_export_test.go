package pdfexport

import (
	"testing"
	"time"

	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func approvedView() outpassapimodels.OutpassView {
	decidedAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	return outpassapimodels.OutpassView{
		ID:                 "req-1",
		StudentName:        "John Carter",
		StudentCode:        "CS-001",
		Course:             "Computer Science",
		RoomNo:             "A-101",
		Purpose:            "Medical appointment",
		Destination:        "City hospital",
		FromDatetime:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		ToDatetime:         time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
		ContactDuringLeave: "+10000000001",
		Status:             models.OutpassStatusApproved,
		StatusName:         "Approved",
		ApprovalStages: []outpassapimodels.ApprovalStageView{
			{Stage: 1, StageRole: models.StageWarden, Status: models.AStatusApproved, DecidedBy: "Head Warden", DecidedAt: &decidedAt},
		},
	}
}

func TestGenerateGatePass(t *testing.T) {
	t.Run("approved request renders a pdf", func(t *testing.T) {
		pdfFile, err := GenerateGatePass("Test University", approvedView())
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})

	t.Run("pending request is refused", func(t *testing.T) {
		view := approvedView()
		view.Status = models.OutpassStatusPending
		_, err := GenerateGatePass("Test University", view)
		require.True(t, errors.Is(err, models.ErrInvalidTransition))
	})
}
