package xlsexport

import (
	"testing"
	"time"

	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportOutpassRegister(t *testing.T) {
	handler := impl{}
	list := []outpassapimodels.OutpassView{
		{
			ID:           "req-1",
			StudentCode:  "CS-001",
			StudentName:  "John Carter",
			Course:       "Computer Science",
			RoomNo:       "A-101",
			Purpose:      "Medical appointment",
			Destination:  "City hospital",
			FromDatetime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			ToDatetime:   time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
			Status:       models.OutpassStatusApproved,
			StatusName:   "Approved",
		},
	}

	buf, err := handler.ExportOutpassRegister(list)
	require.Nil(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Out-pass register")
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Student code", rows[0][0])
	require.Equal(t, "CS-001", rows[1][0])
	require.Equal(t, "Approved", rows[1][len(rows[1])-1])
}
