package exams

import (
	"testing"

	"campus-backend/models"
	examapimodels "campus-backend/models/api/exam"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		percent float64
		grade   string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{75, "B"},
		{65, "C"},
		{55, "D"},
		{45, "E"},
		{39.9, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.grade, gradeFor(tc.percent), "percent %v", tc.percent)
	}
}

func TestResultDataValidate(t *testing.T) {
	valid := examapimodels.ResultData{
		StudentID:     "student-1",
		SubjectName:   "Algorithms",
		ExamType:      "MIDTERM",
		ObtainedMarks: 72,
		MaxMarks:      100,
	}

	t.Run("valid payload passes", func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run("marks above the maximum fail", func(t *testing.T) {
		data := valid
		data.ObtainedMarks = 120
		err := data.Validate()
		require.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("negative marks fail", func(t *testing.T) {
		data := valid
		data.ObtainedMarks = -1
		require.NotNil(t, data.Validate())
	})

	t.Run("zero max marks fail", func(t *testing.T) {
		data := valid
		data.MaxMarks = 0
		require.NotNil(t, data.Validate())
	})
}
