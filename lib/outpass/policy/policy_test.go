package outpasspolicy

import (
	"testing"
	"time"

	"campus-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRequiredStages(t *testing.T) {
	policy := NewInstance(24 * time.Hour)

	t.Run("short same-day leave needs the warden only", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		stages := policy.RequiredStages(from, from.Add(4*time.Hour))
		require.Equal(t, []models.StageRole{models.StageWarden}, stages)
	})

	t.Run("leave longer than the threshold adds the HOD", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		stages := policy.RequiredStages(from, from.Add(25*time.Hour))
		require.Equal(t, []models.StageRole{models.StageWarden, models.StageHod}, stages)
	})

	t.Run("crossing midnight adds the HOD even for a short window", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)
		require.True(t, policy.HodRequired(from, to))
		require.Len(t, policy.RequiredStages(from, to), 2)
	})

	t.Run("window ending exactly at the threshold stays warden-only", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)
		// same calendar day check kicks in before duration does
		require.True(t, policy.HodRequired(from, to))

		from = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		to = time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		require.False(t, policy.HodRequired(from, to))
	})

	t.Run("warden stage always comes first", func(t *testing.T) {
		from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		stages := policy.RequiredStages(from, from.Add(72*time.Hour))
		require.Equal(t, models.StageWarden, stages[0])
	})
}
