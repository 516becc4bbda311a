package outpasspolicy

import (
	"time"

	"campus-backend/models"
)

// Provider decides which approval stages a leave window needs. The warden
// gate is always present; the HOD gate is added for overnight leave or any
// window longer than the configured threshold.
type Provider interface {
	RequiredStages(from, to time.Time) []models.StageRole
	HodRequired(from, to time.Time) bool
}

func NewInstance(hodWindow time.Duration) Provider {
	return &impl{
		hodWindow: hodWindow,
	}
}

type impl struct {
	hodWindow time.Duration
}

func (i impl) HodRequired(from, to time.Time) bool {
	if to.Sub(from) > i.hodWindow {
		return true
	}
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

func (i impl) RequiredStages(from, to time.Time) []models.StageRole {
	stages := []models.StageRole{models.StageWarden}
	if i.HodRequired(from, to) {
		stages = append(stages, models.StageHod)
	}
	return stages
}
