package app

import (
	"gorm.io/gorm"

	"github.com/registrydata/appointments-backend/internal/pkg/logger"
	"github.com/registrydata/appointments-backend/internal/repos"
)

type Repos struct {
	Appointments repos.AppointmentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Appointments: repos.NewAppointmentRepo(db, log),
	}
}
