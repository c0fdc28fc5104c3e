package service

import (
	"barberia/internal/db"
	"barberia/internal/repository"
)

type ScheduleService struct {
	Repo *repository.ScheduleRepository
}

func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{Repo: repo}
}

func (s *ScheduleService) GetSchedule() db.Schedule {
	return s.Repo.Get()
}

// ReplaceSchedule overwrites the whole document, as the owner panel submits
// the entire form on save.
func (s *ScheduleService) ReplaceSchedule(schedule db.Schedule) {
	s.Repo.Replace(schedule)
}
