package app

import (
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/repos"
)

type Repos struct {
	Plan                  repos.PlanRepo
	QuestionnaireProgress repos.QuestionnaireProgressRepo
	Refinement            repos.RefinementRepo
	Milestone             repos.MilestoneRepo
	CheckIn               repos.CheckInRepo
	Reminder              repos.ReminderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Plan:                  repos.NewPlanRepo(db, log),
		QuestionnaireProgress: repos.NewQuestionnaireProgressRepo(db, log),
		Refinement:            repos.NewRefinementRepo(db, log),
		Milestone:             repos.NewMilestoneRepo(db, log),
		CheckIn:               repos.NewCheckInRepo(db, log),
		Reminder:              repos.NewReminderRepo(db, log),
	}
}
