package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/clients/anthropic"
	"github.com/venturepath/venturepath-backend/internal/prompts"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/repos/testutil"
	"github.com/venturepath/venturepath-backend/internal/types"
)

// fakeAI scripts the model: each Generate call pops the next step.
type fakeAI struct {
	mu    sync.Mutex
	steps []fakeStep
	calls int
}

type fakeStep struct {
	text string
	err  error
}

func (f *fakeAI) respond(text string) *fakeAI {
	f.steps = append(f.steps, fakeStep{text: text})
	return f
}

func (f *fakeAI) fail(err error) *fakeAI {
	f.steps = append(f.steps, fakeStep{err: err})
	return f
}

func (f *fakeAI) Generate(_ context.Context, _, _ string, _ anthropic.GenerateOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls >= len(f.steps) {
		return "", nil
	}
	step := f.steps[f.calls]
	f.calls++
	return step.text, step.err
}

type deps struct {
	db             *gorm.DB
	planRepo       repos.PlanRepo
	progressRepo   repos.QuestionnaireProgressRepo
	refinementRepo repos.RefinementRepo
	milestoneRepo  repos.MilestoneRepo
	checkInRepo    repos.CheckInRepo
	reminderRepo   repos.ReminderRepo
}

func newDeps(t *testing.T) *deps {
	t.Helper()
	gdb := testutil.DB(t)
	logg := testutil.Logger(t)
	return &deps{
		db:             gdb,
		planRepo:       repos.NewPlanRepo(gdb, logg),
		progressRepo:   repos.NewQuestionnaireProgressRepo(gdb, logg),
		refinementRepo: repos.NewRefinementRepo(gdb, logg),
		milestoneRepo:  repos.NewMilestoneRepo(gdb, logg),
		checkInRepo:    repos.NewCheckInRepo(gdb, logg),
		reminderRepo:   repos.NewReminderRepo(gdb, logg),
	}
}

func (d *deps) seedPlan(t *testing.T, userID uuid.UUID, planType, status string, mutate func(*types.Plan)) *types.Plan {
	t.Helper()
	plan := &types.Plan{
		ID:       uuid.New(),
		UserID:   userID,
		PlanType: planType,
		Status:   status,
	}
	if mutate != nil {
		mutate(plan)
	}
	_, err := d.planRepo.Create(context.Background(), nil, []*types.Plan{plan})
	require.NoError(t, err)
	return plan
}

func fullSectionContent(t *testing.T, planType string) (map[string]string, string) {
	t.Helper()
	content := map[string]string{}
	for _, section := range prompts.SectionsForPlanType(planType) {
		content[section.Key] = "## " + section.Title + "\n\nGenerated guidance for " + section.Key + "."
	}
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	return content, string(raw)
}
