package usecase

import (
	"time"

	"life-admin/internal/assistant"
	"life-admin/internal/checklist"
	"life-admin/internal/task"
	"life-admin/internal/task/repository"
	"life-admin/internal/task/timeline"
	"life-admin/pkg/datemath"
	pkgLog "life-admin/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.RecordRepository
	assistant  assistant.Assistant
	calendar   Calendar
	classifier *timeline.Classifier
	checklist  checklist.Service
	dateMath   *datemath.Parser
	snap       *snapshot

	maxDocumentBytes int
	calendarID       string
	now              func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. calendar may be nil when Google
// Calendar is not configured.
func New(
	l pkgLog.Logger,
	repo repository.RecordRepository,
	ai assistant.Assistant,
	calendar Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) task.UseCase {
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = task.DefaultMaxDocumentBytes
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:                l,
		repo:             repo,
		assistant:        ai,
		calendar:         calendar,
		classifier:       timeline.New(dateMath.Location(), cfg.Now),
		checklist:        checklist.New(),
		dateMath:         dateMath,
		snap:             &snapshot{},
		maxDocumentBytes: cfg.MaxDocumentBytes,
		calendarID:       cfg.CalendarID,
		now:              cfg.Now,
	}
}
