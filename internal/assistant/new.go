package assistant

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"life-admin/internal/checklist"
	"life-admin/pkg/datemath"
	"life-admin/pkg/gemini"
	pkgLog "life-admin/pkg/log"
)

// Assistant is the AI boundary: every response is checked against its
// contract before it leaves this package.
type Assistant interface {
	// ExtractTasks turns free text or a voice note into task candidates.
	ExtractTasks(ctx context.Context, input ExtractInput) ([]Candidate, error)

	// GenerateChecklist proposes up to MaxChecklistItems steps for a task.
	GenerateChecklist(ctx context.Context, input ChecklistInput) ([]checklist.Suggestion, error)

	// Ask answers a question about the given tasks.
	Ask(ctx context.Context, input AskInput) (string, error)
}

type implAssistant struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	limiter  *rate.Limiter
	cache    *expirable.LRU[string, []checklist.Suggestion]
	validate *validator.Validate
}

var _ Assistant = (*implAssistant)(nil)

// New creates an Assistant backed by llm.
func New(l pkgLog.Logger, llm gemini.IGemini, cfg Config) Assistant {
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = DefaultRequestsPerMin
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	return &implAssistant{
		l:        l,
		llm:      llm,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMin)), min(cfg.RequestsPerMin, DefaultBurst)),
		cache:    expirable.NewLRU[string, []checklist.Suggestion](cfg.CacheSize, nil, cfg.CacheTTL),
		validate: newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		return datemath.ValidDate(fl.Field().String())
	})
	return v
}
