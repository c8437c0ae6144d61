package usecase

import (
	"context"
	"fmt"

	"life-admin/internal/task"
)

// Dashboard fetches the full list and classifies it for input.Tab.
func (uc *implUseCase) Dashboard(ctx context.Context, input task.DashboardInput) (task.DashboardOutput, error) {
	tab := input.Tab
	if tab == "" {
		tab = task.TabToday
	}
	if !tab.IsValid() {
		return task.DashboardOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidTab, input.Tab)
	}

	tasks, err := uc.refetch(ctx)
	if err != nil {
		return task.DashboardOutput{}, err
	}

	out := uc.classifier.Dashboard(tasks, tab)
	uc.l.Debugf(ctx, "Dashboard: tab=%s items=%d pending=%d overdue=%d", tab, len(out.Items), out.Counts.Pending, out.Counts.Overdue)
	return out, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]task.Task, error) {
	tasks, err := uc.refetch(ctx)
	if err != nil {
		return nil, err
	}
	return uc.classifier.Sort(tasks), nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (task.Task, error) {
	return uc.lookup(ctx, id)
}
