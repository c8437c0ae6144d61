package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"life-admin/internal/model"
	"life-admin/internal/task"
	"life-admin/internal/task/codec"
)

// refetch reads the full list from the store and applies it to the snapshot.
// A stale result is dropped in favour of the newer snapshot.
func (uc *implUseCase) refetch(ctx context.Context) ([]task.Task, error) {
	ticket := uc.snap.ticket()

	records, err := uc.repo.ListRecords(ctx)
	if err != nil {
		if errors.Is(err, task.ErrUnauthorized) {
			uc.snap.reset()
		}
		uc.l.Errorf(ctx, "refetch: %v", err)
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	tasks := codec.DecodeAll(records)
	if !uc.snap.apply(ticket, tasks) {
		uc.l.Debugf(ctx, "refetch: dropping stale result for ticket %d", ticket)
		latest, _ := uc.snap.all()
		return latest, nil
	}
	return tasks, nil
}

// lookup finds a task in the latest snapshot, fetching the list when it is
// empty or does not contain id.
func (uc *implUseCase) lookup(ctx context.Context, id string) (task.Task, error) {
	if t, ok := uc.snap.find(id); ok {
		return t, nil
	}

	tasks, err := uc.refetch(ctx)
	if err != nil {
		return task.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

// save persists the full payload of t and returns the task as re-read from the store.
func (uc *implUseCase) save(ctx context.Context, t task.Task) (task.Task, error) {
	rec, err := uc.repo.UpdateRecord(ctx, t.ID, codec.Encode(t))
	if err != nil {
		if errors.Is(err, task.ErrUnauthorized) {
			uc.snap.reset()
		}
		return task.Task{}, fmt.Errorf("failed to update task %s: %w", t.ID, err)
	}
	return uc.confirmed(ctx, rec), nil
}

// confirmed refetches after a write and returns the stored version of rec.
// A failed refetch is logged; the write itself already succeeded.
func (uc *implUseCase) confirmed(ctx context.Context, rec model.Record) task.Task {
	id := strconv.FormatInt(rec.ID, 10)

	tasks, err := uc.refetch(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "confirmed: refetch after write failed: %v", err)
		return codec.Decode(rec)
	}
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return codec.Decode(rec)
}
