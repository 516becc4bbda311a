package overdueworker

import (
	"context"
	"time"

	"campus-backend/lib/library"
	baseworker "campus-backend/lib/utils/base-worker"
)

// StartWorker flags issued loans whose due date has passed.
func StartWorker(ctx context.Context) {
	i := impl{
		BaseImpl: *baseworker.NewInstance(
			"LibraryOverdue",
			time.Minute,
			time.Hour,
		),
		handler: library.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	handler library.Provider
}

func (i impl) handle(ctx context.Context) {
	_, err := i.handler.MarkOverdue(time.Now())
	if err != nil {
		i.GetLogger().WithError(err).Error("overdue loan sweep failed")
	}
}
