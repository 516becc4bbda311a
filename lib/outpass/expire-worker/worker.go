package expireworker

import (
	"context"
	"time"

	"campus-backend/config"
	"campus-backend/lib/outpass"
	baseworker "campus-backend/lib/utils/base-worker"
)

// StartWorker runs the periodic expiry sweep over pending out-pass
// requests whose leave window already ended.
func StartWorker(ctx context.Context) {
	i := impl{
		BaseImpl: *baseworker.NewInstance(
			"OutpassExpire",
			time.Minute,
			time.Duration(config.Conf.Outpass.ExpireRunPeriodMin)*time.Minute,
		),
		handler: outpass.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	handler outpass.Provider
}

func (i impl) handle(ctx context.Context) {
	count, err := i.handler.ExpireOverdue(time.Now())
	if err != nil {
		i.GetLogger().WithError(err).Error("out-pass expiry sweep failed")
		return
	}
	if count > 0 {
		i.GetLogger().WithField("expired_count", count).Info("overdue out-pass requests expired")
	}
}
