package initializers

import (
	"context"
	"time"

	"campus-backend/config"
	"campus-backend/fiberlog"
	"campus-backend/lib/analytics"
	"campus-backend/lib/attendance"
	authhandler "campus-backend/lib/auth"
	courseprovider "campus-backend/lib/dicts/course"
	departmentprovider "campus-backend/lib/dicts/department"
	"campus-backend/lib/exams"
	xlsexport "campus-backend/lib/export/xls"
	"campus-backend/lib/faculty"
	"campus-backend/lib/fees"
	"campus-backend/lib/hostel"
	"campus-backend/lib/library"
	overdueworker "campus-backend/lib/library/overdue-worker"
	"campus-backend/lib/notification"
	"campus-backend/lib/outpass"
	expireworker "campus-backend/lib/outpass/expire-worker"
	"campus-backend/lib/students"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	notification.NewHandler()
	departmentprovider.NewHandler()
	courseprovider.NewHandler()
	students.NewHandler()
	faculty.NewHandler()
	authhandler.NewHandler()
	outpass.NewHandler()
	attendance.NewHandler()
	fees.NewHandler()
	exams.NewHandler()
	hostel.NewHandler()
	library.NewHandler()
	xlsexport.NewHandler()
	analytics.NewHandler()
	go initWorkers(ctx)
}

// workers start with a delay between them to spread the load
func initWorkers(ctx context.Context) {
	// Expires out-pass requests whose departure time has passed
	expireworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Flags library loans past their due date
		overdueworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
