package analytics

import (
	"bytes"
	"time"

	"campus-backend/config"
	"campus-backend/db"
	"campus-backend/lib/attendance"
	pdfexport "campus-backend/lib/export/pdf"
	xlsexport "campus-backend/lib/export/xls"
	"campus-backend/lib/fees"
	"campus-backend/lib/hostel"
	"campus-backend/lib/outpass"
	studentsstore "campus-backend/lib/students/store"
	initchecker "campus-backend/lib/utils/init-checker"
	"campus-backend/models"
	dashboardapimodels "campus-backend/models/api/dashboard"
	outpassapimodels "campus-backend/models/api/outpass"
	studentapimodels "campus-backend/models/api/student"
)

type Provider interface {
	Dashboard() (dashboardapimodels.DashboardView, error)
	OutpassRegisterToXls(identity models.Identity, filter outpassapimodels.OutpassFilter) (*bytes.Buffer, error)
	GatePassToPdf(id string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		outpassProvider:    outpass.Instance,
		feesProvider:       fees.Instance,
		hostelProvider:     hostel.Instance,
		attendanceProvider: attendance.Instance,
		studentStore:       studentsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"outpassProvider", instance.outpassProvider,
		"feesProvider", instance.feesProvider,
		"hostelProvider", instance.hostelProvider,
		"attendanceProvider", instance.attendanceProvider,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	outpassProvider    outpass.Provider
	feesProvider       fees.Provider
	hostelProvider     hostel.Provider
	attendanceProvider attendance.Provider
	studentStore       studentsstore.Provider
}

func (i impl) Dashboard() (dashboardapimodels.DashboardView, error) {
	studentCount, err := i.studentStore.ListCount(studentapimodels.StudentFilter{})
	if err != nil {
		return dashboardapimodels.DashboardView{}, err
	}
	outpassStats, err := i.outpassProvider.Stats()
	if err != nil {
		return dashboardapimodels.DashboardView{}, err
	}
	feeTotals, err := i.feesProvider.Totals("")
	if err != nil {
		return dashboardapimodels.DashboardView{}, err
	}
	occupancy, err := i.hostelProvider.Occupancy()
	if err != nil {
		return dashboardapimodels.DashboardView{}, err
	}
	now := time.Now()
	attendanceRate, err := i.attendanceProvider.CampusRate(now.AddDate(0, 0, -30), now)
	if err != nil {
		return dashboardapimodels.DashboardView{}, err
	}
	return dashboardapimodels.DashboardView{
		StudentCount:   studentCount,
		OutpassStats:   outpassStats,
		FeeTotals:      feeTotals,
		Occupancy:      occupancy,
		AttendanceRate: attendanceRate,
	}, nil
}

func (i impl) OutpassRegisterToXls(identity models.Identity, filter outpassapimodels.OutpassFilter) (*bytes.Buffer, error) {
	list, _, err := i.outpassProvider.List(identity, filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportOutpassRegister(list)
}

func (i impl) GatePassToPdf(id string) ([]byte, error) {
	view, err := i.outpassProvider.GetByID(id)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateGatePass(config.Conf.Campus.Name, view)
}
