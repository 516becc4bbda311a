package xlsexport

import (
	"bytes"

	"campus-backend/lib/utils/helpers"
	outpassapimodels "campus-backend/models/api/outpass"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportOutpassRegister(list []outpassapimodels.OutpassView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var registerHeaders = []string{"Student code", "Student name", "Course", "Room", "Purpose", "Destination", "From", "To", "Contact", "Status"}

func (i impl) ExportOutpassRegister(list []outpassapimodels.OutpassView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Out-pass register")
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []outpassapimodels.OutpassView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.StudentCode,
			item.StudentName,
			item.Course,
			item.RoomNo,
			item.Purpose,
			item.Destination,
			helpers.FormatDatetime(item.FromDatetime),
			helpers.FormatDatetime(item.ToDatetime),
			item.ContactDuringLeave,
			item.StatusName,
		}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}
