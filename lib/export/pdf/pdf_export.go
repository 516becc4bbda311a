package pdfexport

import (
	"bytes"

	"campus-backend/lib/utils/helpers"
	"campus-backend/models"
	outpassapimodels "campus-backend/models/api/outpass"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateGatePass renders the printable permit handed to the gate security
// for an approved out-pass request.
func GenerateGatePass(campusName string, view outpassapimodels.OutpassView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateGatePass panic recover: %v", r)
		}
	}()
	if view.Status != models.OutpassStatusApproved {
		return nil, errors.Wrap(models.ErrInvalidTransition, "gate pass is available only for approved requests")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, campusName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "STUDENT OUT-PASS", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	writeField(pdf, "Pass No", view.ID)
	writeField(pdf, "Student", view.StudentName)
	writeField(pdf, "Student code", view.StudentCode)
	if view.Course != "" {
		writeField(pdf, "Course", view.Course)
	}
	if view.RoomNo != "" {
		writeField(pdf, "Room", view.RoomNo)
	}
	writeField(pdf, "Purpose", view.Purpose)
	writeField(pdf, "Destination", view.Destination)
	writeField(pdf, "Leaving at", helpers.FormatDatetime(view.FromDatetime))
	writeField(pdf, "Returning at", helpers.FormatDatetime(view.ToDatetime))
	writeField(pdf, "Contact", view.ContactDuringLeave)
	if view.AccompaniedBy != "" {
		writeField(pdf, "Accompanied by", view.AccompaniedBy)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Approvals", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, stage := range view.ApprovalStages {
		line := string(stage.StageRole) + ": " + string(stage.Status)
		if stage.DecidedBy != "" {
			line += " by " + stage.DecidedBy
		}
		if stage.DecidedAt != nil {
			line += " at " + helpers.FormatDatetime(*stage.DecidedAt)
		}
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Valid only within the window above. Must be presented at the gate.", "", 1, "L", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(45, 8, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
