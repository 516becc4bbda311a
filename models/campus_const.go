package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
	AttendanceHoliday AttendanceStatus = "HOLIDAY"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused, AttendanceHoliday:
		return true
	}
	return false
}

// CountsAsPresent reports whether the mark contributes to the attendance
// percentage numerator. Holidays are excluded from both sides of the ratio.
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == AttendancePresent || s == AttendanceLate || s == AttendanceExcused
}

type FeeStatus string

const (
	FeeStatusPending   FeeStatus = "PENDING"
	FeeStatusCompleted FeeStatus = "COMPLETED"
	FeeStatusFailed    FeeStatus = "FAILED"
	FeeStatusRefunded  FeeStatus = "REFUNDED"
	FeeStatusPartial   FeeStatus = "PARTIAL"
)

type PaymentMode string

const (
	PaymentModeOnline       PaymentMode = "ONLINE"
	PaymentModeCash         PaymentMode = "CASH"
	PaymentModeCheque       PaymentMode = "CHEQUE"
	PaymentModeDemandDraft  PaymentMode = "DD"
	PaymentModeBankTransfer PaymentMode = "BANK_TRANSFER"
)

type DegreeType string

const (
	DegreeBachelor    DegreeType = "BACHELOR"
	DegreeMaster      DegreeType = "MASTER"
	DegreeDiploma     DegreeType = "DIPLOMA"
	DegreeCertificate DegreeType = "CERTIFICATE"
	DegreePhd         DegreeType = "PHD"
)

type LoanStatus string

const (
	LoanStatusIssued   LoanStatus = "ISSUED"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusLost     LoanStatus = "LOST"
)
