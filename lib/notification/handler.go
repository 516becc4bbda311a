package notification

import (
	"fmt"
	"time"

	"campus-backend/config"
	"campus-backend/db"
	outpassstore "campus-backend/lib/outpass/store"
	"campus-backend/lib/smtp"
	"campus-backend/lib/utils/helpers"
	"campus-backend/models"
	dbmodels "campus-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider receives the logical workflow events. Delivery is this
// collaborator's responsibility; a failed delivery is logged and never
// propagated back into the workflow operation that emitted the event.
type Provider interface {
	RequestCreated(rec dbmodels.OutpassRequest)
	StageDecided(rec dbmodels.OutpassRequest, stage dbmodels.OutpassApproval)
	RequestExpired(rec dbmodels.OutpassRequest)
	RequestCancelled(rec dbmodels.OutpassRequest)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		sender: smtp.Instance,
		store:  outpassstore.NewInstance(db.DB),
	}
}

type impl struct {
	sender smtp.Provider
	store  outpassstore.Provider
}

func (i impl) getLogger(rec dbmodels.OutpassRequest) *log.Entry {
	return log.
		WithField("request_id", rec.ID).
		WithField("student_id", rec.StudentID)
}

func (i impl) RequestCreated(rec dbmodels.OutpassRequest) {
	subject := "Out-pass request submitted"
	message := fmt.Sprintf("A new out-pass request to %v (%v - %v) is awaiting approval.",
		rec.Destination,
		helpers.FormatDatetime(rec.FromDatetime),
		helpers.FormatDatetime(rec.ToDatetime))
	i.notifyStudent(rec, subject, message)
}

func (i impl) StageDecided(rec dbmodels.OutpassRequest, stage dbmodels.OutpassApproval) {
	subject := fmt.Sprintf("Out-pass %v by %v", stage.Status.ToHuman(), stage.StageRole)
	message := fmt.Sprintf("Your out-pass request to %v is now %v.", rec.Destination, rec.Status.ToHuman())
	if stage.Remarks != "" {
		message = fmt.Sprintf("%v Remarks: %v", message, stage.Remarks)
	}
	i.notifyStudent(rec, subject, message)
	if rec.Status == models.OutpassStatusApproved {
		i.notifyParent(rec, "Out-pass approved",
			fmt.Sprintf("An out-pass to %v (%v - %v) was approved for your ward.",
				rec.Destination,
				helpers.FormatDatetime(rec.FromDatetime),
				helpers.FormatDatetime(rec.ToDatetime)))
	}
}

func (i impl) RequestExpired(rec dbmodels.OutpassRequest) {
	i.notifyStudent(rec, "Out-pass expired",
		fmt.Sprintf("Your out-pass request to %v expired without a decision.", rec.Destination))
}

func (i impl) RequestCancelled(rec dbmodels.OutpassRequest) {
	i.notifyStudent(rec, "Out-pass cancelled",
		fmt.Sprintf("Your out-pass request to %v was cancelled.", rec.Destination))
}

func (i impl) notifyStudent(rec dbmodels.OutpassRequest, subject, message string) {
	if rec.Student == nil || rec.Student.User == nil || rec.Student.User.Email == "" {
		return
	}
	i.send(rec, rec.Student.User.Email, subject, message)
}

func (i impl) notifyParent(rec dbmodels.OutpassRequest, subject, message string) {
	if rec.Student == nil || rec.Student.Parent == nil || rec.Student.Parent.Email == "" {
		return
	}
	i.send(rec, rec.Student.Parent.Email, subject, message)
	if err := i.store.MarkParentNotified(rec.ID, time.Now()); err != nil {
		i.getLogger(rec).WithError(err).Error("parent notification mark failed")
	}
}

func (i impl) send(rec dbmodels.OutpassRequest, to, subject, message string) {
	err := i.sender.SendEMail(config.Conf.Smtp.SenderName, to, message, subject)
	if err != nil {
		i.getLogger(rec).WithError(err).Error("out-pass notification delivery failed")
	}
}
