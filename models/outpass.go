package models

// OutpassStatus is the request-level status. It is always derived from the
// stage records plus the expiry policy and is never set directly by callers.
type OutpassStatus string

const (
	OutpassStatusPending   OutpassStatus = "PENDING"
	OutpassStatusApproved  OutpassStatus = "APPROVED"
	OutpassStatusRejected  OutpassStatus = "REJECTED"
	OutpassStatusExpired   OutpassStatus = "EXPIRED"
	OutpassStatusCancelled OutpassStatus = "CANCELLED"
)

var outpassStatusHumanName = map[OutpassStatus]string{
	OutpassStatusPending:   "Pending",
	OutpassStatusApproved:  "Approved",
	OutpassStatusRejected:  "Rejected",
	OutpassStatusExpired:   "Expired",
	OutpassStatusCancelled: "Cancelled",
}

func (s OutpassStatus) ToHuman() string {
	if human, exist := outpassStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal reports whether no further transition may leave the status.
func (s OutpassStatus) IsTerminal() bool {
	switch s {
	case OutpassStatusApproved, OutpassStatusRejected, OutpassStatusExpired, OutpassStatusCancelled:
		return true
	}
	return false
}

// IsAllowChange reports whether the transition to newStatus is permitted.
// The only non-terminal status is PENDING, every transition starts there.
func (s OutpassStatus) IsAllowChange(newStatus OutpassStatus) bool {
	if s.IsTerminal() || newStatus == OutpassStatusPending {
		return false
	}
	return s == OutpassStatusPending
}

// ApprovalStatus is the status of a single approval stage record.
type ApprovalStatus string

const (
	AStatusPending  ApprovalStatus = "PENDING"
	AStatusApproved ApprovalStatus = "APPROVED"
	AStatusRejected ApprovalStatus = "REJECTED"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	AStatusPending:  "Awaiting decision",
	AStatusApproved: "Approved",
	AStatusRejected: "Rejected",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalStatus) IsDecided() bool {
	return s == AStatusApproved || s == AStatusRejected
}

// StageRole names an approval checkpoint and the role that owns it.
type StageRole string

const (
	StageWarden StageRole = "WARDEN"
	StageHod    StageRole = "HOD"
)

func (s StageRole) Valid() bool {
	return s == StageWarden || s == StageHod
}

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// OutpassEvent is a logical workflow event handed to the notification
// collaborator. Delivery is the collaborator's problem, not the engine's.
type OutpassEvent string

const (
	EventRequestCreated   OutpassEvent = "request_created"
	EventStageDecided     OutpassEvent = "stage_decided"
	EventRequestExpired   OutpassEvent = "request_expired"
	EventRequestCancelled OutpassEvent = "request_cancelled"
)
