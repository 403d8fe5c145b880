// services/log_workflow.go
package services

import (
	"errors"
	"time"

	"salonflow-backend/models"
)

// ErrLogNotPending is returned when a state change is attempted on a log
// that already left the pending state.
var ErrLogNotPending = errors.New("only pending service logs can change state")

// TransitionLog applies pending -> approved|rejected to a copy of the log.
// Approved and rejected are terminal; exactly one of approvedAt/rejectedAt
// gets set, matching the target state.
func TransitionLog(logEntry models.ServiceLog, target string, now time.Time) (models.ServiceLog, error) {
	if logEntry.Status != models.LogStatusPending {
		return logEntry, ErrLogNotPending
	}

	logEntry.Status = target
	if target == models.LogStatusApproved {
		logEntry.ApprovedAt = &now
	} else {
		logEntry.RejectedAt = &now
	}
	return logEntry, nil
}

// CanDeleteLog reports whether the log may still be deleted. Approved and
// rejected logs feed reports and must be kept.
func CanDeleteLog(logEntry models.ServiceLog) error {
	if logEntry.Status != models.LogStatusPending {
		return ErrLogNotPending
	}
	return nil
}
