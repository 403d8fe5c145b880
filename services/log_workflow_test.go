package services

import (
	"errors"
	"testing"
	"time"

	"salonflow-backend/models"

	"github.com/google/uuid"
)

func pendingLog() models.ServiceLog {
	return models.ServiceLog{
		ID:        uuid.New(),
		BarberID:  uuid.New(),
		ServiceID: uuid.New(),
		Price:     1500,
		Status:    models.LogStatusPending,
	}
}

func TestTransitionLogApprove(t *testing.T) {
	now := time.Now()
	got, err := TransitionLog(pendingLog(), models.LogStatusApproved, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.LogStatusApproved {
		t.Errorf("status = %q, want approved", got.Status)
	}
	if got.ApprovedAt == nil || !got.ApprovedAt.Equal(now) {
		t.Errorf("approvedAt = %v, want %v", got.ApprovedAt, now)
	}
	if got.RejectedAt != nil {
		t.Errorf("rejectedAt = %v, want nil on approval", got.RejectedAt)
	}
}

func TestTransitionLogReject(t *testing.T) {
	now := time.Now()
	got, err := TransitionLog(pendingLog(), models.LogStatusRejected, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.LogStatusRejected {
		t.Errorf("status = %q, want rejected", got.Status)
	}
	if got.RejectedAt == nil || !got.RejectedAt.Equal(now) {
		t.Errorf("rejectedAt = %v, want %v", got.RejectedAt, now)
	}
	if got.ApprovedAt != nil {
		t.Errorf("approvedAt = %v, want nil on rejection", got.ApprovedAt)
	}
}

func TestTransitionLogTerminalStates(t *testing.T) {
	now := time.Now()
	approved, _ := TransitionLog(pendingLog(), models.LogStatusApproved, now)
	rejected, _ := TransitionLog(pendingLog(), models.LogStatusRejected, now)

	for _, terminal := range []models.ServiceLog{approved, rejected} {
		for _, target := range []string{models.LogStatusApproved, models.LogStatusRejected} {
			got, err := TransitionLog(terminal, target, now.Add(time.Hour))
			if !errors.Is(err, ErrLogNotPending) {
				t.Errorf("transition %s -> %s: err = %v, want ErrLogNotPending", terminal.Status, target, err)
			}
			if got.Status != terminal.Status {
				t.Errorf("transition %s -> %s changed status to %q", terminal.Status, target, got.Status)
			}
		}
	}
}

func TestCanDeleteLog(t *testing.T) {
	if err := CanDeleteLog(pendingLog()); err != nil {
		t.Errorf("pending log: err = %v, want nil", err)
	}

	now := time.Now()
	approved, _ := TransitionLog(pendingLog(), models.LogStatusApproved, now)
	if err := CanDeleteLog(approved); !errors.Is(err, ErrLogNotPending) {
		t.Errorf("approved log: err = %v, want ErrLogNotPending", err)
	}

	rejected, _ := TransitionLog(pendingLog(), models.LogStatusRejected, now)
	if err := CanDeleteLog(rejected); !errors.Is(err, ErrLogNotPending) {
		t.Errorf("rejected log: err = %v, want ErrLogNotPending", err)
	}
}
