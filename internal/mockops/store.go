// Package mockops holds the simulated operational systems the audit agent
// acts against: facility/equipment reference data plus append-only records
// of every side effect the agent produces (emails, scheduled tasks,
// maintenance logs). Everything lives in memory and is lost on restart.
package mockops

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ValidationError reports a malformed structured input to a store
// operation, such as a badly formed calendar date.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrUnknownEquipment is returned when a status update names an equipment
// id that does not exist at any facility.
var ErrUnknownEquipment = errors.New("equipment not found")

// Store is the single source of truth for facility reference data and for
// every side-effect record the tools produce. It is shared across all
// sessions, so every mutating operation holds the mutex.
type Store struct {
	mu         sync.Mutex
	facilities []Facility
	emails     []EmailRecord
	tasks      []ScheduledTask
	logs       []MaintenanceLogEntry

	// Sequence counters survive Reset so ids are never reused.
	emailSeq int
	taskSeq  int
	logSeq   int

	now func() time.Time
}

// New builds a store seeded relative to the current wall clock.
func New() *Store {
	s := NewSeededAt(time.Now())
	s.now = time.Now
	return s
}

// NewSeededAt builds a store whose seed calibration dates are computed
// relative to now, and whose record timestamps are pinned to now. Tests use
// this to make compliance results and timestamps deterministic.
func NewSeededAt(now time.Time) *Store {
	return &Store{
		facilities: seedFacilities(now),
		emailSeq:   1000,
		taskSeq:    1000,
		logSeq:     1000,
		now:        func() time.Time { return now },
	}
}

// ListFacilities returns summaries of all facilities in seed order.
func (s *Store) ListFacilities() []FacilitySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FacilitySummary, 0, len(s.facilities))
	for _, f := range s.facilities {
		out = append(out, FacilitySummary{
			FacilityID: f.FacilityID,
			Name:       f.Name,
			Location:   f.Location,
			Operator:   f.Operator,
		})
	}
	return out
}

// Equipment returns the equipment list for a facility. An unknown facility
// id yields an empty slice, indistinguishable from a facility with no
// equipment. Callers rely on that.
func (s *Store) Equipment(facilityID string) []Equipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.facilities {
		if f.FacilityID == facilityID {
			out := make([]Equipment, len(f.Equipment))
			copy(out, f.Equipment)
			return out
		}
	}
	return nil
}

// FacilityInfo returns the summary and equipment count for a facility, or
// nil if the id is unknown.
func (s *Store) FacilityInfo(facilityID string) *FacilityInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.facilities {
		if f.FacilityID == facilityID {
			return &FacilityInfo{
				FacilitySummary: FacilitySummary{
					FacilityID: f.FacilityID,
					Name:       f.Name,
					Location:   f.Location,
					Operator:   f.Operator,
				},
				EquipmentCount: len(f.Equipment),
			}
		}
	}
	return nil
}

// SendEmail appends an EmailRecord to the outbox and returns it.
func (s *Store) SendEmail(to, subject, body string, cc []string) EmailRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := EmailRecord{
		ID:      fmt.Sprintf("EMAIL-%d", s.emailSeq),
		To:      to,
		CC:      append([]string(nil), cc...),
		Subject: subject,
		Body:    body,
		SentAt:  s.now(),
		Status:  "sent",
	}
	s.emailSeq++
	s.emails = append(s.emails, rec)
	return rec
}

// ScheduleTask validates the date and appends a ScheduledTask. A malformed
// date fails with a ValidationError before anything is appended.
func (s *Store) ScheduleTask(task, date, facilityID string) (ScheduledTask, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ScheduledTask{}, &ValidationError{
			Field:  "date",
			Reason: fmt.Sprintf("%q is not a valid %s date", date, DateLayout),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec := ScheduledTask{
		ID:         fmt.Sprintf("CAL-%d", s.taskSeq),
		Task:       task,
		Date:       date,
		FacilityID: facilityID,
		CreatedAt:  s.now(),
		Status:     "scheduled",
	}
	s.taskSeq++
	s.tasks = append(s.tasks, rec)
	return rec, nil
}

// LogMaintenance appends a maintenance log entry. The equipment id is not
// checked against the reference data; this is a mock boundary and any
// string is accepted.
func (s *Store) LogMaintenance(equipmentID, action, notes string) MaintenanceLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := MaintenanceLogEntry{
		ID:          fmt.Sprintf("MAINT-%d", s.logSeq),
		EquipmentID: equipmentID,
		Action:      action,
		Notes:       notes,
		LoggedAt:    s.now(),
		Actor:       "agent",
	}
	s.logSeq++
	s.logs = append(s.logs, rec)
	return rec
}

// UpdateEquipmentStatus flips the status of a seeded equipment item.
func (s *Store) UpdateEquipmentStatus(equipmentID string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for fi := range s.facilities {
		for ei := range s.facilities[fi].Equipment {
			if s.facilities[fi].Equipment[ei].ID == equipmentID {
				s.facilities[fi].Equipment[ei].Status = status
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownEquipment, equipmentID)
}

// Reset clears the three append-only logs. Facility reference data and the
// id sequences are untouched, so ids are never reused. Idempotent.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = nil
	s.tasks = nil
	s.logs = nil
}

// Emails returns a copy of the outbox in insertion order.
func (s *Store) Emails() []EmailRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmailRecord, len(s.emails))
	copy(out, s.emails)
	for i := range out {
		out[i].CC = append([]string(nil), out[i].CC...)
	}
	return out
}

// Tasks returns a copy of the scheduled tasks in insertion order.
func (s *Store) Tasks() []ScheduledTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScheduledTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Logs returns a copy of the maintenance log in insertion order.
func (s *Store) Logs() []MaintenanceLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MaintenanceLogEntry, len(s.logs))
	copy(out, s.logs)
	return out
}
