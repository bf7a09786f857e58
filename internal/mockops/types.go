package mockops

import "time"

// DateLayout is the calendar-date format used throughout the mock
// operational data (calibration dates, scheduled dates).
const DateLayout = "2006-01-02"

// Status is the operational state of an equipment item.
type Status string

const (
	StatusActive      Status = "Active"
	StatusInactive    Status = "Inactive"
	StatusMaintenance Status = "Maintenance"
)

// Criticality ranks how severe a failure of the equipment would be.
type Criticality string

const (
	CriticalityLow      Criticality = "Low"
	CriticalityMedium   Criticality = "Medium"
	CriticalityHigh     Criticality = "High"
	CriticalityCritical Criticality = "Critical"
)

// Equipment is a single piece of equipment at a facility. Items subject to
// calibration rules carry LastCalibration; inspection-only items leave it
// empty and are exempt from the calibration compliance check.
type Equipment struct {
	ID                string
	Type              string
	DirectiveCategory string
	Status            Status
	LastCalibration   string // DateLayout, empty if not calibrated equipment
	LastInspection    string // DateLayout, empty if never inspected
	Criticality       Criticality
}

// Facility is immutable reference data seeded at startup. Only equipment
// status is ever mutated.
type Facility struct {
	FacilityID string
	Name       string
	Location   string
	Operator   string
	Equipment  []Equipment
}

// FacilitySummary is the listing view of a facility.
type FacilitySummary struct {
	FacilityID string
	Name       string
	Location   string
	Operator   string
}

// FacilityInfo is the summary view plus an equipment count.
type FacilityInfo struct {
	FacilitySummary
	EquipmentCount int
}

// EmailRecord is an entry in the append-only mock outbox.
type EmailRecord struct {
	ID      string
	To      string
	CC      []string
	Subject string
	Body    string
	SentAt  time.Time
	Status  string
}

// ScheduledTask is an entry in the append-only mock calendar.
type ScheduledTask struct {
	ID         string
	Task       string
	Date       string // DateLayout, no time component
	FacilityID string // optional
	CreatedAt  time.Time
	Status     string
}

// MaintenanceLogEntry is an entry in the append-only mock maintenance log.
type MaintenanceLogEntry struct {
	ID          string
	EquipmentID string
	Action      string
	Notes       string
	LoggedAt    time.Time
	Actor       string
}
