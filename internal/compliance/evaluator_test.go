package compliance_test

import (
	"testing"
	"time"

	"github.com/SuedePritch/auditagents/internal/compliance"
	"github.com/SuedePritch/auditagents/internal/mockops"
)

var now = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func calibratedDaysAgo(id string, days int) mockops.Equipment {
	return mockops.Equipment{
		ID:              id,
		Type:            "Gas Flow Meter",
		Status:          mockops.StatusActive,
		LastCalibration: now.AddDate(0, 0, -days).Format(mockops.DateLayout),
		Criticality:     mockops.CriticalityHigh,
	}
}

func TestEvaluate_OverdueEquipment(t *testing.T) {
	nonCompliant, compliant := compliance.Evaluate(
		[]mockops.Equipment{calibratedDaysAgo("EQ-1", 400)}, now)

	if len(compliant) != 0 {
		t.Fatalf("expected no compliant items, got %d", len(compliant))
	}
	if len(nonCompliant) != 1 {
		t.Fatalf("expected 1 non-compliant item, got %d", len(nonCompliant))
	}
	f := nonCompliant[0]
	if f.DaysSince != 400 {
		t.Errorf("expected days since 400, got %d", f.DaysSince)
	}
	if f.DaysOverdue != 35 {
		t.Errorf("expected 35 days overdue, got %d", f.DaysOverdue)
	}
}

func TestEvaluate_Boundary365DaysIsCompliant(t *testing.T) {
	nonCompliant, compliant := compliance.Evaluate(
		[]mockops.Equipment{calibratedDaysAgo("EQ-1", 365)}, now)

	if len(nonCompliant) != 0 {
		t.Fatalf("365 days must be compliant, got %d non-compliant", len(nonCompliant))
	}
	if len(compliant) != 1 {
		t.Fatalf("expected 1 compliant item, got %d", len(compliant))
	}
	if compliant[0].DaysOverdue != 0 {
		t.Errorf("compliant item must have 0 days overdue, got %d", compliant[0].DaysOverdue)
	}
}

func TestEvaluate_366DaysIsOverdueByOne(t *testing.T) {
	nonCompliant, _ := compliance.Evaluate(
		[]mockops.Equipment{calibratedDaysAgo("EQ-1", 366)}, now)

	if len(nonCompliant) != 1 {
		t.Fatalf("expected 1 non-compliant item, got %d", len(nonCompliant))
	}
	if nonCompliant[0].DaysOverdue != 1 {
		t.Errorf("expected 1 day overdue, got %d", nonCompliant[0].DaysOverdue)
	}
}

func TestEvaluate_InspectionOnlyEquipmentExcluded(t *testing.T) {
	flare := mockops.Equipment{
		ID:             "EQ-FLARE-02",
		Type:           "Flare Stack",
		Status:         mockops.StatusActive,
		LastInspection: now.AddDate(0, 0, -20).Format(mockops.DateLayout),
	}

	nonCompliant, compliant := compliance.Evaluate([]mockops.Equipment{flare}, now)
	if len(nonCompliant) != 0 || len(compliant) != 0 {
		t.Errorf("inspection-only equipment must appear in neither group, got %d/%d",
			len(nonCompliant), len(compliant))
	}
}

func TestEvaluate_PreservesInputOrderWithinGroups(t *testing.T) {
	input := []mockops.Equipment{
		calibratedDaysAgo("EQ-A", 400),
		calibratedDaysAgo("EQ-B", 10),
		calibratedDaysAgo("EQ-C", 500),
		calibratedDaysAgo("EQ-D", 100),
	}

	nonCompliant, compliant := compliance.Evaluate(input, now)

	if len(nonCompliant) != 2 || nonCompliant[0].EquipmentID != "EQ-A" || nonCompliant[1].EquipmentID != "EQ-C" {
		t.Errorf("non-compliant order wrong: %+v", nonCompliant)
	}
	if len(compliant) != 2 || compliant[0].EquipmentID != "EQ-B" || compliant[1].EquipmentID != "EQ-D" {
		t.Errorf("compliant order wrong: %+v", compliant)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	input := []mockops.Equipment{
		calibratedDaysAgo("EQ-A", 380),
		calibratedDaysAgo("EQ-B", 90),
	}

	n1, c1 := compliance.Evaluate(input, now)
	n2, c2 := compliance.Evaluate(input, now)

	if len(n1) != len(n2) || len(c1) != len(c2) {
		t.Fatal("same input and now must yield the same classification")
	}
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Errorf("non-compliant finding %d differs between runs", i)
		}
	}
}

func TestEvaluate_NonUTCReferenceTime(t *testing.T) {
	// Day counts must follow calendar dates regardless of the zone or
	// time of day of the reference timestamp.
	mst := time.FixedZone("MST", -7*60*60)
	evening := time.Date(2025, time.March, 10, 18, 0, 0, 0, mst)

	onBoundary := mockops.Equipment{
		ID:              "EQ-1",
		Type:            "Gas Flow Meter",
		Status:          mockops.StatusActive,
		LastCalibration: evening.AddDate(0, 0, -365).Format(mockops.DateLayout),
		Criticality:     mockops.CriticalityHigh,
	}
	nonCompliant, compliant := compliance.Evaluate([]mockops.Equipment{onBoundary}, evening)
	if len(nonCompliant) != 0 {
		t.Fatalf("365 calendar days must be compliant in any zone, got %+v", nonCompliant)
	}
	if len(compliant) != 1 || compliant[0].DaysSince != 365 {
		t.Errorf("expected 365 days since, got %+v", compliant)
	}

	overdue := onBoundary
	overdue.LastCalibration = evening.AddDate(0, 0, -366).Format(mockops.DateLayout)
	nonCompliant, _ = compliance.Evaluate([]mockops.Equipment{overdue}, evening)
	if len(nonCompliant) != 1 || nonCompliant[0].DaysOverdue != 1 {
		t.Errorf("366 calendar days must be 1 day overdue in any zone, got %+v", nonCompliant)
	}

	// Positive offsets must not undercount either.
	nzdt := time.FixedZone("NZDT", 13*60*60)
	morning := time.Date(2025, time.March, 10, 8, 0, 0, 0, nzdt)
	overdue.LastCalibration = morning.AddDate(0, 0, -366).Format(mockops.DateLayout)
	nonCompliant, _ = compliance.Evaluate([]mockops.Equipment{overdue}, morning)
	if len(nonCompliant) != 1 || nonCompliant[0].DaysOverdue != 1 {
		t.Errorf("366 calendar days must be 1 day overdue at +13:00, got %+v", nonCompliant)
	}
}

func TestEvaluate_StoreSeedScenario(t *testing.T) {
	// The seeded FAC-AB-001 has two overdue items (400 and 380 days ago)
	// and one in-date meter; the flare stack is inspection-only.
	store := mockops.NewSeededAt(now)

	nonCompliant, compliant := compliance.Evaluate(store.Equipment("FAC-AB-001"), now)
	if len(nonCompliant) != 2 {
		t.Fatalf("expected 2 non-compliant items, got %d", len(nonCompliant))
	}
	if nonCompliant[0].EquipmentID != "EQ-PUMP-01" || nonCompliant[0].DaysOverdue != 35 {
		t.Errorf("unexpected first finding: %+v", nonCompliant[0])
	}
	if nonCompliant[1].EquipmentID != "EQ-METER-05" || nonCompliant[1].DaysOverdue != 15 {
		t.Errorf("unexpected second finding: %+v", nonCompliant[1])
	}
	if len(compliant) != 1 || compliant[0].EquipmentID != "EQ-METER-04" {
		t.Errorf("unexpected compliant group: %+v", compliant)
	}
}
