package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SuedePritch/auditagents/internal/compliance"
	"github.com/SuedePritch/auditagents/internal/knowledge"
	"github.com/SuedePritch/auditagents/internal/mockops"
)

// Deps are the collaborators the audit tools act against. The store is
// required; a nil Searcher means directive lookups always use the
// fallback answer.
type Deps struct {
	Store    *mockops.Store
	Searcher knowledge.Searcher

	// Now supplies the reference time for compliance checks. Defaults to
	// time.Now.
	Now func() time.Time

	// SearchTimeout bounds the wait on the retrieval collaborator.
	// Defaults to 10s.
	SearchTimeout time.Duration
}

// NewAuditRegistry builds the fixed tool catalog for compliance auditing.
func NewAuditRegistry(deps Deps) (*Registry, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("audit registry: store is required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.SearchTimeout <= 0 {
		deps.SearchTimeout = 10 * time.Second
	}

	r := NewRegistry()
	var regErr error
	register := func(name, description string, fn any) {
		if regErr == nil {
			regErr = r.Register(name, description, fn)
		}
	}

	register("list_facilities",
		"Get a list of all available facilities that can be audited.",
		deps.listFacilities)
	register("get_facility_equipment",
		"Fetch the complete list of equipment for a specific facility to check against directives.",
		deps.getFacilityEquipment)
	register("check_calibration_compliance",
		"Check equipment calibration dates against the 365-day requirement from Directive 017. Returns non-compliant items with days overdue.",
		deps.checkCalibrationCompliance)
	register("search_directives",
		"Search the AER directive knowledge base for requirements, procedures, or technical specifications.",
		deps.searchDirectives)
	register("send_compliance_report",
		"Send the final audit report via email to the compliance officer.",
		deps.sendComplianceReport)
	register("schedule_follow_up",
		"Schedule a follow-up audit, maintenance task, or inspection. Date must be in YYYY-MM-DD format.",
		deps.scheduleFollowUp)
	register("log_maintenance_action",
		"Log a maintenance action for equipment to create an audit trail.",
		deps.logMaintenanceAction)
	if regErr != nil {
		return nil, regErr
	}

	return r, nil
}

type emptyParams struct{}

func (d Deps) listFacilities(_ context.Context, _ emptyParams) (string, error) {
	facilities := d.Store.ListFacilities()
	if len(facilities) == 0 {
		return "No facilities found in the system.", nil
	}

	var b strings.Builder
	b.WriteString("Available Facilities:\n")
	for _, f := range facilities {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", f.FacilityID, f.Name, f.Location)
	}
	return b.String(), nil
}

type facilityParams struct {
	FacilityID string `json:"facility_id" description:"The ID of the facility to audit (e.g., FAC-AB-001)"`
}

func (d Deps) getFacilityEquipment(_ context.Context, p facilityParams) (string, error) {
	equipment := d.Store.Equipment(p.FacilityID)
	if len(equipment) == 0 {
		// Unknown facility and empty facility read the same.
		return fmt.Sprintf("No equipment found for facility ID: %s", p.FacilityID), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Equipment at %s:\n", p.FacilityID)
	for _, item := range equipment {
		fmt.Fprintf(&b, "\n- ID: %s\n", item.ID)
		fmt.Fprintf(&b, "  Type: %s\n", item.Type)
		fmt.Fprintf(&b, "  Directive: %s\n", item.DirectiveCategory)
		fmt.Fprintf(&b, "  Status: %s\n", item.Status)
		if item.LastCalibration != "" {
			fmt.Fprintf(&b, "  Last Calibration: %s\n", item.LastCalibration)
		}
		if item.LastInspection != "" {
			fmt.Fprintf(&b, "  Last Inspection: %s\n", item.LastInspection)
		}
		if item.Criticality != "" {
			fmt.Fprintf(&b, "  Criticality: %s\n", item.Criticality)
		}
	}
	return b.String(), nil
}

func (d Deps) checkCalibrationCompliance(_ context.Context, p facilityParams) (string, error) {
	equipment := d.Store.Equipment(p.FacilityID)
	if len(equipment) == 0 {
		return fmt.Sprintf("No equipment found for facility %s", p.FacilityID), nil
	}

	now := d.Now()
	nonCompliant, compliant := compliance.Evaluate(equipment, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Calibration Compliance Report for %s\n", p.FacilityID)
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format(mockops.DateLayout))

	if len(nonCompliant) > 0 {
		fmt.Fprintf(&b, "NON-COMPLIANT EQUIPMENT (exceeds %d-day requirement):\n", compliance.MaxIntervalDays)
		for _, f := range nonCompliant {
			fmt.Fprintf(&b, "\n[FAIL] %s (ID: %s)\n", f.Type, f.EquipmentID)
			fmt.Fprintf(&b, "  Last Calibrated: %s (%d days ago)\n", f.LastCalibration, f.DaysSince)
			fmt.Fprintf(&b, "  Days Overdue: %d\n", f.DaysOverdue)
			fmt.Fprintf(&b, "  Criticality: %s\n", f.Criticality)
		}
		fmt.Fprintf(&b, "\nTotal Non-Compliant: %d items\n", len(nonCompliant))
	} else {
		b.WriteString("ALL EQUIPMENT IS COMPLIANT\n")
	}

	if len(compliant) > 0 {
		fmt.Fprintf(&b, "\nCompliant Equipment (%d items):\n", len(compliant))
		for _, f := range compliant {
			fmt.Fprintf(&b, "  [OK] %s (ID: %s) - compliant (%d days)\n", f.Type, f.EquipmentID, f.DaysSince)
		}
	}
	return b.String(), nil
}

type directiveQueryParams struct {
	Query string `json:"query" description:"Question about AER directive requirements"`
}

func (d Deps) searchDirectives(ctx context.Context, p directiveQueryParams) (string, error) {
	if d.Searcher == nil {
		return knowledge.FallbackAnswer, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.SearchTimeout)
	defer cancel()

	res, err := d.Searcher.Search(ctx, p.Query, 3)
	if err != nil {
		// The collaborator being unavailable never fails an audit.
		slog.Warn("directive search degraded to fallback", "error", err)
		return knowledge.FallbackAnswer, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "AER Directive Guidance:\n\n%s\n", res.Answer)
	if len(res.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for i, src := range res.Sources {
			if i >= 2 {
				break
			}
			fmt.Fprintf(&b, "  %d. %s (Relevance: %.2f)\n", i+1, src.Document, src.Relevance)
		}
	}
	return b.String(), nil
}

type emailParams struct {
	Recipient string   `json:"recipient" description:"Email address of the compliance officer"`
	Subject   string   `json:"subject" description:"Subject line of the email"`
	Body      string   `json:"body" description:"Full text content of the compliance report"`
	CC        []string `json:"cc,omitempty" description:"CC recipients"`
}

func (d Deps) sendComplianceReport(_ context.Context, p emailParams) (string, error) {
	rec := d.Store.SendEmail(p.Recipient, p.Subject, p.Body, p.CC)
	return fmt.Sprintf("Report emailed successfully to %s. Email ID: %s", p.Recipient, rec.ID), nil
}

type scheduleParams struct {
	Task       string `json:"task" description:"Task description for the scheduled item"`
	Date       string `json:"date" description:"Date for follow-up in YYYY-MM-DD format"`
	FacilityID string `json:"facility_id,omitempty" description:"Associated facility ID"`
}

func (d Deps) scheduleFollowUp(_ context.Context, p scheduleParams) (string, error) {
	rec, err := d.Store.ScheduleTask(p.Task, p.Date, p.FacilityID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Follow-up scheduled: %s on %s. Confirmation ID: %s", p.Task, rec.Date, rec.ID), nil
}

type maintenanceParams struct {
	EquipmentID string `json:"equipment_id" description:"Equipment ID"`
	Action      string `json:"action" description:"Maintenance action taken"`
	Notes       string `json:"notes" description:"Additional notes"`
}

func (d Deps) logMaintenanceAction(_ context.Context, p maintenanceParams) (string, error) {
	rec := d.Store.LogMaintenance(p.EquipmentID, p.Action, p.Notes)
	return fmt.Sprintf("Maintenance logged for %s. Log ID: %s", p.EquipmentID, rec.ID), nil
}
