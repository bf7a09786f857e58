// Package compliance implements the calibration-interval rule the audit
// agent checks equipment against. The evaluation is a pure function of the
// equipment list and an explicit reference time, so results are
// reproducible under test.
package compliance

import (
	"time"

	"github.com/SuedePritch/auditagents/internal/mockops"
)

// MaxIntervalDays is the maximum allowed age of a calibration under
// Directive 017. Exactly this many days is still compliant.
const MaxIntervalDays = 365

// Finding is the derived compliance classification of one equipment item.
// Findings are computed fresh on every check and never stored.
type Finding struct {
	EquipmentID     string
	Type            string
	LastCalibration string
	DaysSince       int
	DaysOverdue     int // 0 when compliant
	Criticality     mockops.Criticality
}

// Evaluate classifies equipment against the calibration interval as of now.
// Items without a last-calibration date are exempt and appear in neither
// group; input order is preserved within each group. Items whose date fails
// to parse are treated as exempt as well.
func Evaluate(equipment []mockops.Equipment, now time.Time) (nonCompliant, compliant []Finding) {
	for _, item := range equipment {
		if item.LastCalibration == "" {
			continue
		}
		lastCal, err := time.Parse(mockops.DateLayout, item.LastCalibration)
		if err != nil {
			continue
		}

		// Compare calendar dates, not elapsed hours: lastCal parses as
		// UTC midnight while now carries its own location.
		nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		daysSince := int(nowDate.Sub(lastCal).Hours() / 24)
		criticality := item.Criticality
		if criticality == "" {
			criticality = "Unknown"
		}

		f := Finding{
			EquipmentID:     item.ID,
			Type:            item.Type,
			LastCalibration: item.LastCalibration,
			DaysSince:       daysSince,
			Criticality:     criticality,
		}
		if daysSince > MaxIntervalDays {
			f.DaysOverdue = daysSince - MaxIntervalDays
			nonCompliant = append(nonCompliant, f)
		} else {
			compliant = append(compliant, f)
		}
	}
	return nonCompliant, compliant
}
