package mockops

import "time"

// seedFacilities builds the demo reference data. Calibration and inspection
// dates are computed relative to now so FAC-AB-001 always contains two
// items past the 365-day calibration interval.
func seedFacilities(now time.Time) []Facility {
	daysAgo := func(n int) string {
		return now.AddDate(0, 0, -n).Format(DateLayout)
	}

	return []Facility{
		{
			FacilityID: "FAC-AB-001",
			Name:       "Edmonton South Terminal",
			Location:   "Edmonton, AB",
			Operator:   "PetroLab Energy",
			Equipment: []Equipment{
				{
					ID:                "EQ-PUMP-01",
					Type:              "Glycol Pump",
					DirectiveCategory: "Directive 017",
					Status:            StatusActive,
					LastCalibration:   daysAgo(400),
					Criticality:       CriticalityHigh,
				},
				{
					ID:                "EQ-METER-04",
					Type:              "Gas Flow Meter",
					DirectiveCategory: "Directive 017",
					Status:            StatusActive,
					LastCalibration:   daysAgo(120),
					Criticality:       CriticalityCritical,
				},
				{
					ID:                "EQ-FLARE-02",
					Type:              "Flare Stack",
					DirectiveCategory: "Directive 060",
					Status:            StatusActive,
					LastInspection:    daysAgo(20),
					Criticality:       CriticalityHigh,
				},
				{
					ID:                "EQ-METER-05",
					Type:              "Differential Pressure Meter",
					DirectiveCategory: "Directive 017",
					Status:            StatusActive,
					LastCalibration:   daysAgo(380),
					Criticality:       CriticalityHigh,
				},
			},
		},
		{
			FacilityID: "FAC-AB-002",
			Name:       "Calgary Processing Plant",
			Location:   "Calgary, AB",
			Operator:   "PetroLab Energy",
			Equipment: []Equipment{
				{
					ID:                "EQ-METER-10",
					Type:              "Turbine Meter",
					DirectiveCategory: "Directive 017",
					Status:            StatusActive,
					LastCalibration:   daysAgo(90),
					Criticality:       CriticalityCritical,
				},
			},
		},
	}
}
