package dashboard

// ========== ATTENDANCE (daily roster) ==========

// PresencePoint is one day of the presence time series. Dates with zero
// present rows are omitted from the series, not zero-filled.
type PresencePoint struct {
	Date  string `json:"date"` // Format: "YYYY-MM-DD"
	Count int    `json:"count"`
}

// SituationGroup is one non-present situation on the latest roster date,
// with names clustered by grouping key for drill-down.
type SituationGroup struct {
	Situation string         `json:"situation"`
	Total     int            `json:"total"`
	Groups    []GroupedNames `json:"groups"`
}

type GroupedNames struct {
	GroupingKey string   `json:"grouping_key"`
	Names       []string `json:"names"`
}

// SituationBreakdownResponse covers the single latest date across the
// whole roster, regardless of any requested range.
type SituationBreakdownResponse struct {
	Date       string           `json:"date"` // Format: "YYYY-MM-DD"
	Situations []SituationGroup `json:"situations"`
}

// AttendanceDashboardResponse is the combined payload for the attendance
// dashboard view.
type AttendanceDashboardResponse struct {
	PresenceSeries     []PresencePoint            `json:"presence_series"`
	SituationBreakdown SituationBreakdownResponse `json:"situation_breakdown"`
}

// ========== PRODUCTIVITY (time entries) ==========

// DailyHours is the summed decimal hours worked on one date.
type DailyHours struct {
	Date  string  `json:"date"` // Format: "YYYY-MM-DD"
	Hours float64 `json:"hours"`
}

// GroupHours is the summed decimal hours for one grouping key.
type GroupHours struct {
	GroupingKey string  `json:"grouping_key"`
	Hours       float64 `json:"hours"`
}

// EquipmentHours is the summed decimal hours for one equipment tag.
type EquipmentHours struct {
	EquipmentTag string  `json:"equipment_tag"`
	Hours        float64 `json:"hours"`
}

// ProductivityResponse is the per-month productivity dashboard payload.
// GroupFilter echoes the drill-down key applied to the equipment view,
// empty when unfiltered.
type ProductivityResponse struct {
	Month       string           `json:"month"` // Format: "MM/YYYY"
	HoursPerDay []DailyHours     `json:"hours_per_day"`
	HoursGroup  []GroupHours     `json:"hours_per_group"`
	HoursEquip  []EquipmentHours `json:"hours_per_equipment"`
	GroupFilter string           `json:"group_filter,omitempty"`
}
