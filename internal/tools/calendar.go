package tools

import (
	"fmpmcp"
	"fmpmcp/internal/fmp"
)

var calendarEndpoints = map[string]string{
	"dividends":          "dividends",
	"dividends_calendar": "dividends-calendar",
	"earnings":           "earnings",
	"earnings_calendar":  "earnings-calendar",
	"ipos_calendar":      "ipos-calendar",
	"ipos_disclosure":    "ipos-disclosure",
	"ipos_prospectus":    "ipos-prospectus",
	"splits":             "splits",
	"splits_calendar":    "splits-calendar",
}

// NewCorporateCalendar returns the corporate_calendar tool: dividend, earnings,
// IPO, and split calendars keyed by an enumerated type.
func NewCorporateCalendar(c *fmp.Client) (fmpmcp.Tool, error) {
	return newGroupedTool(c, "corporate_calendar",
		"Get corporate calendar data: dividends, earnings, IPOs, and splits.",
		"calendar_type", "Which calendar dataset to fetch", calendarEndpoints)
}
