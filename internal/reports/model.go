package reports

import "time"

const (
	ReportTypeAttendance  = "attendance"
	ReportTypeCollection  = "collection"
	ReportTypeEventDetail = "event_detail"

	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// AttendanceReportRow summarizes RSVP responses for one event.
type AttendanceReportRow struct {
	EventID    uint      `json:"event_id"`
	Title      string    `json:"title"`
	Datetime   time.Time `json:"datetime"`
	Yes        int       `json:"yes"`
	No         int       `json:"no"`
	Maybe      int       `json:"maybe"`
	NoResponse int       `json:"no_response"`
	Capacity   *int      `json:"capacity"`
}

// CollectionReportRow summarizes fee collection for one event.
type CollectionReportRow struct {
	EventID     uint      `json:"event_id"`
	Title       string    `json:"title"`
	Datetime    time.Time `json:"datetime"`
	Fee         int       `json:"fee"`
	PaidCount   int       `json:"paid_count"`
	UnpaidCount int       `json:"unpaid_count"`
	Collected   int       `json:"collected"`
	Outstanding int       `json:"outstanding"`
}

// EventDetailReportRow is one roster line for a single event: who answered
// what, and where their fee stands.
type EventDetailReportRow struct {
	DisplayName   string     `json:"display_name"`
	UserID        string     `json:"user_id"`
	RsvpStatus    string     `json:"rsvp_status"`
	PaymentStatus string     `json:"payment_status"`
	PaidAt        *time.Time `json:"paid_at"`
}

// ReportData carries the rows for whichever report is being exported.
type ReportData struct {
	Attendance  []AttendanceReportRow
	Collection  []CollectionReportRow
	EventDetail []EventDetailReportRow
}

// Filters narrows report queries by date range.
type Filters struct {
	From *time.Time
	To   *time.Time
}
