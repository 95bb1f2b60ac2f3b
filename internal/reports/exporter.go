package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	mimeCSV   = "text/csv"
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF   = "application/pdf"
)

// ReportExporter renders report rows in the requested format.
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeAttendance:
		return e.exportAttendanceByFormat(format, timestamp, data.Attendance)
	case ReportTypeCollection:
		return e.exportCollectionByFormat(format, timestamp, data.Collection)
	case ReportTypeEventDetail:
		return e.exportEventDetailByFormat(format, timestamp, data.EventDetail)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

//// ============================
/// ATTENDANCE REPORT
//// ============================

func (e *reportExporter) exportAttendanceByFormat(format, timestamp string, rows []AttendanceReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.exportAttendanceCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("attendance_report_%s.csv", timestamp), mimeCSV, nil

	case FormatExcel:
		data, err := e.exportAttendanceExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("attendance_report_%s.xlsx", timestamp), mimeExcel, nil

	case FormatPDF:
		data, err := e.exportAttendancePDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("attendance_report_%s.pdf", timestamp), mimePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for attendance report: %s", format)
	}
}

func capacityCell(capacity *int) string {
	if capacity == nil {
		return "unlimited"
	}
	return strconv.Itoa(*capacity)
}

func (e *reportExporter) exportAttendanceCSV(rows []AttendanceReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Event ID", "Title", "Date", "Yes", "No", "Maybe", "No Response", "Capacity"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.Title,
			r.Datetime.Format("2006-01-02 15:04"),
			strconv.Itoa(r.Yes),
			strconv.Itoa(r.No),
			strconv.Itoa(r.Maybe),
			strconv.Itoa(r.NoResponse),
			capacityCell(r.Capacity),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportAttendanceExcel(rows []AttendanceReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Event ID", "Title", "Date", "Yes", "No", "Maybe", "No Response", "Capacity"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.EventID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Title)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Datetime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Yes)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.No)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Maybe)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.NoResponse)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), capacityCell(r.Capacity))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportAttendancePDF(rows []AttendanceReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Title", "Date", "Yes", "No", "Maybe", "No Resp", "Capacity"}
	widths := []float64{15, 90, 40, 20, 20, 20, 25, 30}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, strconv.FormatUint(uint64(r.EventID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Datetime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, strconv.Itoa(r.Yes), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, strconv.Itoa(r.No), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 7, strconv.Itoa(r.Maybe), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 7, strconv.Itoa(r.NoResponse), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 7, capacityCell(r.Capacity), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// COLLECTION REPORT
//// ============================

func (e *reportExporter) exportCollectionByFormat(format, timestamp string, rows []CollectionReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.exportCollectionCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("collection_report_%s.csv", timestamp), mimeCSV, nil

	case FormatExcel:
		data, err := e.exportCollectionExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("collection_report_%s.xlsx", timestamp), mimeExcel, nil

	case FormatPDF:
		data, err := e.exportCollectionPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("collection_report_%s.pdf", timestamp), mimePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for collection report: %s", format)
	}
}

func (e *reportExporter) exportCollectionCSV(rows []CollectionReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Event ID", "Title", "Date", "Fee", "Paid", "Unpaid", "Collected", "Outstanding"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.Title,
			r.Datetime.Format("2006-01-02 15:04"),
			strconv.Itoa(r.Fee),
			strconv.Itoa(r.PaidCount),
			strconv.Itoa(r.UnpaidCount),
			strconv.Itoa(r.Collected),
			strconv.Itoa(r.Outstanding),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportCollectionExcel(rows []CollectionReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Collection"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Event ID", "Title", "Date", "Fee", "Paid", "Unpaid", "Collected", "Outstanding"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.EventID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Title)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Datetime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Fee)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.PaidCount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.UnpaidCount)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Collected)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.Outstanding)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportCollectionPDF(rows []CollectionReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Fee Collection Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Title", "Date", "Fee", "Paid", "Unpaid", "Collected", "Outstanding"}
	widths := []float64{15, 80, 40, 25, 20, 20, 30, 30}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, strconv.FormatUint(uint64(r.EventID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.Datetime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, strconv.Itoa(r.Fee), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, strconv.Itoa(r.PaidCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 7, strconv.Itoa(r.UnpaidCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 7, strconv.Itoa(r.Collected), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 7, strconv.Itoa(r.Outstanding), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// EVENT DETAIL REPORT
//// ============================

func (e *reportExporter) exportEventDetailByFormat(format, timestamp string, rows []EventDetailReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.exportEventDetailCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("event_detail_%s.csv", timestamp), mimeCSV, nil

	case FormatExcel:
		data, err := e.exportEventDetailExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("event_detail_%s.xlsx", timestamp), mimeExcel, nil

	case FormatPDF:
		data, err := e.exportEventDetailPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("event_detail_%s.pdf", timestamp), mimePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for event detail report: %s", format)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func paidAtCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func (e *reportExporter) exportEventDetailCSV(rows []EventDetailReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Member", "User ID", "RSVP", "Payment", "Paid At"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.DisplayName,
			r.UserID,
			orDash(r.RsvpStatus),
			orDash(r.PaymentStatus),
			paidAtCell(r.PaidAt),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventDetailExcel(rows []EventDetailReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Event Detail"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Member", "User ID", "RSVP", "Payment", "Paid At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.DisplayName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.UserID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), orDash(r.RsvpStatus))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), orDash(r.PaymentStatus))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), paidAtCell(r.PaidAt))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventDetailPDF(rows []EventDetailReportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Event Roster Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Member", "RSVP", "Payment", "Paid At"}
	widths := []float64{70, 30, 30, 50}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, r.DisplayName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, orDash(r.RsvpStatus), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, orDash(r.PaymentStatus), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, paidAtCell(r.PaidAt), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
