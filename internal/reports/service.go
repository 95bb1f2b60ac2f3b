package reports

import (
	"context"
	"errors"

	"github.com/knotapp/circle-management-backend/middleware"
)

var (
	ErrManagerOnly   = errors.New("only owners and admins can export reports")
	ErrEventNotFound = errors.New("event not found")
)

// Service assembles report rows and hands them to the exporter.
type Service struct {
	Repo     *Repository
	Exporter ReportExporter
}

func NewService(repo *Repository, exporter ReportExporter) *Service {
	return &Service{Repo: repo, Exporter: exporter}
}

// ===========================
// 📊 Attendance report across events
func (s *Service) ExportAttendance(ctx context.Context, accessContext middleware.AccessContext, format string, f Filters) ([]byte, string, string, error) {
	if !accessContext.IsManager() {
		return nil, "", "", ErrManagerOnly
	}

	rows, err := s.Repo.GetAttendanceRows(ctx, accessContext.CircleID, f)
	if err != nil {
		return nil, "", "", err
	}

	members, err := s.Repo.MemberCount(ctx, accessContext.CircleID)
	if err != nil {
		return nil, "", "", err
	}

	for i := range rows {
		noResponse := members - rows[i].Yes - rows[i].No - rows[i].Maybe
		if noResponse < 0 {
			noResponse = 0
		}
		rows[i].NoResponse = noResponse
	}

	return s.Exporter.Export(ReportTypeAttendance, format, ReportData{Attendance: rows})
}

// ===========================
// 💰 Collection report across events
func (s *Service) ExportCollection(ctx context.Context, accessContext middleware.AccessContext, format string, f Filters) ([]byte, string, string, error) {
	if !accessContext.IsManager() {
		return nil, "", "", ErrManagerOnly
	}

	rows, err := s.Repo.GetCollectionRows(ctx, accessContext.CircleID, f)
	if err != nil {
		return nil, "", "", err
	}

	for i := range rows {
		rows[i].Collected = rows[i].Fee * rows[i].PaidCount
		rows[i].Outstanding = rows[i].Fee * rows[i].UnpaidCount
	}

	return s.Exporter.Export(ReportTypeCollection, format, ReportData{Collection: rows})
}

// ===========================
// 📄 Roster detail for one event
func (s *Service) ExportEventDetail(ctx context.Context, accessContext middleware.AccessContext, eventID uint, format string) ([]byte, string, string, error) {
	if !accessContext.IsManager() {
		return nil, "", "", ErrManagerOnly
	}

	ok, err := s.Repo.EventInCircle(ctx, eventID, accessContext.CircleID)
	if err != nil {
		return nil, "", "", err
	}
	if !ok {
		return nil, "", "", ErrEventNotFound
	}

	rows, err := s.Repo.GetEventDetailRows(ctx, accessContext.CircleID, eventID)
	if err != nil {
		return nil, "", "", err
	}

	return s.Exporter.Export(ReportTypeEventDetail, format, ReportData{EventDetail: rows})
}
