package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	mem "gompa/pkg/memcache"
	"gompa/pkg/utils"
)

type ExportServiceInterface interface {
	ExportItineraryPDF(ctx context.Context, itineraryID string) ([]byte, error)
}

type ExportService struct {
	sessions  mem.ItinerarySessionStore
	estimates EstimateConfig
}

func NewExportService(sessions mem.ItinerarySessionStore) ExportServiceInterface {
	return &ExportService{
		sessions:  sessions,
		estimates: DefaultEstimateConfig,
	}
}

// ExportItineraryPDF renders the current trip (day plan, events, summary)
// to a PDF document.
func (s *ExportService) ExportItineraryPDF(ctx context.Context, itineraryID string) ([]byte, error) {
	it, ok := s.sessions.Snapshot(itineraryID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}

	summary := EstimateAggregate(it, DefaultStopsPerDay, s.estimates)
	plan := BuildDayPlan(it.Stops, DefaultStopsPerDay)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Sikkim Monastery Trip", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Itinerary %s", it.ID.String()), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Day-wise plan
	for day, stops := range plan {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, fmt.Sprintf("Day %d", day+1), "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for i, stop := range stops {
			pdf.MultiCell(0, 8, fmt.Sprintf("%d. %s - %s", i+1, stop.Name, stop.Location), "", "L", false)
		}
		pdf.Ln(4)
	}

	// Selected events
	events := it.SortedEvents()
	if len(events) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Festivals & Events", "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, e := range events {
			date := utils.FromUnixSecondsIST(e.Date)
			pdf.MultiCell(0, 8, fmt.Sprintf("%s - %s (%s)", date.Format("02 Jan 2006"), e.Title, e.Location), "", "L", false)
		}
		pdf.Ln(4)
	}

	// Summary footer
	pdf.SetY(-45)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"%d stops over %d days. Estimated %.1f hours, %.0f km, %.0f %s. Estimates use fixed per-stop rates.",
		summary.StopCount, summary.DayCount,
		summary.EstimatedHours, summary.EstimatedKm,
		summary.EstimatedCost, summary.Currency,
	), "T", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
