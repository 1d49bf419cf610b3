package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"roamio/internal/models/response_models"
	"roamio/pkg/utils"
)

type ExportServiceInterface interface {
	ExportCSV(result response_models.PlanResult) ([]byte, string, error)
	ExportPDF(result response_models.PlanResult) ([]byte, string, error)
}

// ExportService derives downloadable documents from an already-normalized
// itinerary. Pure data transformation; nothing here talks to the model.
type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) ExportServiceInterface {
	return &ExportService{logger: logger}
}

func (s *ExportService) ExportCSV(result response_models.PlanResult) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Day", "Date", "Theme", "Time", "Category", "Description", "Cost"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("write csv header: %w", err)
	}

	for _, day := range result.Itinerary.Days {
		for _, act := range day.Activities {
			record := []string{
				strconv.Itoa(day.Day),
				day.Date,
				day.Theme,
				act.TimeSlot,
				act.Category,
				act.Description,
				fmt.Sprintf("%.2f", act.EstimatedCost),
			}
			if err := w.Write(record); err != nil {
				return nil, "", fmt.Errorf("write csv record: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	filename := fmt.Sprintf("itinerary-%s.csv", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func (s *ExportService) ExportPDF(result response_models.PlanResult) ([]byte, string, error) {
	it := result.Itinerary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Roamio", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	if result.IsFallback {
		pdf.SetFillColor(255, 248, 225)
		pdf.SetDrawColor(212, 168, 67)
		pdf.SetTextColor(130, 90, 20)
		pdf.SetFont("Helvetica", "I", 8)
		y := pdf.GetY()
		pdf.Rect(20, y, 170, 12, "FD")
		pdf.SetXY(23, y+2)
		pdf.MultiCell(164, 4, "This plan was generated locally without the travel model. Treat it as a starting point, not a recommendation.", "", "C", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		pdf.Ln(4)
	}

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", it.Destination)
	row("Days", strconv.Itoa(len(it.Days)))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	sectionHeader("Budget Breakdown")
	categories := make([]string, 0, len(it.Budget))
	for c := range it.Budget {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		row(c, utils.FormatCurrency(it.Budget[c], "USD"))
	}
	row("Total", utils.FormatCurrency(it.Budget.Total(), "USD"))
	pdf.Ln(4)

	for _, day := range it.Days {
		sectionHeader(fmt.Sprintf("Day %d: %s (%s)", day.Day, day.Theme, day.Date))
		for _, act := range day.Activities {
			row(act.TimeSlot, fmt.Sprintf("%s | %s | %s",
				act.Description, act.Category, utils.FormatCurrency(act.EstimatedCost, "USD")))
		}
		row("Daily total", utils.FormatCurrency(day.DailyTotal, "USD"))
		pdf.Ln(2)
	}

	if len(it.Recommendations) > 0 {
		sectionHeader("Recommendations")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		for _, rec := range it.Recommendations {
			pdf.MultiCell(170, 5, "- "+rec, "", "L", false)
		}
		pdf.Ln(2)
	}

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Generated by Roamio - estimates only, verify prices before booking", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf output: %w", err)
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
