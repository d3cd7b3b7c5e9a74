package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"voyago/internal/models/response_models"
)

type ExportServiceInterface interface {
	RenderItineraryPDF(title string, itinerary *response_models.TravelItinerary) ([]byte, error)
}

// ExportService renders a stored itinerary to a printable PDF. The document
// shape is already guaranteed by the planner, so rendering is best-effort
// formatting with no further validation.
type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (s *ExportService) RenderItineraryPDF(title string, itinerary *response_models.TravelItinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	ov := itinerary.TripOverview
	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Destination: %s", ov.Destination),
		fmt.Sprintf("Dates: %s (%s)", ov.Dates, ov.Duration),
		fmt.Sprintf("Budget: %s | Accommodation: %s", ov.BudgetLevel, ov.Accommodation),
		fmt.Sprintf("Travelers: %s | Dietary plan: %s", ov.Travelers, ov.DietaryPlan),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	for _, day := range itinerary.Itinerary {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		pdf.Ln(9)

		if day.Description != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, day.Description, "", "L", false)
			pdf.Ln(2)
		}

		writeSlot(pdf, "Morning", day.Morning)
		writeSlot(pdf, "Afternoon", day.Afternoon)
		writeSlot(pdf, "Evening", day.Evening)

		if len(day.Meals) > 0 {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 7, "Meals")
			pdf.Ln(7)
			pdf.SetFont("Arial", "", 10)
			for _, meal := range day.Meals {
				line := fmt.Sprintf("%s - %s (%s), %s", meal.Time, meal.Restaurant, meal.Cuisine, meal.CostRange)
				if meal.ReservationRequired {
					line += " [reservation required]"
				}
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
		}
		pdf.Ln(5)
	}

	info := itinerary.AdditionalInfo
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 9, "Good to know")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Weather: %s", info.WeatherForecast), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Currency: %s (%.2f per USD)", info.LocalCurrency.Code, info.LocalCurrency.ExchangeRate), "", "L", false)

	emergency := fmt.Sprintf("Emergency: police %s, ambulance %s", info.Emergency.Police, info.Emergency.Ambulance)
	if info.Emergency.TouristPolice != "" {
		emergency += fmt.Sprintf(", tourist police %s", info.Emergency.TouristPolice)
	}
	pdf.MultiCell(0, 5, emergency, "", "L", false)

	writeList(pdf, "Packing tips", info.PackingTips)
	writeList(pdf, "Transportation", info.Transportation)
	writeList(pdf, "Local customs", info.LocalCustoms)
	writeList(pdf, "Money-saving tips", info.MoneySavingTips)
	writeList(pdf, "Useful phrases", info.UsefulPhrases)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSlot(pdf *gofpdf.Fpdf, name string, activities []response_models.Activity) {
	if len(activities) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, name)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, act := range activities {
		line := fmt.Sprintf("%s - %s @ %s", act.Time, act.Title, act.Location)
		if act.Cost != "" {
			line += fmt.Sprintf(" (%s)", act.Cost)
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(1)
}

func writeList(pdf *gofpdf.Fpdf, name string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, name)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "- "+strings.Join(items, "\n- "), "", "L", false)
}
