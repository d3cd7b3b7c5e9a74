package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/response_models"
)

func sampleItinerary(t *testing.T) *response_models.TravelItinerary {
	t.Helper()
	it, err := parseItinerary(mustJSON(t, validDocument(3)))
	require.NoError(t, err)
	it.AdditionalInfo.PackingTips = []string{"Light jacket", "Comfortable shoes"}
	it.AdditionalInfo.Transportation = []string{"Metro day pass", "Walking"}
	return it
}

func TestRenderItineraryPDF(t *testing.T) {
	svc := NewExportService()

	out, err := svc.RenderItineraryPDF("Paris long weekend", sampleItinerary(t))
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderItineraryPDF_SparseDocument(t *testing.T) {
	// A degraded save may carry empty optional lists and activity slots; the
	// renderer must still produce a valid document.
	it, err := parseItinerary(mustJSON(t, validDocument(1)))
	require.NoError(t, err)
	it.Itinerary[0].Afternoon = nil
	it.Itinerary[0].Evening = nil
	it.Itinerary[0].Meals = nil

	out, renderErr := NewExportService().RenderItineraryPDF("Day trip", it)
	require.NoError(t, renderErr)
	assert.Equal(t, "%PDF", string(out[:4]))
}
