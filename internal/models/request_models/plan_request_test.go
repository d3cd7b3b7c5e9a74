package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/pkg/utils"
)

func validPlanRequest() PlanRequest {
	return PlanRequest{
		Destination:   "Barcelona",
		StartDate:     "2025-09-12",
		EndDate:       "2025-09-16",
		Budget:        "moderate",
		Accommodation: "hotel",
		Travelers:     "friends",
		DietaryPlan:   "none",
	}
}

func TestPlanRequestValidate_OK(t *testing.T) {
	req := validPlanRequest()
	require.NoError(t, req.Validate())

	req.Notes = "first time in Spain"
	require.NoError(t, req.Validate())
}

func TestPlanRequestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *PlanRequest)
		wantMsg string
	}{
		{"blank destination", func(r *PlanRequest) { r.Destination = "   " }, "destination"},
		{"bad start date", func(r *PlanRequest) { r.StartDate = "12/09/2025" }, "start_date"},
		{"bad end date", func(r *PlanRequest) { r.EndDate = "Sept 16" }, "end_date"},
		{"end before start", func(r *PlanRequest) { r.EndDate = "2025-09-01" }, "before"},
		{"unknown budget", func(r *PlanRequest) { r.Budget = "cheap" }, "budget"},
		{"unknown accommodation", func(r *PlanRequest) { r.Accommodation = "tent" }, "accommodation"},
		{"unknown travelers", func(r *PlanRequest) { r.Travelers = "crowd" }, "travelers"},
		{"unknown dietary plan", func(r *PlanRequest) { r.DietaryPlan = "carnivore" }, "dietary_plan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPlanRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.ErrorIs(t, err, utils.ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPlanRequestValidate_SingleDayTrip(t *testing.T) {
	req := validPlanRequest()
	req.EndDate = req.StartDate
	assert.NoError(t, req.Validate())
}
