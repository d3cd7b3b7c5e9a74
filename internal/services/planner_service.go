package services

import (
	"context"
	"log"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req *request_models.PlanRequest) (*response_models.PlanResult, error)
}

// PlannerService sequences one generation attempt: defensive validation,
// prompt construction, model call, extraction, validation, reconciliation.
// Each invocation is isolated; there is no shared state and no retry.
type PlannerService struct {
	generator utils.GenerationClientInterface
	facts     DestinationFactsProvider
}

func NewPlannerService(generator utils.GenerationClientInterface, facts DestinationFactsProvider) PlannerServiceInterface {
	return &PlannerService{
		generator: generator,
		facts:     facts,
	}
}

type factsResult struct {
	facts *response_models.DestinationFacts
	err   error
}

// PlanTrip returns a complete itinerary or exactly one typed error; no
// partial document ever leaves this method. The destination-facts fetch is
// independent of generation and runs concurrently with it; its failure is the
// one non-fatal stage and only marks the result degraded.
func (s *PlannerService) PlanTrip(ctx context.Context, req *request_models.PlanRequest) (*response_models.PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	factsCh := make(chan factsResult, 1)
	go func() {
		facts, err := s.facts.GetDestinationFacts(ctx, req.Destination)
		factsCh <- factsResult{facts: facts, err: err}
	}()

	prompt := BuildItineraryPrompt(req)

	raw, err := s.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}

	jsonText, err := utils.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	itinerary, err := parseItinerary(jsonText)
	if err != nil {
		return nil, err
	}

	result := &response_models.PlanResult{Itinerary: itinerary}

	fr := <-factsCh
	if fr.err != nil {
		// Keep the model-authored weather/currency/emergency values rather
		// than failing a successful generation; the caller can warn the user.
		log.Printf("proceeding with degraded itinerary for %q: %v", req.Destination, fr.err)
		result.Degraded = true
		return result, nil
	}

	reconcileFacts(itinerary, fr.facts)
	return result, nil
}
