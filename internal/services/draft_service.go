package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/mem"
	"globetrotter/pkg/utils"
)

type DraftServiceInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (*resp.ItineraryDraft, error)
	TripOverview(ctx context.Context, name string, description string) (string, error)
	CreateTripFromDraft(ctx context.Context, userID string, request req.CreateTripFromDraftRequest) (string, error)
}

const itinerarySystemPrompt = `You are an expert travel planner. Generate a detailed, day-by-day itinerary based on the user's request.

IMPORTANT: You must respond with ONLY a valid JSON object. Do not include any other text, explanations, or markdown formatting.

The JSON structure must be exactly:
{
  "stops": [
    {
      "day": 1,
      "title": "Day 1: Arrival and City Center",
      "activities": [
        {
          "title": "Activity name",
          "start_time": "9:00 AM",
          "description": "Brief description of the activity",
          "estimated_cost": 50
        }
      ]
    }
  ]
}

Rules:
- Each day must have a descriptive title
- Each activity needs title, start_time, description, and estimated_cost (as number)
- Ensure realistic timing and costs
- Include 3-5 activities per day
- Make sure the JSON is valid and complete`

const overviewSystemPrompt = "You are a concise, inspiring travel copywriter. " +
	"Return 1 sentence under 32 words. Avoid emojis and cliches; suggest vibe and pace."

const overviewCacheTTL = 10 * time.Minute

type DraftService struct {
	tripRepo  repositories.TripRepository
	textGen   utils.TextGenClientInterface
	overviews mem.OverviewCache
}

func NewDraftService(
	tripRepo repositories.TripRepository,
	textGen utils.TextGenClientInterface,
	overviews mem.OverviewCache,
) DraftServiceInterface {
	return &DraftService{
		tripRepo:  tripRepo,
		textGen:   textGen,
		overviews: overviews,
	}
}

// GenerateItinerary asks the text model for a day-by-day plan and
// extracts the JSON object from whatever prose surrounds it. The raw
// text is logged on rejection for diagnosis; it is never shown to the
// user and never "repaired" beyond the brace extraction.
func (s *DraftService) GenerateItinerary(ctx context.Context, prompt string) (*resp.ItineraryDraft, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, utils.ErrInvalidInput
	}

	raw, err := s.textGen.GenerateText(ctx, itinerarySystemPrompt, prompt)
	if err != nil {
		log.Printf("itinerary generation call failed: %v", err)
		return nil, utils.ErrInvalidAIResponse
	}

	cleaned, err := utils.ExtractJSONObject(raw)
	if err != nil {
		log.Printf("itinerary extraction failed: %v; raw response: %s", err, raw)
		return nil, utils.ErrInvalidAIResponse
	}

	var draft resp.ItineraryDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		log.Printf("itinerary parse failed: %v; raw response: %s", err, raw)
		return nil, utils.ErrInvalidAIResponse
	}
	if len(draft.Stops) == 0 {
		log.Printf("itinerary missing stops; raw response: %s", raw)
		return nil, utils.ErrInvalidAIResponse
	}

	for i := range draft.Stops {
		for j := range draft.Stops[i].Activities {
			if draft.Stops[i].Activities[j].EstimatedCost < 0 {
				draft.Stops[i].Activities[j].EstimatedCost = 0
			}
		}
	}

	return &draft, nil
}

// TripOverview produces a one-sentence blurb for a trip, cached briefly
// so page re-renders do not re-bill the model.
func (s *DraftService) TripOverview(ctx context.Context, name string, description string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", utils.ErrInvalidInput
	}

	if cached, ok := s.overviews.Get(name); ok {
		return cached, nil
	}

	userPrompt := fmt.Sprintf("Trip: %s\nDetails: %s", name, description)
	summary, err := s.textGen.GenerateText(ctx, overviewSystemPrompt, userPrompt)
	if err != nil {
		log.Printf("overview generation failed: %v", err)
		return "", utils.ErrInvalidAIResponse
	}
	summary = strings.TrimSpace(summary)

	s.overviews.Set(name, summary, overviewCacheTTL)
	return summary, nil
}

// CreateTripFromDraft materializes a generated itinerary as a private
// trip: one stop per draft day, dated startDate+day-1, order_index
// zero-based like manually added stops, activities linked to their
// day's stop.
func (s *DraftService) CreateTripFromDraft(ctx context.Context, userID string, request req.CreateTripFromDraftRequest) (string, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return "", utils.ErrUnauthenticated
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	if end.Before(start) {
		return "", utils.ErrInvalidInput
	}

	description := fmt.Sprintf("An AI-generated trip to %s.", request.Destination)
	trip := dbm.Trip{
		UserID:      owner,
		Name:        request.Name,
		Description: &description,
		StartDate:   start,
		EndDate:     end,
		IsPublic:    false,
	}

	stops := make([]dbm.TripStop, 0, len(request.Stops))
	activitiesByStop := make(map[int][]dbm.Activity, len(request.Stops))

	for i, day := range request.Stops {
		if day.Day < 1 {
			return "", utils.ErrInvalidInput
		}
		stopDate := utils.AddDays(start, day.Day-1)
		stops = append(stops, dbm.TripStop{
			City:       day.Title,
			StartDate:  stopDate,
			EndDate:    stopDate,
			OrderIndex: day.Day - 1,
		})

		acts := make([]dbm.Activity, 0, len(day.Activities))
		for _, a := range day.Activities {
			cost := a.EstimatedCost
			if cost < 0 {
				cost = 0
			}
			notes := a.Description
			startTime := a.StartTime
			acts = append(acts, dbm.Activity{
				Title:         a.Title,
				Notes:         &notes,
				StartTime:     &startTime,
				EstimatedCost: &cost,
			})
		}
		activitiesByStop[i] = acts
	}

	tripID, err := s.tripRepo.MaterializeDraft(ctx, &trip, stops, activitiesByStop)
	if err != nil {
		return "", utils.ErrWriteFailed
	}
	return tripID.String(), nil
}
