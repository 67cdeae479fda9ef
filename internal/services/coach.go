package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/repos"
)

// CoachService answers one coaching turn. Any internal failure degrades to a
// fixed apology addressed to the user, never an error code.
type CoachService interface {
	Reply(ctx context.Context, userID uuid.UUID, message string) string
}

type coachService struct {
	log          *logger.Logger
	userState    repos.UserStateRepo
	userResource repos.UserResourceRepo
	openai       OpenAIClient
}

func NewCoachService(log *logger.Logger, userState repos.UserStateRepo, userResource repos.UserResourceRepo, openai OpenAIClient) CoachService {
	return &coachService{
		log:          log.With("service", "CoachService"),
		userState:    userState,
		userResource: userResource,
		openai:       openai,
	}
}

const coachFallbackName = "You"

func (s *coachService) Reply(ctx context.Context, userID uuid.UUID, message string) string {
	name := coachFallbackName

	state, err := s.userState.GetByUserID(ctx, nil, userID)
	if err != nil {
		s.log.Warn("Coach state load failed", "user_id", userID.String(), "error", err)
		return apology(name)
	}
	if state.FullName != "" {
		name = state.FullName
	}

	resources, err := s.userResource.ListByUserID(ctx, nil, userID)
	if err != nil {
		s.log.Warn("Coach resource load failed", "user_id", userID.String(), "error", err)
		return apology(name)
	}

	career := state.CurrentCareer
	if career == "" {
		career = "your target role"
	}

	prompt := BuildCoachPrompt(
		name,
		career,
		decodeStringList(state.MissingSkills),
		decodeStringList(state.LearningPlan),
		resources,
		message,
	)

	temperature := 0.6
	reply, err := s.openai.ChatText(ctx, coachSystemInstruction, prompt, ChatOptions{
		Temperature: &temperature,
		MaxTokens:   400,
	})
	if err != nil {
		s.log.Warn("Coach completion failed", "user_id", userID.String(), "error", err)
		return apology(name)
	}

	return strings.TrimSpace(reply)
}

func apology(name string) string {
	return fmt.Sprintf("Sorry %s, something went wrong. Please try again.", name)
}

func decodeStringList(blob datatypes.JSON) []string {
	if len(blob) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil
	}
	return items
}
