package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
)

// Resource is one learning resource suggested for a skill.
type Resource struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Link     string `json:"link"`
	Level    string `json:"level"`
}

type ResourceService interface {
	// FindForSkills asks the model for 3 resources per skill, keyed by skill
	// name.
	FindForSkills(ctx context.Context, skills []string) (map[string][]Resource, error)
}

type resourceService struct {
	log    *logger.Logger
	openai OpenAIClient
}

func NewResourceService(log *logger.Logger, openai OpenAIClient) ResourceService {
	return &resourceService{log: log.With("service", "ResourceService"), openai: openai}
}

func (s *resourceService) FindForSkills(ctx context.Context, skills []string) (map[string][]Resource, error) {
	if len(skills) == 0 {
		return map[string][]Resource{}, nil
	}

	s.log.Info("Resource discovery starting", "skill_count", len(skills))

	prompt := BuildResourcePrompt(skills)
	raw, err := s.openai.ChatJSON(ctx, "", prompt, ChatOptions{})
	if err != nil {
		return nil, fmt.Errorf("resource discovery failed: %w", err)
	}

	var resources map[string][]Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("resource discovery returned invalid JSON: %w", err)
	}

	s.log.Info("Resource discovery succeeded", "skills_covered", len(resources))
	return resources, nil
}
