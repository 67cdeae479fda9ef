package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/clients/github"
	"github.com/ontracklabs/ontrack-backend/internal/clients/leetcode"
	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/repos"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

// Fetcher boundaries for the two enrichment reads. Both signal absence with
// nil instead of an error.
type GithubFetcher interface {
	Fetch(ctx context.Context, username string) *github.Stats
}

type LeetcodeFetcher interface {
	Fetch(ctx context.Context, username string) *leetcode.Stats
}

// CareerService runs the full match pipeline: load profile + assessment,
// enrich with external stats, match a career, persist state, discover and
// persist learning resources.
type CareerService interface {
	Run(ctx context.Context, userID uuid.UUID) error
}

type careerService struct {
	log          *logger.Logger
	onboarding   repos.OnboardingRepo
	assessment   repos.AssessmentRepo
	careerMarket repos.CareerMarketRepo
	userState    repos.UserStateRepo
	userResource repos.UserResourceRepo
	githubClient GithubFetcher
	leetcode     LeetcodeFetcher
	openai       OpenAIClient
	resources    ResourceService
}

func NewCareerService(
	log *logger.Logger,
	onboarding repos.OnboardingRepo,
	assessment repos.AssessmentRepo,
	careerMarket repos.CareerMarketRepo,
	userState repos.UserStateRepo,
	userResource repos.UserResourceRepo,
	githubClient GithubFetcher,
	leetcodeClient LeetcodeFetcher,
	openai OpenAIClient,
	resources ResourceService,
) CareerService {
	return &careerService{
		log:          log.With("service", "CareerService"),
		onboarding:   onboarding,
		assessment:   assessment,
		careerMarket: careerMarket,
		userState:    userState,
		userResource: userResource,
		githubClient: githubClient,
		leetcode:     leetcodeClient,
		openai:       openai,
		resources:    resources,
	}
}

func (s *careerService) Run(ctx context.Context, userID uuid.UUID) error {
	runLog := s.log.With("user_id", userID.String())
	runLog.Info("Career pipeline starting")

	profile, err := s.onboarding.GetByUserID(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("load onboarding: %w", err)
	}

	// A missing assessment degrades to an empty one; only onboarding is
	// mandatory.
	assessment, err := s.assessment.GetByUserID(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		assessment = &types.UserAssessment{UserID: userID}
	} else if err != nil {
		return fmt.Errorf("load assessment: %w", err)
	}

	githubData, leetcodeData := s.fetchEvidence(ctx, assessment)
	assessment.GithubData = githubData
	assessment.LeetcodeData = leetcodeData
	if err := s.assessment.UpdateStats(ctx, nil, userID, githubData, leetcodeData); err != nil {
		return fmt.Errorf("save enrichment data: %w", err)
	}

	careers, err := s.careerMarket.ListRoleNames(ctx, nil)
	if err != nil {
		return fmt.Errorf("load career catalog: %w", err)
	}

	match, err := s.matchCareer(ctx, profile, assessment, careers)
	if err != nil {
		return err
	}

	// Completion flags flip only on a successful, normalized match.
	update := repos.CareerMatchUpdate{
		CurrentCareer:     match.Career,
		CareerExplanation: match.Explanation,
		CurrentSkills:     mustJSON(match.CurrentSkills),
		MissingSkills:     mustJSON(match.MissingSkills),
		LearningPlan:      mustJSON(match.LearningPlan),
	}
	if err := s.userState.UpdateCareerMatch(ctx, nil, userID, update); err != nil {
		return fmt.Errorf("save user state: %w", err)
	}
	runLog.Info("Career match persisted", "career", match.Career, "missing_skills", len(match.MissingSkills))

	resourcesBySkill, err := s.resources.FindForSkills(ctx, match.MissingSkills)
	if err != nil {
		return err
	}

	// Rows go in missing-skill order, then the order the model returned
	// resources within each skill.
	var rows []*types.UserResource
	for _, skill := range match.MissingSkills {
		for _, r := range resourcesBySkill[skill] {
			runLog.Debug("Saving resource", "skill", skill, "title", r.Title)
			rows = append(rows, &types.UserResource{
				UserID:   userID,
				Skill:    skill,
				Title:    r.Title,
				Provider: r.Provider,
				Link:     r.Link,
				Level:    r.Level,
			})
		}
	}
	if err := s.userResource.CreateBatch(ctx, nil, rows); err != nil {
		return fmt.Errorf("save resources: %w", err)
	}

	runLog.Info("Career pipeline done", "resources_saved", len(rows))
	return nil
}

// fetchEvidence runs both stats fetches concurrently. The two reads are
// independent and absence is a valid outcome, so the group never fails.
func (s *careerService) fetchEvidence(ctx context.Context, assessment *types.UserAssessment) (datatypes.JSON, datatypes.JSON) {
	var githubStats *github.Stats
	var leetcodeStats *leetcode.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		githubStats = s.githubClient.Fetch(gctx, assessment.GithubUsername)
		return nil
	})
	g.Go(func() error {
		leetcodeStats = s.leetcode.Fetch(gctx, assessment.LeetcodeUsername)
		return nil
	})
	_ = g.Wait()

	return marshalStats(githubStats), marshalStats(leetcodeStats)
}

func (s *careerService) matchCareer(ctx context.Context, profile *types.UserOnboarding, assessment *types.UserAssessment, careers []string) (*CareerMatch, error) {
	prompt := BuildCareerMatchPrompt(profile, assessment, careers)

	temperature := 0.1
	seed := 42
	raw, err := s.openai.ChatJSON(ctx, careerSystemMessage, prompt, ChatOptions{
		Temperature: &temperature,
		MaxTokens:   1500,
		Seed:        &seed,
	})
	if err != nil {
		return nil, &EngineError{Code: engineErrGeneric, Details: err.Error()}
	}

	var match CareerMatch
	if err := json.Unmarshal(raw, &match); err != nil {
		return nil, &EngineError{Code: engineErrInvalidJSON, Details: err.Error()}
	}

	if err := NormalizeCareer(&match, careers); err != nil {
		return nil, &EngineError{Code: engineErrGeneric, Details: err.Error()}
	}
	if match.Note != "" {
		s.log.Warn("Career choice normalized against catalog", "note", match.Note)
	}
	return &match, nil
}

// marshalStats renders a stats record (or nil absence) as a JSON column value.
func marshalStats(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}

func mustJSON(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
