package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ontracklabs/ontrack-backend/internal/logger"
	"github.com/ontracklabs/ontrack-backend/internal/types"
)

func newCoachFixture(t *testing.T) (*fakeUserStateRepo, *fakeUserResourceRepo, *fakeOpenAI, CoachService) {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	stateRepo := &fakeUserStateRepo{state: &types.UsersState{
		FullName:      "Asha",
		CurrentCareer: "Data Science",
		MissingSkills: datatypes.JSON(`["SQL","Statistics"]`),
		LearningPlan:  datatypes.JSON(`["Week 1: SQL","Week 2: Stats"]`),
	}}
	resourceRepo := &fakeUserResourceRepo{listResult: []*types.UserResource{
		{Skill: "SQL", Title: "SQL Basics", Provider: "Coursera", Level: "Beginner", Link: "l1"},
	}}
	openai := &fakeOpenAI{textResult: "  Start with one hour of SQL joins today.  "}

	return stateRepo, resourceRepo, openai, NewCoachService(log, stateRepo, resourceRepo, openai)
}

func TestCoachReplyTrimsAndReturnsModelText(t *testing.T) {
	_, _, openai, svc := newCoachFixture(t)

	reply := svc.Reply(context.Background(), uuid.New(), "what should I study today?")
	if reply != "Start with one hour of SQL joins today." {
		t.Fatalf("reply: got %q", reply)
	}
	if openai.lastSystem != coachSystemInstruction {
		t.Fatalf("coach must use the fixed system instruction")
	}
	if openai.lastOpts.Temperature == nil || *openai.lastOpts.Temperature != 0.6 {
		t.Fatalf("coach temperature: want 0.6, got %v", openai.lastOpts.Temperature)
	}
	if openai.lastOpts.MaxTokens != 400 {
		t.Fatalf("coach max tokens: want 400, got %d", openai.lastOpts.MaxTokens)
	}
}

func TestCoachReplyLLMFailureIsApologyWithName(t *testing.T) {
	_, _, openai, svc := newCoachFixture(t)
	openai.textResult = ""
	openai.textErr = fmt.Errorf("openai http 500: boom")

	reply := svc.Reply(context.Background(), uuid.New(), "hello")
	if reply != "Sorry Asha, something went wrong. Please try again." {
		t.Fatalf("reply: got %q", reply)
	}
}

func TestCoachReplyMissingStateUsesPlaceholderName(t *testing.T) {
	stateRepo, _, _, svc := newCoachFixture(t)
	stateRepo.state = nil
	stateRepo.getErr = gorm.ErrRecordNotFound

	reply := svc.Reply(context.Background(), uuid.New(), "hello")
	if reply != "Sorry You, something went wrong. Please try again." {
		t.Fatalf("reply: got %q", reply)
	}
}

func TestCoachReplyResourceLoadFailureIsApology(t *testing.T) {
	_, resourceRepo, _, svc := newCoachFixture(t)
	resourceRepo.listResult = nil
	resourceRepo.listErr = fmt.Errorf("db down")

	reply := svc.Reply(context.Background(), uuid.New(), "hello")
	if reply != "Sorry Asha, something went wrong. Please try again." {
		t.Fatalf("reply: got %q", reply)
	}
}

func TestCoachReplyEmptyNameFallsBackToPlaceholderInPrompt(t *testing.T) {
	stateRepo, _, openai, svc := newCoachFixture(t)
	stateRepo.state.FullName = ""

	_ = svc.Reply(context.Background(), uuid.New(), "hello")
	if got, want := openai.lastUser[:14], "User name: You"; got != want {
		t.Fatalf("prompt name line: want %q, got %q", want, got)
	}
}
