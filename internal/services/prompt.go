package services

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/ontracklabs/ontrack-backend/internal/types"
)

// Prompt construction is pure string building: identical inputs always
// produce identical prompts.

const careerSystemMessage = "You are a precise career engine. You strictly follow the provided career list and output valid JSON."

const coachSystemInstruction = "You are a friendly, concise, and intelligent career mentor. " +
	"You should NEVER dump the full learning plan unless the user explicitly asks for it. " +
	"Answer ONLY what the user asks. " +
	"If the user says hello, greet them. " +
	"If the user asks what to study, give a short actionable answer for today. " +
	"Always be brief, clear, and practical."

func BuildCareerMatchPrompt(profile *types.UserOnboarding, assessment *types.UserAssessment, careers []string) string {
	careersText := strings.Join(careers, ", ")

	return fmt.Sprintf(`### SYSTEM TASK
You are an expert Career Placement Committee. Your goal is to match the user to exactly ONE career from the PROVIDED LIST based on their internal motivations.

### CONSTRAINTS
1. PRIORITY: User "Goal" and "Interests" override technical skills.
2. DISCOVERY: If a user wants 'Game Dev' but has 'Java' skills, match them to 'Game Development' and use the Roadmap to bridge the gap.
3. BIAS CONTROL: Do not default to 'AI/ML' or 'Backend' unless explicitly requested.
4. OUTPUT: You MUST return valid JSON.

### DATA
- COLLEGE: %s (%s year)
- GOALS: %s
- INTERESTS: %s
- SKILLS: %s
- GITHUB/LEETCODE (For Roadmap Only): %s, %s

### AVAILABLE CAREERS (Pick ONE from this list only):
%s

### INSTRUCTIONS
Step 1: Analyze user goals/interests to identify their "North Star" career.
Step 2: Map that North Star to the closest match in the AVAILABLE CAREERS list.
Step 3: Analyze GitHub/LeetCode to identify what they ALREADY know.
Step 4: Create a 12-week roadmap to bridge the gap between "Current Skills" and "Career Match".
Step 5: Provide a short "explanation" describing why this career was chosen.

### REQUIRED OUTPUT JSON
{
  "career": "One career from the provided list",
  "explanation": "Why this career fits the user's goals and interests",
  "current_skills": ["Skill 1", "Skill 2"],
  "missing_skills": ["Skill 3", "Skill 4"],
  "learning_plan": ["Week 1...", "Week 2...", "Week 12..."]
}`,
		profile.College,
		profile.Year,
		profile.Goal,
		assessment.Interests,
		assessment.SkillSummary,
		renderJSON(assessment.GithubData),
		renderJSON(assessment.LeetcodeData),
		careersText,
	)
}

func BuildResourcePrompt(skills []string) string {
	var list strings.Builder
	for _, skill := range skills {
		fmt.Fprintf(&list, "- %s\n", skill)
	}

	return fmt.Sprintf(`You are a learning resource expert.

For each of the following skills:
%s
Find 3 of the best online learning resources (courses, tutorials, or programs).
Prefer Coursera, Udemy, FreeCodeCamp, YouTube, Kaggle, or official docs.

Return JSON in this format:
{
  "SQL": [
    {"title":"...", "provider":"...", "link":"...", "level":"..."},
    ...
  ],
  "Machine Learning": [
    ...
  ]
}`, list.String())
}

func BuildCoachPrompt(name, career string, missingSkills, learningPlan []string, resources []*types.UserResource, userMessage string) string {
	gaps := strings.Join(missingSkills, ", ")
	plan := strings.Join(learningPlan, "\n")

	var resourceLines strings.Builder
	for _, r := range resources {
		fmt.Fprintf(&resourceLines, "- [%s] %s (%s, %s): %s\n", r.Skill, r.Title, r.Provider, r.Level, r.Link)
	}

	return fmt.Sprintf(`User name: %s

Career target: %s
Skill gaps: %s

Learning plan:
%s

Available learning resources:
%s
User message:
"%s"`,
		name,
		career,
		gaps,
		plan,
		resourceLines.String(),
		userMessage,
	)
}

func renderJSON(blob datatypes.JSON) string {
	if len(blob) == 0 {
		return "null"
	}
	return string(blob)
}
