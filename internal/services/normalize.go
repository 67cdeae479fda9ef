package services

import (
	"errors"
	"fmt"
	"strings"
)

// CareerMatch is the typed shape of the career-match model output.
type CareerMatch struct {
	Career        string   `json:"career"`
	Explanation   string   `json:"explanation"`
	CurrentSkills []string `json:"current_skills"`
	MissingSkills []string `json:"missing_skills"`
	LearningPlan  []string `json:"learning_plan"`
	Note          string   `json:"note,omitempty"`
}

// EngineError is the structured failure the career engine returns instead of
// crashing: a short code plus the underlying details.
type EngineError struct {
	Code    string `json:"error"`
	Details string `json:"details"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Details)
}

const (
	engineErrInvalidJSON = "Invalid JSON from AI"
	engineErrGeneric     = "Career Engine Error"
)

// NormalizeCareer reconciles the model's chosen career against the catalog.
// A case-insensitive match is rewritten to the catalog's canonical casing; an
// unmatched choice falls back to the first catalog entry with an audit note.
// The match never fails just because the model deviated from the list.
func NormalizeCareer(match *CareerMatch, catalog []string) error {
	if len(catalog) == 0 {
		return errors.New("career catalog is empty")
	}

	for _, canonical := range catalog {
		if strings.EqualFold(canonical, match.Career) {
			match.Career = canonical
			return nil
		}
	}

	original := match.Career
	match.Career = catalog[0]
	match.Note = fmt.Sprintf("Original choice '%s' was normalized to match database.", original)
	return nil
}
