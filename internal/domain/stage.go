package domain

import "strings"

// StageCategory groups free-form workflow stage names into the categories
// that receive dedicated prompt guidance.
type StageCategory int

// Stage categories. StageOther covers every stage name that is not listed in
// stageCategories.
const (
	StageOther StageCategory = iota
	StagePlanning
	StageInProgress
	StageInReview
	StageDone
)

var stageCategories = map[string]StageCategory{
	"to do":   StagePlanning,
	"todo":    StagePlanning,
	"planned": StagePlanning,
	"backlog": StagePlanning,

	"in progress": StageInProgress,
	"development": StageInProgress,
	"working":     StageInProgress,
	"active":      StageInProgress,

	"in review": StageInReview,
	"review":    StageInReview,
	"testing":   StageInReview,
	"qa":        StageInReview,

	"done":      StageDone,
	"completed": StageDone,
	"finished":  StageDone,
}

// ClassifyStage maps a stage name to its category. Matching ignores case and
// surrounding whitespace.
func ClassifyStage(stage string) StageCategory {
	return stageCategories[strings.ToLower(strings.TrimSpace(stage))]
}

// StageNames returns the stage names recognised for a category, in no
// particular order. StageOther has none.
func StageNames(category StageCategory) []string {
	var names []string
	for name, c := range stageCategories {
		if c == category && category != StageOther {
			names = append(names, name)
		}
	}
	return names
}

func (c StageCategory) String() string {
	switch c {
	case StagePlanning:
		return "planning"
	case StageInProgress:
		return "in_progress"
	case StageInReview:
		return "in_review"
	case StageDone:
		return "done"
	default:
		return "other"
	}
}
