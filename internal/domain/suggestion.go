package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// MinSubtaskSuggestions is the minimum number of usable entries a
	// generated suggestion list must contain before it is accepted.
	MinSubtaskSuggestions = 3
	// MaxSubtaskSuggestions caps the suggestion list.
	MaxSubtaskSuggestions = 7
)

// curatedSubtasks maps normalized well-known task titles to curated subtask
// lists, used when no generative model is available or its output is unusable.
var curatedSubtasks = map[string][]string{
	"plan a wedding": {
		"Book wedding venue",
		"Hire photographer",
		"Send invitations",
		"Arrange catering",
		"Plan wedding ceremony",
		"Choose wedding dress",
		"Plan honeymoon",
	},
	"start a business": {
		"Choose business idea",
		"Write business plan",
		"Register business",
		"Set up finances",
		"Build online presence",
		"Hire staff",
		"Launch business",
	},
	"organize a birthday party": {
		"Choose party theme",
		"Book venue",
		"Send invitations",
		"Order cake",
		"Arrange food and drinks",
		"Plan activities",
		"Buy decorations",
	},
}

// LookupSubtaskSuggestions finds a curated subtask list for the given parent
// title. It first tries a normalized exact match, then substring containment
// in either direction against each table key. Keys are checked in sorted
// order so a title matching several keys always picks the same one.
func LookupSubtaskSuggestions(parentTitle string) ([]string, bool) {
	normalized := normalizeTitle(parentTitle)
	if normalized == "" {
		return nil, false
	}

	if subtasks, ok := curatedSubtasks[normalized]; ok {
		return subtasks, true
	}

	keys := make([]string, 0, len(curatedSubtasks))
	for key := range curatedSubtasks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			return curatedSubtasks[key], true
		}
	}

	return nil, false
}

// GenericSubtaskTemplate builds a catch-all breakdown parameterized with the
// original title text.
func GenericSubtaskTemplate(parentTitle string) []string {
	return []string{
		fmt.Sprintf("Define scope and requirements for %q", parentTitle),
		"Research and gather necessary resources",
		"Set budget and timeline",
		"Break work into concrete milestones",
		"Execute the plan step by step",
		"Review progress and adjust",
	}
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
