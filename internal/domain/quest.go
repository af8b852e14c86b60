package domain

import "time"

// QuestTiers lists the nine difficulty labels in ascending order.
// Tiers are descriptive only; reward logic is left to callers.
var QuestTiers = []string{"F", "E", "D", "C", "B", "A", "S", "SS", "SSS"}

// ValidQuestTier reports whether tier is one of the nine labels
func ValidQuestTier(tier string) bool {
	for _, t := range QuestTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Quest is a tiered task definition. Quests are immutable once created
// and are never deleted.
type Quest struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tier        string    `json:"tier"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewQuest carries the caller-supplied fields for quest creation
type NewQuest struct {
	Title       string
	Description string
	Tier        string
}
