package intake

import (
	"strings"

	"github.com/bmeers/student-intake/model"
)

// isYes classifies an option as an affirmative answer. The survey's yes/no
// questions phrase their options freely ("Yes, I can work as a volunteer",
// "No, but ..."), so this is a case-insensitive substring match rather than
// equality against an enumerated set.
func isYes(opt model.Option) bool {
	return strings.Contains(strings.ToLower(opt.Text), "yes")
}

// otherSentinel is the literal text of the escape-hatch choice the survey
// tool appends to its closed questions.
const otherSentinel = "other"

func isOtherChoice(opt model.Option) bool {
	return strings.EqualFold(opt.Text, otherSentinel)
}

// otherFallback turns a resolved closed choice into its final text. A regular
// choice stands on its own; the "other" choice defers to a companion
// free-text question, which then must carry a value.
func otherFallback(ix index, opt model.Option, companionKey string) (string, error) {
	if !isOtherChoice(opt) {
		return opt.Text, nil
	}
	companion, ok := ix.find(companionKey)
	if !ok {
		return "", argErrorf("question %s is missing from the submission", companionKey)
	}
	text, ok := companion.Value.(string)
	if !ok || text == "" {
		return "", argErrorf("question %s requires a value when %q is chosen", companionKey, opt.Text)
	}
	return text, nil
}

// englishRanks maps the English-level question's option identifiers to their
// star-rating rank, 1 (lowest) through 5. The identifiers are opaque tokens
// minted by the survey tool; nothing about them encodes an order, so the
// table is the single source of truth and an identifier outside it is a
// malformed submission, never a default rank.
var englishRanks = map[string]int{
	"ac73cb1a-a786-4d39-b9ad-2ae19bf34bb2": 1,
	"e388fa1c-53b8-4d43-9a84-9ce2b0651fcb": 2,
	"2d7a8582-47c1-4fea-b6b1-56d7b2b1de32": 3,
	"3b1a9f5e-0b82-49a9-91c4-d2d095c1d18a": 4,
	"a0b0e74c-5fa4-4b82-9716-9b1e9bd9e1dd": 5,
}

func englishRank(q model.Question, optionID string) (int, error) {
	rank, ok := englishRanks[optionID]
	if !ok {
		return 0, argErrorf("question %s selection %s is not a known rating", q.Key, optionID)
	}
	return rank, nil
}
