package intake

import "github.com/bmeers/student-intake/model"

// index resolves questions by their stable key. It is built once per
// submission; a missing key is an ordinary outcome, not an error — each
// extractor decides whether absence is fatal for its field.
type index struct {
	byKey map[string]model.Question
}

func newIndex(sub model.Submission) index {
	byKey := make(map[string]model.Question, len(sub.Fields))
	for _, q := range sub.Fields {
		byKey[q.Key] = q
	}
	return index{byKey: byKey}
}

func (ix index) find(key string) (model.Question, bool) {
	q, ok := ix.byKey[key]
	return q, ok
}

// required is find with absence promoted to the uniform validation error.
func (ix index) required(key string) (model.Question, error) {
	q, ok := ix.byKey[key]
	if !ok {
		return model.Question{}, argErrorf("question %s is missing from the submission", key)
	}
	return q, nil
}
