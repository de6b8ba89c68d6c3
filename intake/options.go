package intake

import "github.com/bmeers/student-intake/model"

// checkOptionIDs rejects option lists carrying the same identifier twice.
// A colliding list makes any selection ambiguous, so it fails even when the
// current selection would not touch the duplicates.
func checkOptionIDs(q model.Question) error {
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt.ID] {
			return argErrorf("question %s has duplicate option id %s", q.Key, opt.ID)
		}
		seen[opt.ID] = true
	}
	return nil
}

// selectedOption resolves a single-choice question's value against its option
// list. A nil value means no selection and yields nil without error; a value
// that points at no option is a malformed submission.
func selectedOption(q model.Question) (*model.Option, error) {
	if err := checkOptionIDs(q); err != nil {
		return nil, err
	}
	if q.Value == nil {
		return nil, nil
	}
	id, ok := q.Value.(string)
	if !ok {
		return nil, argErrorf("question %s has a non-string selection", q.Key)
	}
	for _, opt := range q.Options {
		if opt.ID == id {
			o := opt
			return &o, nil
		}
	}
	return nil, argErrorf("question %s selection %s matches no option", q.Key, id)
}

// selectedOptions resolves a multiple-choice question's value, a JSON array
// of option identifiers, preserving selection order. A nil value yields an
// empty slice; unknown identifiers and duplicate option ids are errors.
func selectedOptions(q model.Question) ([]model.Option, error) {
	if err := checkOptionIDs(q); err != nil {
		return nil, err
	}
	if q.Value == nil {
		return nil, nil
	}
	ids, ok := q.Value.([]any)
	if !ok {
		return nil, argErrorf("question %s has a non-list selection", q.Key)
	}

	byID := make(map[string]model.Option, len(q.Options))
	for _, opt := range q.Options {
		byID[opt.ID] = opt
	}

	selected := make([]model.Option, 0, len(ids))
	for _, raw := range ids {
		id, ok := raw.(string)
		if !ok {
			return nil, argErrorf("question %s has a non-string selection entry", q.Key)
		}
		opt, ok := byID[id]
		if !ok {
			return nil, argErrorf("question %s selection %s matches no option", q.Key, id)
		}
		selected = append(selected, opt)
	}
	return selected, nil
}
