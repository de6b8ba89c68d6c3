package intake

import (
	"strconv"
	"strings"
)

// Value helpers shared by the per-field extractors. Required fields promote
// a missing question or a null answer to the uniform validation error;
// optional fields fold both into nil.

func (ix index) requiredText(key string) (string, error) {
	q, err := ix.required(key)
	if err != nil {
		return "", err
	}
	text, ok := q.Value.(string)
	if !ok || text == "" {
		return "", argErrorf("question %s requires an answer", key)
	}
	return text, nil
}

func (ix index) optionalText(key string) (*string, error) {
	q, ok := ix.find(key)
	if !ok || q.Value == nil {
		return nil, nil
	}
	text, ok := q.Value.(string)
	if !ok {
		return nil, argErrorf("question %s has a non-text answer", key)
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

func extractFirstName(ix index) (string, error) {
	return ix.requiredText(keyBirthName)
}

func extractLastName(ix index) (string, error) {
	return ix.requiredText(keyLastName)
}

// extractEmail does not validate the address format; the survey tool already
// enforces its own email widget and downstream delivery failures are handled
// elsewhere.
func extractEmail(ix index) (string, error) {
	return ix.requiredText(keyEmail)
}

func extractGender(ix index) (string, error) {
	q, err := ix.required(keyGender)
	if err != nil {
		return "", err
	}
	opt, err := selectedOption(q)
	if err != nil {
		return "", err
	}
	if opt == nil {
		return "", argErrorf("question %s requires a selection", keyGender)
	}
	return opt.Text, nil
}

// extractPronouns is lenient in every direction except one: a submission may
// omit the question, present it without options, or leave it unanswered, all
// yielding nil. Only choosing "other" without filling in the companion
// free-text question is an error.
func extractPronouns(ix index) (*string, error) {
	q, ok := ix.find(keyPronouns)
	if !ok || len(q.Options) == 0 {
		return nil, nil
	}
	opt, err := selectedOption(q)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		return nil, nil
	}
	text, err := otherFallback(ix, *opt, keyPronounsOther)
	if err != nil {
		return nil, err
	}
	return &text, nil
}

func extractNickname(ix index) (string, error) {
	return ix.requiredText(keyNickname)
}

func extractPhone(ix index) (string, error) {
	return ix.requiredText(keyPhone)
}

// extractParticipated reads the "have you taken part before" question; its
// result doubles as the student's alumni flag and as the switch for the
// student-coach requirement.
func extractParticipated(ix index) (bool, error) {
	q, err := ix.required(keyParticipated)
	if err != nil {
		return false, err
	}
	opt, err := selectedOption(q)
	if err != nil {
		return false, err
	}
	if opt == nil {
		return false, argErrorf("question %s requires a selection", keyParticipated)
	}
	return isYes(*opt), nil
}

// extractVolunteerInfo requires an option list: unlike pronouns, a
// choice-less volunteer question is a malformed submission.
func extractVolunteerInfo(ix index) (bool, error) {
	q, err := ix.required(keyVolunteerInfo)
	if err != nil {
		return false, err
	}
	if len(q.Options) == 0 {
		return false, argErrorf("question %s carries no options", keyVolunteerInfo)
	}
	opt, err := selectedOption(q)
	if err != nil {
		return false, err
	}
	if opt == nil {
		return false, argErrorf("question %s requires a selection", keyVolunteerInfo)
	}
	return isYes(*opt), nil
}

// extractStudentCoach is conditionally required: the survey only insists on
// an answer from applicants who have not taken part before. For returning
// applicants a missing or unanswered question resolves to nil.
func extractStudentCoach(ix index, participated bool) (*bool, error) {
	q, ok := ix.find(keyStudentCoach)
	if participated {
		if !ok || q.Value == nil {
			return nil, nil
		}
		opt, err := selectedOption(q)
		if err != nil {
			return nil, err
		}
		if opt == nil {
			return nil, nil
		}
		yes := isYes(*opt)
		return &yes, nil
	}

	if !ok {
		return nil, argErrorf("question %s is missing from the submission", keyStudentCoach)
	}
	opt, err := selectedOption(q)
	if err != nil {
		return nil, err
	}
	if opt == nil {
		return nil, argErrorf("question %s requires a selection", keyStudentCoach)
	}
	yes := isYes(*opt)
	return &yes, nil
}

func extractResponsibilities(ix index) (*string, error) {
	return ix.optionalText(keyResponsibilities)
}

func extractFunFact(ix index) (string, error) {
	return ix.requiredText(keyFunFact)
}

func extractEducationLevel(ix index) (string, error) {
	q, err := ix.required(keyEducationLevel)
	if err != nil {
		return "", err
	}
	opt, err := selectedOption(q)
	if err != nil {
		return "", err
	}
	if opt == nil {
		return "", argErrorf("question %s requires a selection", keyEducationLevel)
	}
	return otherFallback(ix, *opt, keyEducationLevelOther)
}

// extractEducationDuration accepts the two encodings the survey tool has
// emitted over time: a JSON number and a numeric string.
func extractEducationDuration(ix index) (*int, error) {
	q, ok := ix.find(keyEducationDuration)
	if !ok || q.Value == nil {
		return nil, nil
	}
	switch v := q.Value.(type) {
	case float64:
		n := int(v)
		return &n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, argErrorf("question %s has a non-numeric answer %q", keyEducationDuration, v)
		}
		return &n, nil
	default:
		return nil, argErrorf("question %s has a non-numeric answer", keyEducationDuration)
	}
}

func extractEducationYear(ix index) (*string, error) {
	return ix.optionalText(keyEducationYear)
}

// extractEducationInstitute is only meaningful for higher-education levels,
// but the pipeline does not cross-check that: the survey hides the question
// for other levels, which simply comes through as a null answer.
func extractEducationInstitute(ix index) (*string, error) {
	return ix.optionalText(keyEducationInstitute)
}

func extractEducations(ix index) ([]string, error) {
	q, err := ix.required(keyEducations)
	if err != nil {
		return nil, err
	}
	opts, err := selectedOptions(q)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, argErrorf("question %s requires at least one selection", keyEducations)
	}
	educations := make([]string, 0, len(opts))
	for _, opt := range opts {
		text, err := otherFallback(ix, opt, keyEducationsOther)
		if err != nil {
			return nil, err
		}
		educations = append(educations, text)
	}
	return educations, nil
}

func extractFluentLanguage(ix index) (string, error) {
	q, err := ix.required(keyFluentLanguage)
	if err != nil {
		return "", err
	}
	opt, err := selectedOption(q)
	if err != nil {
		return "", err
	}
	if opt == nil {
		return "", argErrorf("question %s requires a selection", keyFluentLanguage)
	}
	return otherFallback(ix, *opt, keyFluentLanguageOther)
}

// extractEnglishLevel ranks purely on the selected option identifier; the
// option texts are decorative star glyphs and never consulted.
func extractEnglishLevel(ix index) (int, error) {
	q, err := ix.required(keyEnglishLevel)
	if err != nil {
		return 0, err
	}
	id, ok := q.Value.(string)
	if !ok || id == "" {
		return 0, argErrorf("question %s requires a selection", keyEnglishLevel)
	}
	return englishRank(q, id)
}

func extractAppliedRoles(ix index) ([]string, error) {
	q, err := ix.required(keyAppliedRoles)
	if err != nil {
		return nil, err
	}
	opts, err := selectedOptions(q)
	if err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(opts))
	for _, opt := range opts {
		role, err := otherFallback(ix, opt, keyAppliedRolesOther)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, argErrorf("question %s requires at least one role", keyAppliedRoles)
	}
	return roles, nil
}
