package intake

import (
	"time"

	"github.com/bmeers/student-intake/model"
)

var submittedAt = time.Date(2024, time.March, 14, 9, 26, 53, 0, time.UTC)

func question(key string, value any, options ...model.Option) model.Question {
	return model.Question{Key: key, Value: value, Options: options}
}

func opt(id, text string) model.Option {
	return model.Option{ID: id, Text: text}
}

// validSubmission is a complete, well-formed response, answered the way a
// first-time applicant typically answers. Individual tests mutate copies of
// it to exercise one policy at a time.
func validSubmission() model.Submission {
	return model.Submission{
		EventID:   "ba54d9c6-0ba0-4c0a-854a-7fc24c39a20f",
		EventType: "FORM_RESPONSE",
		CreatedAt: submittedAt,
		Fields: []model.Question{
			question(keyBirthName, "Alex"),
			question(keyLastName, "Verhoeven"),
			question(keyEmail, "alex.verhoeven@example.com"),

			question(keyGender, "g1", opt("g1", "Female"), opt("g2", "Male"), opt("g3", "Other")),
			question(keyPronouns, "p1", opt("p1", "she/her"), opt("p2", "he/him"), opt("p3", "Other")),
			question(keyPronounsOther, nil),
			question(keyNickname, "Lexi"),
			question(keyPhone, "+32 470 12 34 56"),
			question(keyParticipated, "a1",
				opt("a1", "No, it's my first time"),
				opt("a2", "Yes, I have taken part before")),

			question(keyResponsibilities, nil),
			question(keyFunFact, "I breed axolotls"),
			question(keyVolunteerInfo, "v1",
				opt("v1", "Yes, I can work with a volunteer's statute"),
				opt("v2", "No, I cannot")),
			question(keyStudentCoach, "c2",
				opt("c1", "Yes, I would love to"),
				opt("c2", "No, thank you")),

			question(keyEducationLevel, "e1",
				opt("e1", "Bachelor's degree"),
				opt("e2", "Master's degree"),
				opt("e3", "Other")),
			question(keyEducationLevelOther, nil),
			question(keyEducationDuration, float64(3)),
			question(keyEducationYear, "2nd year"),
			question(keyEducationInstitute, "Ghent University"),
			question(keyEducations, []any{"d1", "d2"},
				opt("d1", "Computer Sciences"),
				opt("d2", "Design"),
				opt("d3", "Other")),
			question(keyEducationsOther, nil),

			question(keyFluentLanguage, "l1",
				opt("l1", "Dutch"),
				opt("l2", "English"),
				opt("l3", "Other")),
			question(keyFluentLanguageOther, nil),
			question(keyEnglishLevel, "3b1a9f5e-0b82-49a9-91c4-d2d095c1d18a",
				opt("ac73cb1a-a786-4d39-b9ad-2ae19bf34bb2", "★"),
				opt("e388fa1c-53b8-4d43-9a84-9ce2b0651fcb", "★★"),
				opt("2d7a8582-47c1-4fea-b6b1-56d7b2b1de32", "★★★"),
				opt("3b1a9f5e-0b82-49a9-91c4-d2d095c1d18a", "★★★★"),
				opt("a0b0e74c-5fa4-4b82-9716-9b1e9bd9e1dd", "★★★★★")),

			question(keyAppliedRoles, []any{"r1", "r2"},
				opt("r1", "Front-end developer"),
				opt("r2", "Back-end developer"),
				opt("r3", "Other")),
			question(keyAppliedRolesOther, nil),

			question(keyCVLink, "https://example.com/alex-cv.pdf"),
			question(keyCVUpload, nil),
			question(keyPortfolioLink, nil),
			question(keyPortfolioUpload, nil),
			question(keyMotivationLink, nil),
			question(keyMotivationFile, nil),
			question(keyMotivationText, "I want to learn by building real things."),
		},
	}
}

// withValue returns a copy of sub with the keyed question's value replaced.
func withValue(sub model.Submission, key string, value any) model.Submission {
	fields := make([]model.Question, len(sub.Fields))
	copy(fields, sub.Fields)
	for i, q := range fields {
		if q.Key == key {
			q.Value = value
			fields[i] = q
		}
	}
	sub.Fields = fields
	return sub
}

// withQuestion returns a copy of sub with the keyed question fully replaced.
func withQuestion(sub model.Submission, q model.Question) model.Submission {
	fields := make([]model.Question, len(sub.Fields))
	copy(fields, sub.Fields)
	for i, existing := range fields {
		if existing.Key == q.Key {
			fields[i] = q
		}
	}
	sub.Fields = fields
	return sub
}

// without returns a copy of sub with the keyed questions removed entirely.
func without(sub model.Submission, keys ...string) model.Submission {
	dropped := make(map[string]bool, len(keys))
	for _, key := range keys {
		dropped[key] = true
	}
	fields := make([]model.Question, 0, len(sub.Fields))
	for _, q := range sub.Fields {
		if !dropped[q.Key] {
			fields = append(fields, q)
		}
	}
	sub.Fields = fields
	return sub
}

func ptr[T any](v T) *T {
	return &v
}
