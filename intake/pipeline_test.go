package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmeers/student-intake/model"
)

func TestProcess(t *testing.T) {
	t.Run("assembles the full record", func(t *testing.T) {
		rec, err := Process(validSubmission())
		require.NoError(t, err)

		assert.Equal(t, &model.ApplicationRecord{
			EventID:     "ba54d9c6-0ba0-4c0a-854a-7fc24c39a20f",
			SubmittedAt: submittedAt,
			Person: model.Person{
				FirstName: "Alex",
				LastName:  "Verhoeven",
				Email:     "alex.verhoeven@example.com",
			},
			Student: model.Student{
				Gender:   "Female",
				Pronouns: ptr("she/her"),
				Nickname: "Lexi",
				Phone:    "+32 470 12 34 56",
				Alumni:   false,
			},
			Application: model.JobApplication{
				Responsibilities:   nil,
				FunFact:            "I breed axolotls",
				VolunteerInfo:      true,
				StudentCoach:       ptr(false),
				EducationLevel:     "Bachelor's degree",
				EducationDuration:  ptr(3),
				EducationYear:      ptr("2nd year"),
				EducationInstitute: ptr("Ghent University"),
				Educations:         []string{"Computer Sciences", "Design"},
				FluentLanguage:     "Dutch",
				EnglishLevel:       4,
			},
			Attachments: []model.Attachment{
				{
					Kind:  model.AttachmentCV,
					Data:  []string{"https://example.com/alex-cv.pdf"},
					Types: []string{model.AttachmentTypeLink},
				},
				{
					Kind:  model.AttachmentMotivation,
					Data:  []string{"I want to learn by building real things."},
					Types: []string{model.AttachmentTypeString},
				},
			},
			AppliedRoles: []string{"Front-end developer", "Back-end developer"},
		}, rec)
	})

	t.Run("threads the participated flag into student coach", func(t *testing.T) {
		sub := withValue(validSubmission(), keyParticipated, "a2")
		sub = withValue(sub, keyStudentCoach, nil)
		rec, err := Process(sub)
		require.NoError(t, err)
		assert.True(t, rec.Student.Alumni)
		assert.Nil(t, rec.Application.StudentCoach)
	})

	t.Run("one bad field rejects the whole submission", func(t *testing.T) {
		_, err := Process(withValue(validSubmission(), keyFunFact, nil))
		requireArgError(t, err)
	})
}

type stubSaver struct {
	calls int
	last  *model.ApplicationRecord
	id    int64
	err   error
}

func (s *stubSaver) SaveApplication(ctx context.Context, rec *model.ApplicationRecord) (int64, error) {
	s.calls++
	s.last = rec
	return s.id, s.err
}

func TestPipelineHandle(t *testing.T) {
	t.Run("saves an accepted submission", func(t *testing.T) {
		saver := &stubSaver{id: 17}
		id, err := NewPipeline(saver).Handle(context.Background(), validSubmission())
		require.NoError(t, err)
		assert.Equal(t, int64(17), id)
		assert.Equal(t, 1, saver.calls)
		assert.Equal(t, "alex.verhoeven@example.com", saver.last.Person.Email)
	})

	t.Run("never touches the store on a rejected submission", func(t *testing.T) {
		saver := &stubSaver{}
		_, err := NewPipeline(saver).Handle(context.Background(), without(validSubmission(), keyEmail))
		requireArgError(t, err)
		assert.Zero(t, saver.calls)
	})

	t.Run("surfaces a store failure as-is", func(t *testing.T) {
		boom := errors.New("disk full")
		saver := &stubSaver{err: boom}
		_, err := NewPipeline(saver).Handle(context.Background(), validSubmission())
		assert.ErrorIs(t, err, boom)
	})
}
