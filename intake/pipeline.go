package intake

import (
	"context"

	"github.com/bmeers/student-intake/model"
)

// Process converts one raw submission into a validated application record.
// Extractors run in a fixed order (identity, profile, job application,
// attachments, applied roles) and the first failure aborts the whole run:
// the record is complete or it is not produced. Process is pure and safe to
// call concurrently for independent submissions.
func Process(sub model.Submission) (*model.ApplicationRecord, error) {
	ix := newIndex(sub)
	rec := &model.ApplicationRecord{
		EventID:     sub.EventID,
		SubmittedAt: sub.CreatedAt,
	}
	var err error

	// identity
	if rec.Person.FirstName, err = extractFirstName(ix); err != nil {
		return nil, err
	}
	if rec.Person.LastName, err = extractLastName(ix); err != nil {
		return nil, err
	}
	if rec.Person.Email, err = extractEmail(ix); err != nil {
		return nil, err
	}

	// student profile
	if rec.Student.Gender, err = extractGender(ix); err != nil {
		return nil, err
	}
	if rec.Student.Pronouns, err = extractPronouns(ix); err != nil {
		return nil, err
	}
	if rec.Student.Nickname, err = extractNickname(ix); err != nil {
		return nil, err
	}
	if rec.Student.Phone, err = extractPhone(ix); err != nil {
		return nil, err
	}
	if rec.Student.Alumni, err = extractParticipated(ix); err != nil {
		return nil, err
	}

	// job application
	if rec.Application.Responsibilities, err = extractResponsibilities(ix); err != nil {
		return nil, err
	}
	if rec.Application.FunFact, err = extractFunFact(ix); err != nil {
		return nil, err
	}
	if rec.Application.VolunteerInfo, err = extractVolunteerInfo(ix); err != nil {
		return nil, err
	}
	if rec.Application.StudentCoach, err = extractStudentCoach(ix, rec.Student.Alumni); err != nil {
		return nil, err
	}
	if rec.Application.EducationLevel, err = extractEducationLevel(ix); err != nil {
		return nil, err
	}
	if rec.Application.EducationDuration, err = extractEducationDuration(ix); err != nil {
		return nil, err
	}
	if rec.Application.EducationYear, err = extractEducationYear(ix); err != nil {
		return nil, err
	}
	if rec.Application.EducationInstitute, err = extractEducationInstitute(ix); err != nil {
		return nil, err
	}
	if rec.Application.Educations, err = extractEducations(ix); err != nil {
		return nil, err
	}
	if rec.Application.FluentLanguage, err = extractFluentLanguage(ix); err != nil {
		return nil, err
	}
	if rec.Application.EnglishLevel, err = extractEnglishLevel(ix); err != nil {
		return nil, err
	}

	// attachments
	cv, err := extractCV(ix)
	if err != nil {
		return nil, err
	}
	rec.Attachments = append(rec.Attachments, *cv)

	portfolio, err := extractPortfolio(ix)
	if err != nil {
		return nil, err
	}
	if portfolio != nil {
		rec.Attachments = append(rec.Attachments, *portfolio)
	}

	motivation, err := extractMotivation(ix)
	if err != nil {
		return nil, err
	}
	rec.Attachments = append(rec.Attachments, *motivation)

	// applied roles
	if rec.AppliedRoles, err = extractAppliedRoles(ix); err != nil {
		return nil, err
	}

	return rec, nil
}

// Saver is the persistence collaborator the pipeline hands accepted records
// to. It must perform all writes atomically; the pipeline never retries.
type Saver interface {
	SaveApplication(ctx context.Context, rec *model.ApplicationRecord) (jobApplicationID int64, err error)
}

// Pipeline ties validation to persistence. No store call happens unless the
// whole submission validated.
type Pipeline struct {
	store Saver
}

func NewPipeline(store Saver) *Pipeline {
	return &Pipeline{store: store}
}

func (p *Pipeline) Handle(ctx context.Context, sub model.Submission) (int64, error) {
	rec, err := Process(sub)
	if err != nil {
		return 0, err
	}
	return p.store.SaveApplication(ctx, rec)
}
