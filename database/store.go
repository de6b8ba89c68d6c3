package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bmeers/student-intake/model"
)

// Store is the persistence collaborator of the intake pipeline. It only sees
// fully validated records; all writes for one record happen in a single
// transaction.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveApplication(ctx context.Context, rec *model.ApplicationRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	personID, err := createOrUpdatePerson(ctx, tx, rec.Person)
	if err != nil {
		return 0, err
	}

	studentID, err := createStudent(ctx, tx, personID, rec.Student)
	if err != nil {
		return 0, err
	}

	jobApplicationID, err := createJobApplication(ctx, tx, studentID, rec)
	if err != nil {
		return 0, err
	}

	err = createEducations(ctx, tx, jobApplicationID, rec.Application.Educations)
	if err != nil {
		return 0, err
	}

	err = createAttachments(ctx, tx, jobApplicationID, rec.Attachments)
	if err != nil {
		return 0, err
	}

	err = createAppliedRoles(ctx, tx, jobApplicationID, rec.AppliedRoles)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return jobApplicationID, nil
}

// createOrUpdatePerson upserts by email: a returning applicant keeps their
// person row, with the name refreshed from the latest submission.
func createOrUpdatePerson(ctx context.Context, tx *sql.Tx, p model.Person) (id int64, err error) {
	err = tx.QueryRowContext(ctx, `
		INSERT INTO person (first_name, last_name, email) VALUES (?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name
		RETURNING id`,
		p.FirstName,
		p.LastName,
		p.Email,
	).Scan(&id)
	return
}

func createStudent(ctx context.Context, tx *sql.Tx, personID int64, st model.Student) (id int64, err error) {
	err = tx.QueryRowContext(ctx, `
		INSERT INTO student (person_id, gender, pronouns, nickname, phone, alumni)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		personID,
		st.Gender,
		st.Pronouns,
		st.Nickname,
		st.Phone,
		st.Alumni,
	).Scan(&id)
	return
}

func createJobApplication(ctx context.Context, tx *sql.Tx, studentID int64, rec *model.ApplicationRecord) (id int64, err error) {
	a := rec.Application
	err = tx.QueryRowContext(ctx, `
		INSERT INTO job_application (
			student_id, event_id, submitted_at,
			responsibilities, fun_fact, volunteer_info, student_coach,
			education_level, education_duration, education_year, education_institute,
			fluent_language, english_level
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		studentID,
		rec.EventID,
		rec.SubmittedAt,
		a.Responsibilities,
		a.FunFact,
		a.VolunteerInfo,
		a.StudentCoach,
		a.EducationLevel,
		a.EducationDuration,
		a.EducationYear,
		a.EducationInstitute,
		a.FluentLanguage,
		a.EnglishLevel,
	).Scan(&id)
	return
}

func createEducations(ctx context.Context, tx *sql.Tx, jobApplicationID int64, educations []string) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO education (job_application_id, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range educations {
		_, err := stmt.ExecContext(ctx, jobApplicationID, name)
		if err != nil {
			return err
		}
	}
	return nil
}

// createAttachments stores the parallel data/types lists as JSON columns.
func createAttachments(ctx context.Context, tx *sql.Tx, jobApplicationID int64, attachments []model.Attachment) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO attachment (job_application_id, kind, data, types) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, att := range attachments {
		data, err := json.Marshal(att.Data)
		if err != nil {
			return err
		}
		types, err := json.Marshal(att.Types)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, jobApplicationID, string(att.Kind), string(data), string(types))
		if err != nil {
			return err
		}
	}
	return nil
}

func createAppliedRoles(ctx context.Context, tx *sql.Tx, jobApplicationID int64, roles []string) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO applied_role (job_application_id, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range roles {
		_, err := stmt.ExecContext(ctx, jobApplicationID, name)
		if err != nil {
			return err
		}
	}
	return nil
}
