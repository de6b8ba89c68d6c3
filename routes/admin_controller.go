package routes

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/bmeers/student-intake/app"
	"github.com/bmeers/student-intake/httpx"
	"github.com/bmeers/student-intake/log"
	"github.com/bmeers/student-intake/model"
)

type applicationSummary struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Nickname       string    `json:"nickname"`
	EducationLevel string    `json:"educationLevel"`
	EnglishLevel   int       `json:"englishLevel"`
	Alumni         bool      `json:"alumni"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func ListApplications(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT
				a.id,
				p.first_name, p.last_name, p.email,
				s.nickname, s.alumni,
				a.education_level, a.english_level, a.submitted_at
			FROM job_application a
				JOIN student s ON (a.student_id = s.id)
				JOIN person p ON (s.person_id = p.id)
			ORDER BY a.submitted_at DESC`)
		if err != nil {
			httpx.LogInternalError(w, "db.list_applications", err)
			return
		}
		defer rows.Close()

		applications := []applicationSummary{}
		for rows.Next() {
			a := applicationSummary{}
			err = rows.Scan(
				&a.ID,
				&a.FirstName, &a.LastName, &a.Email,
				&a.Nickname, &a.Alumni,
				&a.EducationLevel, &a.EnglishLevel, &a.SubmittedAt,
			)
			if err != nil {
				httpx.LogInternalError(w, "db.list_applications.scan", err)
				return
			}
			applications = append(applications, a)
		}

		render.JSON(w, r, applications)
	}
}

type applicationDetail struct {
	ID          int64                `json:"id"`
	SubmittedAt time.Time            `json:"submittedAt"`
	EventID     string               `json:"eventId"`
	Person      model.Person         `json:"person"`
	Student     model.Student        `json:"student"`
	Application model.JobApplication `json:"application"`
	Attachments []model.Attachment   `json:"attachments"`
	Roles       []string             `json:"roles"`
}

func GetApplicationById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		detail := applicationDetail{ID: id}
		a := &detail.Application
		err = app.QueryRowContext(r.Context(), `
			SELECT
				a.event_id, a.submitted_at,
				p.first_name, p.last_name, p.email,
				s.gender, s.pronouns, s.nickname, s.phone, s.alumni,
				a.responsibilities, a.fun_fact, a.volunteer_info, a.student_coach,
				a.education_level, a.education_duration, a.education_year, a.education_institute,
				a.fluent_language, a.english_level
			FROM job_application a
				JOIN student s ON (a.student_id = s.id)
				JOIN person p ON (s.person_id = p.id)
			WHERE a.id = ?`,
			id,
		).Scan(
			&detail.EventID, &detail.SubmittedAt,
			&detail.Person.FirstName, &detail.Person.LastName, &detail.Person.Email,
			&detail.Student.Gender, &detail.Student.Pronouns, &detail.Student.Nickname,
			&detail.Student.Phone, &detail.Student.Alumni,
			&a.Responsibilities, &a.FunFact, &a.VolunteerInfo, &a.StudentCoach,
			&a.EducationLevel, &a.EducationDuration, &a.EducationYear, &a.EducationInstitute,
			&a.FluentLanguage, &a.EnglishLevel,
		)
		if errors.Is(err, sql.ErrNoRows) {
			httpx.LogNotFound(w, "get_application", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_application", err)
			return
		}

		a.Educations, err = queryStrings(app, r, `
			SELECT name FROM education WHERE job_application_id = ? ORDER BY id`, id)
		if err != nil {
			httpx.LogInternalError(w, "db.get_application.educations", err)
			return
		}

		detail.Roles, err = queryStrings(app, r, `
			SELECT name FROM applied_role WHERE job_application_id = ? ORDER BY id`, id)
		if err != nil {
			httpx.LogInternalError(w, "db.get_application.roles", err)
			return
		}

		detail.Attachments, err = queryAttachments(app, r, id)
		if err != nil {
			httpx.LogInternalError(w, "db.get_application.attachments", err)
			return
		}

		render.JSON(w, r, detail)
	}
}

func queryStrings(app app.App, r *http.Request, query string, id int64) ([]string, error) {
	rows, err := app.QueryContext(r.Context(), query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, rows.Err()
}

func queryAttachments(app app.App, r *http.Request, id int64) ([]model.Attachment, error) {
	rows, err := app.QueryContext(r.Context(), `
		SELECT kind, data, types FROM attachment WHERE job_application_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments := []model.Attachment{}
	for rows.Next() {
		att := model.Attachment{}
		var data, types string
		if err := rows.Scan(&att.Kind, &data, &types); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &att.Data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(types), &att.Types); err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, rows.Err()
}

func DeleteApplication(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		result, err := app.ExecContext(r.Context(), `
			DELETE FROM job_application WHERE id = ?`, id)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_application", err)
			return
		}
		deleted, err := result.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_application.rows", err)
			return
		}
		if deleted == 0 {
			httpx.LogNotFound(w, "delete_application", id)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
