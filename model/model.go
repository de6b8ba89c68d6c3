package model

import "time"

// Submission is one raw questionnaire response as delivered by the survey
// tool's webhook. Questions are looked up by key, never by position.
type Submission struct {
	EventID   string     `json:"eventId"`
	EventType string     `json:"eventType"`
	CreatedAt time.Time  `json:"createdAt"`
	Fields    []Question `json:"fields"`
}

// Question holds one key/value entry of a submission. Value is decoded as-is
// from JSON: a string, a number, an array of selected option ids, an array of
// uploaded-file objects, or nil when the question was left unanswered.
// Options is only present for choice-type questions.
type Question struct {
	Key     string   `json:"key"`
	Value   any      `json:"value"`
	Options []Option `json:"options,omitempty"`
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ApplicationRecord is the validated output of the intake pipeline. It is
// either complete or not produced at all.
type ApplicationRecord struct {
	EventID      string         `json:"eventId"`
	SubmittedAt  time.Time      `json:"submittedAt"`
	Person       Person         `json:"person"`
	Student      Student        `json:"student"`
	Application  JobApplication `json:"application"`
	Attachments  []Attachment   `json:"attachments"`
	AppliedRoles []string       `json:"appliedRoles"`
}

type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type Student struct {
	Gender   string  `json:"gender"`
	Pronouns *string `json:"pronouns"`
	Nickname string  `json:"nickname"`
	Phone    string  `json:"phone"`
	Alumni   bool    `json:"alumni"`
}

type JobApplication struct {
	Responsibilities   *string  `json:"responsibilities"`
	FunFact            string   `json:"funFact"`
	VolunteerInfo      bool     `json:"volunteerInfo"`
	StudentCoach       *bool    `json:"studentCoach"`
	EducationLevel     string   `json:"educationLevel"`
	EducationDuration  *int     `json:"educationDuration"`
	EducationYear      *string  `json:"educationYear"`
	EducationInstitute *string  `json:"educationInstitute"`
	Educations         []string `json:"educations"`
	FluentLanguage     string   `json:"fluentLanguage"`
	EnglishLevel       int      `json:"englishLevel"`
}

// AttachmentKind tags what an attachment is, not how it was answered.
type AttachmentKind string

const (
	AttachmentCV         AttachmentKind = "cv"
	AttachmentPortfolio  AttachmentKind = "portfolio"
	AttachmentMotivation AttachmentKind = "motivation"
)

// Attachment payloads and type tags run in parallel: Data[i] is a link, an
// uploaded file URL or a plain text blurb depending on Types[i].
type Attachment struct {
	Kind  AttachmentKind `json:"kind"`
	Data  []string       `json:"data"`
	Types []string       `json:"types"`
}

const (
	AttachmentTypeLink   = "link"
	AttachmentTypeFile   = "file"
	AttachmentTypeString = "string"
)
