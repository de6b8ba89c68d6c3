package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/bmeers/student-intake/app"
	"github.com/bmeers/student-intake/httpx"
	"github.com/bmeers/student-intake/intake"
	"github.com/bmeers/student-intake/log"
	"github.com/bmeers/student-intake/model"
)

// webhookPayload is the envelope the survey tool POSTs on every form
// submission.
type webhookPayload struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	CreatedAt time.Time `json:"createdAt"`
	Data      struct {
		Fields []model.Question `json:"fields"`
	} `json:"data"`
}

func ReceiveFormSubmission(app app.App) http.HandlerFunc {
	pipeline := intake.NewPipeline(app.Store)

	return func(w http.ResponseWriter, r *http.Request) {
		payload := webhookPayload{}
		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		sub := model.Submission{
			EventID:   payload.EventID,
			EventType: payload.EventType,
			CreatedAt: payload.CreatedAt,
			Fields:    payload.Data.Fields,
		}

		jobApplicationID, err := pipeline.Handle(r.Context(), sub)
		var argErr *intake.ArgumentError
		if errors.As(err, &argErr) {
			// one bad field rejects the whole submission; no partial writes
			log.Debugf("webhook.intake (%s): %s", sub.EventID, argErr)
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"reason": "invalid submission",
			})
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.save_application", err)
			return
		}

		log.Infof("webhook.intake (%s): accepted application %d", sub.EventID, jobApplicationID)
		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"jobApplicationId": jobApplicationID,
		})
	}
}
