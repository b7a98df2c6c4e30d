package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
)

// intakeInput carries the fields both public form variants can send.
// JSON names match what the site's forms have always posted.
type intakeInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	EventType     string `json:"eventType"`
	EventDate     string `json:"eventDate"`
	EventTime     string `json:"eventTime"`
	Location      string `json:"location"`
	Message       string `json:"message"`
}

// validateEventIntake checks the event planning form's required fields.
// Returns one message per missing or invalid field, keyed by field name.
func validateEventIntake(in intakeInput) map[string]string {
	problems := map[string]string{}
	if in.Name == "" {
		problems["name"] = "Name is required"
	}
	if in.Email == "" {
		problems["email"] = "Email is required"
	}
	if in.ContactNumber == "" {
		problems["contactNumber"] = "Contact number is required"
	}
	if in.EventType == "" {
		problems["eventType"] = "Event type is required"
	} else if !submissions.ValidEventType(in.EventType) {
		problems["eventType"] = "Unknown event type"
	}
	if in.EventDate == "" {
		problems["eventDate"] = "Event date is required"
	}
	if in.EventTime == "" {
		problems["eventTime"] = "Event time is required"
	}
	return problems
}

// validateContactIntake checks the general contact form's required fields.
func validateContactIntake(in intakeInput) map[string]string {
	problems := map[string]string{}
	if in.Name == "" {
		problems["name"] = "Name is required"
	}
	if in.Email == "" {
		problems["email"] = "Email is required"
	}
	if in.Message == "" {
		problems["message"] = "Message is required"
	}
	return problems
}

// handleEventIntake accepts an event planning request from the public site.
func handleEventIntake(re *core.RequestEvent, app core.App) error {
	var input intakeInput
	if err := json.NewDecoder(re.Request.Body).Decode(&input); err != nil {
		return utils.BadRequestResponse(re, "Invalid request body")
	}

	if problems := validateEventIntake(input); len(problems) > 0 {
		return validationResponse(re, problems)
	}

	return createSubmission(re, app, input, submissions.StatusPending)
}

// handleContactIntake accepts a general contact message from the public site.
func handleContactIntake(re *core.RequestEvent, app core.App) error {
	var input intakeInput
	if err := json.NewDecoder(re.Request.Body).Decode(&input); err != nil {
		return utils.BadRequestResponse(re, "Invalid request body")
	}

	if problems := validateContactIntake(input); len(problems) > 0 {
		return validationResponse(re, problems)
	}

	return createSubmission(re, app, input, submissions.StatusNew)
}

func validationResponse(re *core.RequestEvent, problems map[string]string) error {
	return re.JSON(http.StatusBadRequest, map[string]any{
		"error":  "Please fill in all required fields",
		"fields": problems,
	})
}

// createSubmission writes one new document with the given initial status.
// The store assigns the id and the creation timestamp.
func createSubmission(re *core.RequestEvent, app core.App, input intakeInput, initial submissions.Status) error {
	collection, err := app.FindCollectionByNameOrId(utils.CollectionSubmissions)
	if err != nil {
		log.Printf("[Intake] Submissions collection unavailable: %v", err)
		return utils.UnavailableResponse(re, "Service unavailable. Please try again later.")
	}

	record := core.NewRecord(collection)
	record.Set("name", input.Name)
	record.Set("email", utils.NormalizeEmail(input.Email))
	record.Set("contact_number", input.ContactNumber)
	record.Set("event_type", input.EventType)
	record.Set("event_date", input.EventDate)
	record.Set("event_time", input.EventTime)
	record.Set("location", input.Location)
	record.Set("message", input.Message)
	record.Set("status", string(initial))

	if err := app.Save(record); err != nil {
		// Store validation failures carry per-field messages; anything
		// else stays internal
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return re.JSON(http.StatusBadRequest, map[string]any{
				"error":  "Please check the submitted fields",
				"fields": fieldErrs,
			})
		}
		log.Printf("[Intake] Failed to save submission: %v", err)
		return utils.InternalErrorResponse(re, "Failed to save your submission. Please try again.")
	}

	sub := normalizeRecord(record)

	// Confirmation email is best effort; intake succeeds regardless
	go sendSubmissionConfirmation(app, sub)

	return re.JSON(http.StatusCreated, sub)
}

// handleSubscribe records a newsletter subscription from the site footer.
func handleSubscribe(re *core.RequestEvent, app core.App) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(re.Request.Body).Decode(&input); err != nil {
		return utils.BadRequestResponse(re, "Invalid request body")
	}
	if input.Email == "" {
		return validationResponse(re, map[string]string{"email": "Email is required"})
	}

	email := utils.NormalizeEmail(input.Email)

	// Subscribing twice is a no-op, not an error
	existing, _ := app.FindRecordsByFilter(utils.CollectionSubscriptions, "email = {:email}", "", 1, 0, map[string]any{"email": email})
	if len(existing) > 0 {
		return utils.SuccessResponse(re, "Already subscribed")
	}

	collection, err := app.FindCollectionByNameOrId(utils.CollectionSubscriptions)
	if err != nil {
		log.Printf("[Subscribe] Subscriptions collection unavailable: %v", err)
		return utils.UnavailableResponse(re, "Service unavailable. Please try again later.")
	}

	record := core.NewRecord(collection)
	record.Set("email", email)

	if err := app.Save(record); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return re.JSON(http.StatusBadRequest, map[string]any{
				"error":  "Please check the submitted fields",
				"fields": fieldErrs,
			})
		}
		log.Printf("[Subscribe] Failed to save subscription: %v", err)
		return utils.InternalErrorResponse(re, "Failed to subscribe. Please try again.")
	}

	return re.JSON(http.StatusCreated, map[string]string{"message": "Subscribed"})
}
