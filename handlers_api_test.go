package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"
)

const testAdminPassword = "test-dashboard-secret"

// seedSubmission stores one event submission with a fixed id so scenarios
// can address it by URL.
func seedSubmission(t testing.TB, app core.App, id string) {
	collection, err := app.FindCollectionByNameOrId(utils.CollectionSubmissions)
	if err != nil {
		t.Fatal(err)
	}

	record := core.NewRecord(collection)
	record.Id = id
	record.Set("name", "Jane Doe")
	record.Set("email", "jane@example.com")
	record.Set("contact_number", "+1 555 000 1111")
	record.Set("event_type", "wedding")
	record.Set("event_date", "2026-05-01")
	record.Set("event_time", "14:00")
	record.Set("status", string(submissions.StatusPending))

	if err := app.Save(record); err != nil {
		t.Fatal(err)
	}
}

func adminAuthHeader(t testing.TB) map[string]string {
	token, err := utils.CreateAdminSession(utils.AdminSessionTTL)
	if err != nil {
		t.Fatal(err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminLoginAPI(t *testing.T) {
	t.Setenv(utils.EnvAdminPassword, testAdminPassword)

	scenarios := []tests.ApiScenario{
		{
			Name:   "wrong password is rejected and no token is issued",
			Method: http.MethodPost,
			URL:    "/api/admin/login",
			Body:   strings.NewReader(`{"password":"not-the-secret"}`),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				registerRoutes(e, app)
			},
			ExpectedStatus:     http.StatusUnauthorized,
			ExpectedContent:    []string{"Incorrect password"},
			NotExpectedContent: []string{"token"},
		},
		{
			Name:   "correct password issues a session token",
			Method: http.MethodPost,
			URL:    "/api/admin/login",
			Body:   strings.NewReader(`{"password":"` + testAdminPassword + `"}`),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				registerRoutes(e, app)
			},
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{`"token"`, `"expiresIn"`},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestAdminSubmissionDeleteAPI(t *testing.T) {
	t.Setenv(utils.EnvAdminPassword, testAdminPassword)

	scenarios := []tests.ApiScenario{
		{
			Name:    "delete removes the record from the store",
			Method:  http.MethodDelete,
			URL:     "/api/admin/submissions/testsubrecord01",
			Headers: adminAuthHeader(t),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				seedSubmission(t, app, "testsubrecord01")
				registerRoutes(e, app)
			},
			AfterTestFunc: func(t testing.TB, app *tests.TestApp, res *http.Response) {
				if _, err := app.FindRecordById(utils.CollectionSubmissions, "testsubrecord01"); err == nil {
					t.Error("record still present after delete")
				}
				records, err := app.FindAllRecords(utils.CollectionSubmissions)
				if err != nil {
					t.Fatal(err)
				}
				if len(records) != 0 {
					t.Errorf("expected no records after delete, got %d", len(records))
				}
			},
			ExpectedStatus:  http.StatusOK,
			ExpectedContent: []string{"Submission deleted"},
		},
		{
			Name:    "delete of an unknown id errors and changes nothing",
			Method:  http.MethodDelete,
			URL:     "/api/admin/submissions/missingrecord01",
			Headers: adminAuthHeader(t),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				seedSubmission(t, app, "testsubrecord01")
				registerRoutes(e, app)
			},
			AfterTestFunc: func(t testing.TB, app *tests.TestApp, res *http.Response) {
				if _, err := app.FindRecordById(utils.CollectionSubmissions, "testsubrecord01"); err != nil {
					t.Errorf("existing record was affected: %v", err)
				}
			},
			ExpectedStatus:  http.StatusNotFound,
			ExpectedContent: []string{"Submission not found"},
		},
		{
			Name:   "delete without a session token is rejected",
			Method: http.MethodDelete,
			URL:    "/api/admin/submissions/testsubrecord01",
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				seedSubmission(t, app, "testsubrecord01")
				registerRoutes(e, app)
			},
			AfterTestFunc: func(t testing.TB, app *tests.TestApp, res *http.Response) {
				if _, err := app.FindRecordById(utils.CollectionSubmissions, "testsubrecord01"); err != nil {
					t.Errorf("record was deleted without a session: %v", err)
				}
			},
			ExpectedStatus:  http.StatusUnauthorized,
			ExpectedContent: []string{"Unauthorized"},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}

func TestEventIntakeAPI(t *testing.T) {
	scenarios := []tests.ApiScenario{
		{
			Name:   "valid request persists a pending submission",
			Method: http.MethodPost,
			URL:    "/api/submissions",
			Body: strings.NewReader(`{
				"name": "Jane Doe",
				"email": "jane@example.com",
				"contactNumber": "+1 555 000 1111",
				"eventType": "wedding",
				"eventDate": "2026-05-01",
				"eventTime": "14:00"
			}`),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				registerRoutes(e, app)
			},
			AfterTestFunc: func(t testing.TB, app *tests.TestApp, res *http.Response) {
				records, err := app.FindAllRecords(utils.CollectionSubmissions)
				if err != nil {
					t.Fatal(err)
				}
				if len(records) != 1 {
					t.Fatalf("expected 1 stored submission, got %d", len(records))
				}
				if got := records[0].GetString("status"); got != string(submissions.StatusPending) {
					t.Errorf("stored status = %q, expected pending", got)
				}
			},
			ExpectedStatus:  http.StatusCreated,
			ExpectedContent: []string{`"status":"pending"`, `"name":"Jane Doe"`},
		},
		{
			Name:   "store-level validation failure returns field errors, not internals",
			Method: http.MethodPost,
			URL:    "/api/submissions",
			Body: strings.NewReader(`{
				"name": "Jane Doe",
				"email": "not-an-email",
				"contactNumber": "+1 555 000 1111",
				"eventType": "wedding",
				"eventDate": "2026-05-01",
				"eventTime": "14:00"
			}`),
			BeforeTestFunc: func(t testing.TB, app *tests.TestApp, e *core.ServeEvent) {
				registerRoutes(e, app)
			},
			AfterTestFunc: func(t testing.TB, app *tests.TestApp, res *http.Response) {
				records, err := app.FindAllRecords(utils.CollectionSubmissions)
				if err != nil {
					t.Fatal(err)
				}
				if len(records) != 0 {
					t.Errorf("invalid submission was stored anyway")
				}
			},
			ExpectedStatus:     http.StatusBadRequest,
			ExpectedContent:    []string{`"fields"`, `"email"`},
			NotExpectedContent: []string{"sql", "sqlite"},
		},
	}

	for _, scenario := range scenarios {
		scenario.Test(t)
	}
}
