package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if err := createSubmissionsCollection(app); err != nil {
			return err
		}
		if err := createSubscriptionsCollection(app); err != nil {
			return err
		}
		return nil
	}, nil)
}

func createSubmissionsCollection(app core.App) error {
	existing, _ := app.FindCollectionByNameOrId("submissions")
	if existing != nil {
		return nil // Already exists
	}

	collection := core.NewBaseCollection("submissions")

	collection.Fields.Add(
		&core.TextField{
			Id:       "sub_name",
			Name:     "name",
			Required: true,
			Max:      200,
		},
		&core.EmailField{
			Id:       "sub_email",
			Name:     "email",
			Required: true,
		},
		&core.TextField{
			Id:   "sub_contact_number",
			Name: "contact_number",
			Max:  50,
		},
		&core.SelectField{
			Id:        "sub_event_type",
			Name:      "event_type",
			MaxSelect: 1,
			Values: []string{
				"wedding", "corporate", "birthday", "anniversary",
				"graduation", "baby-shower", "other",
			},
		},
		&core.TextField{
			Id:   "sub_event_date",
			Name: "event_date",
			Max:  20,
		},
		&core.TextField{
			Id:   "sub_event_time",
			Name: "event_time",
			Max:  20,
		},
		&core.TextField{
			Id:   "sub_location",
			Name: "location",
			Max:  500,
		},
		&core.TextField{
			Id:   "sub_message",
			Name: "message",
			Max:  10000,
		},
		&core.SelectField{
			Id:        "sub_status",
			Name:      "status",
			MaxSelect: 1,
			Values: []string{
				"new", "read", "responded", "pending", "approved", "denied",
			},
		},
		&core.AutodateField{
			Id:       "sub_created",
			Name:     "created",
			OnCreate: true,
		},
		&core.AutodateField{
			Id:       "sub_updated",
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		},
	)

	collection.Indexes = []string{
		"CREATE INDEX idx_submissions_status ON submissions (status)",
		"CREATE INDEX idx_submissions_created ON submissions (created)",
	}

	// All access goes through the custom admin routes; the record API stays closed
	collection.ListRule = nil
	collection.ViewRule = nil
	collection.CreateRule = nil
	collection.UpdateRule = nil
	collection.DeleteRule = nil

	return app.Save(collection)
}

func createSubscriptionsCollection(app core.App) error {
	existing, _ := app.FindCollectionByNameOrId("subscriptions")
	if existing != nil {
		return nil // Already exists
	}

	collection := core.NewBaseCollection("subscriptions")

	collection.Fields.Add(
		&core.EmailField{
			Id:       "subsc_email",
			Name:     "email",
			Required: true,
		},
		&core.AutodateField{
			Id:       "subsc_created",
			Name:     "created",
			OnCreate: true,
		},
	)

	collection.Indexes = []string{
		"CREATE UNIQUE INDEX idx_subscriptions_email ON subscriptions (email)",
	}

	collection.ListRule = nil
	collection.ViewRule = nil
	collection.CreateRule = nil
	collection.UpdateRule = nil
	collection.DeleteRule = nil

	return app.Save(collection)
}
