package utils

// Collection names
const (
	CollectionSubmissions   = "submissions"
	CollectionSubscriptions = "subscriptions"
	CollectionAuditLogs     = "audit_logs"

	// Collection written by the first-generation contact form; merged into
	// submissions by migration and kept here only for that migration path.
	CollectionLegacyContactSubmissions = "contact-submissions"
)

// Field names
const (
	FieldStatus = "status"
	FieldEmail  = "email"
)

// Environment variables
const (
	EnvAdminPassword = "ADMIN_PASSWORD"
	EnvSMTPPassword  = "SMTP_PASSWORD"
)
