package model

import (
	"charter/shared/model"
)

const (
	TableName  = "email_templates"
	EntityName = "template"

	FieldID      = "id"
	FieldName    = "name"
	FieldType    = "type"
	FieldSubject = "subject"
	FieldBody    = "body"

	// Template types mirror the decision statuses a lead can land on.
	TypeAccepted = "Accepted"
	TypeRejected = "Rejected"
)

// EmailTemplate is a stored notification template. Type is the lead status
// that triggers it (Accepted/Rejected) and is unique per template. Body holds
// {{token}} placeholders substituted at render time.
type EmailTemplate struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Type    string `db:"type"`
	Subject string `db:"subject"`
	Body    string `db:"body"`
	model.Metadata
}
