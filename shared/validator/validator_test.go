package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"charter/shared/validator"
)

type sampleRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	People int    `json:"people" validate:"required,gte=1"`
	Kind   string `json:"kind"   validate:"omitempty,oneof=one-way return"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"email":"rider@example.com","people":2,"kind":"one-way"}`,
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing required field",
			body:    `{"email":"rider@example.com"}`,
			wantErr: "People is required",
		},
		{
			name:    "invalid email",
			body:    `{"email":"nope","people":1}`,
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "invalid enum value",
			body:    `{"email":"rider@example.com","people":1,"kind":"circular"}`,
			wantErr: "Kind must be one of one-way return",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Accepted", "oneof=Accepted Rejected"))
	assert.Error(t, validator.ValidateVar("Confirmed", "oneof=Accepted Rejected"))
}
