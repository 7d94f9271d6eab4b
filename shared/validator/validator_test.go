package validator_test

import (
	"reserva/shared/validator"
	"strings"
	"testing"
)

type quoteRequest struct {
	ResourceTypeID string `json:"resource_type_id" validate:"required"`
	Checkin        string `json:"checkin"          validate:"required,dateonly"`
	Checkout       string `json:"checkout"         validate:"required,dateonly"`
	Units          int    `json:"units"            validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"resource_type_id": "rt-1", "checkin": "2024-03-01", "checkout": "2024-03-05"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"checkin": "2024-03-01", "checkout": "2024-03-05"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"resource_type_id": "rt-1", "checkin": "01/03/2024", "checkout": "2024-03-05"}`,
			wantErr: true,
		},
		{
			name:    "invalid json",
			body:    `{"resource_type_id": `,
			wantErr: true,
		},
		{
			name:    "units below minimum",
			body:    `{"resource_type_id": "rt-1", "checkin": "2024-03-01", "checkout": "2024-03-05", "units": 0}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := quoteRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2024-03-01", "dateonly"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "dateonly"); err == nil {
		t.Error("expected error for malformed date")
	}
}
