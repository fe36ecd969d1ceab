package intake

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// test submission email validation
func TestSubmission_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"plain address", "x@y.com", nil},
		{"subdomain", "user@mail.example.org", nil},
		{"permissive about consecutive dots", "a@b..com", nil},
		{"empty", "", ErrInvalidEmail},
		{"missing at sign", "xy.com", ErrInvalidEmail},
		{"missing dot", "x@ycom", ErrInvalidEmail},
		{"only at sign", "@", ErrInvalidEmail},
		{"dot before at but not after", "x.y@com", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Submission{"email": tt.email}
			err := sub.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmission_Validate_MissingField(t *testing.T) {
	sub := Submission{"programmer": "Gameplay"}
	if err := sub.Validate(); err != ErrInvalidEmail {
		t.Errorf("Validate() error = %v, want %v", err, ErrInvalidEmail)
	}
}

func TestParseSubmission_JSON(t *testing.T) {
	body := `{"email": "x@y.com", "programmer": "Gameplay", "discordUser": "someone#1234"}`
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	sub, err := ParseSubmission(req)
	if err != nil {
		t.Fatalf("ParseSubmission() error = %v", err)
	}
	if sub.Email() != "x@y.com" {
		t.Errorf("Email() = %q, want %q", sub.Email(), "x@y.com")
	}
	if sub["discordUser"] != "someone#1234" {
		t.Errorf("discordUser = %q, want %q", sub["discordUser"], "someone#1234")
	}
}

func TestParseSubmission_Form(t *testing.T) {
	form := url.Values{}
	form.Set("email", "x@y.com")
	form.Set("musician", "Composer")

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	sub, err := ParseSubmission(req)
	if err != nil {
		t.Fatalf("ParseSubmission() error = %v", err)
	}
	if sub.Email() != "x@y.com" {
		t.Errorf("Email() = %q, want %q", sub.Email(), "x@y.com")
	}
	if sub["musician"] != "Composer" {
		t.Errorf("musician = %q, want %q", sub["musician"], "Composer")
	}
}

func TestParseSubmission_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	if _, err := ParseSubmission(req); err != ErrBadPayload {
		t.Errorf("ParseSubmission() error = %v, want %v", err, ErrBadPayload)
	}
}
