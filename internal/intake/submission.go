package intake

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"regexp"
)

// validation errors
var (
	ErrInvalidEmail = errors.New("submission email is missing or malformed")
	ErrBadPayload   = errors.New("could not parse submission payload")
)

// emailPattern is deliberately permissive: something, an @, something, a dot,
// something. Anything stricter rejects addresses that deliver fine.
var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// Submission is the raw recruitment-form payload. Every key present is
// attempted for template injection; only "email" carries meaning beyond that.
type Submission map[string]string

// Email returns the submitted contact address.
func (s Submission) Email() string {
	return s["email"]
}

// Validate checks the one required field.
func (s Submission) Validate() error {
	if !emailPattern.MatchString(s.Email()) {
		return ErrInvalidEmail
	}
	return nil
}

// ParseSubmission decodes the request body. JSON bodies and urlencoded form
// posts are both accepted; the form came through a cloud-functions body
// parser originally and real clients send both.
func ParseSubmission(r *http.Request) (Submission, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch ct {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, ErrBadPayload
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, ErrBadPayload
		}
	default:
		var sub Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return nil, ErrBadPayload
		}
		return sub, nil
	}

	sub := make(Submission, len(r.PostForm))
	for key := range r.PostForm {
		sub[key] = r.PostForm.Get(key)
	}
	return sub, nil
}
