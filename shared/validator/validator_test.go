package validator_test

import (
	"strings"
	"testing"
	"time"

	"boxes/shared/failure"
	"boxes/shared/validator"
)

type bookingPayload struct {
	PlaceID int       `json:"placeId"       validate:"required,gt=0"`
	StartAt time.Time `json:"startAt"       validate:"required,future"`
	Label   string    `json:"label"         validate:"required,max=10"`
	Contact contact   `json:"contact"       validate:"required"`
}

type contact struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func validPayload() bookingPayload {
	return bookingPayload{
		PlaceID: 7,
		StartAt: time.Now().Add(time.Hour),
		Label:   "oil change",
		Contact: contact{
			Name:  "Jane",
			Email: "jane@example.com",
		},
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	payload := validPayload()

	if err := validator.ValidateStruct(&payload); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStruct_AggregatesAllViolations(t *testing.T) {
	payload := bookingPayload{
		PlaceID: 0,
		StartAt: time.Now().Add(-time.Hour),
		Label:   "this label is way too long",
		Contact: contact{
			Name:  "",
			Email: "not-an-email",
		},
	}

	err := validator.ValidateStruct(&payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := failure.GetFields(err)

	for _, field := range []string{"placeId", "startAt", "label", "contact.name", "contact.email"} {
		if len(fields[field]) == 0 {
			t.Errorf("expected a violation for %s, got none (fields: %v)", field, fields)
		}
	}
}

func TestValidateStruct_FutureRule(t *testing.T) {
	payload := validPayload()
	payload.StartAt = time.Now().Add(-time.Minute)

	err := validator.ValidateStruct(&payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := failure.GetFields(err)
	if len(fields["startAt"]) != 1 || fields["startAt"][0] != "startAt must be a future date" {
		t.Errorf("unexpected violations for startAt: %v", fields["startAt"])
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{
		"placeId": 7,
		"startAt": "2099-01-02T15:04:05Z",
		"label": "brakes",
		"contact": {"name": "Jane", "email": "jane@example.com"}
	}`)

	var payload bookingPayload
	if err := validator.Validate(body, &payload); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if payload.PlaceID != 7 {
		t.Errorf("expected placeId 7, got %d", payload.PlaceID)
	}
}

func TestValidate_MalformedBody(t *testing.T) {
	var payload bookingPayload

	err := validator.Validate(strings.NewReader("{not json"), &payload)
	if err == nil {
		t.Fatal("expected decode error")
	}

	if failure.GetCode(err) != 400 {
		t.Errorf("expected code 400, got %d", failure.GetCode(err))
	}
}

func TestDecode_SkipsRules(t *testing.T) {
	var payload bookingPayload

	// Violates every rule, but Decode only parses.
	if err := validator.Decode(strings.NewReader(`{"placeId": 0}`), &payload); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
