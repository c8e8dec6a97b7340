package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"boxes/internal/domains/appointment/model"
	"boxes/shared/failure"
)

func futureTime() time.Time {
	return time.Now().UTC().Add(24 * time.Hour)
}

func validContact(t *testing.T) model.Contact {
	t.Helper()

	contact, err := model.NewContact("Jane Doe", "jane@example.com", nil)
	assert.NoError(t, err)

	return contact
}

func TestNewContact(t *testing.T) {
	phone := "+54 11 5555 0000"
	longString := strings.Repeat("x", 201)
	longPhone := strings.Repeat("1", 51)

	tests := []struct {
		name      string
		input     func() (model.Contact, error)
		wantErr   bool
		wantField string
	}{
		{
			name: "valid contact",
			input: func() (model.Contact, error) {
				return model.NewContact("Jane Doe", "jane@example.com", &phone)
			},
		},
		{
			name: "missing name",
			input: func() (model.Contact, error) {
				return model.NewContact("   ", "jane@example.com", nil)
			},
			wantErr:   true,
			wantField: "contact.name",
		},
		{
			name: "name too long",
			input: func() (model.Contact, error) {
				return model.NewContact(longString, "jane@example.com", nil)
			},
			wantErr:   true,
			wantField: "contact.name",
		},
		{
			name: "missing email",
			input: func() (model.Contact, error) {
				return model.NewContact("Jane Doe", "", nil)
			},
			wantErr:   true,
			wantField: "contact.email",
		},
		{
			name: "invalid email",
			input: func() (model.Contact, error) {
				return model.NewContact("Jane Doe", "not-an-email", nil)
			},
			wantErr:   true,
			wantField: "contact.email",
		},
		{
			name: "phone too long",
			input: func() (model.Contact, error) {
				return model.NewContact("Jane Doe", "jane@example.com", &longPhone)
			},
			wantErr:   true,
			wantField: "contact.phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input()

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.NotEmpty(t, failure.GetFields(err)[tt.wantField])
		})
	}
}

func TestNewVehicle_LicensePlateTooLong(t *testing.T) {
	plate := strings.Repeat("A", 21)

	_, err := model.NewVehicle(nil, nil, nil, &plate)

	assert.Error(t, err)
	assert.NotEmpty(t, failure.GetFields(err)["vehicle.licensePlate"])
}

func TestNewVehicle_AllFieldsOptional(t *testing.T) {
	vehicle, err := model.NewVehicle(nil, nil, nil, nil)

	assert.NoError(t, err)
	assert.NotNil(t, vehicle)
}

func TestNewAppointment(t *testing.T) {
	tests := []struct {
		name          string
		placeID       int
		appointmentAt time.Time
		serviceType   string
		wantField     string
	}{
		{
			name:          "non-positive place id",
			placeID:       0,
			appointmentAt: futureTime(),
			serviceType:   "oil change",
			wantField:     "placeId",
		},
		{
			name:          "past appointment time",
			placeID:       1,
			appointmentAt: time.Now().UTC().Add(-time.Hour),
			serviceType:   "oil change",
			wantField:     "appointmentAt",
		},
		{
			name:          "missing service type",
			placeID:       1,
			appointmentAt: futureTime(),
			serviceType:   "  ",
			wantField:     "serviceType",
		},
		{
			name:          "service type too long",
			placeID:       1,
			appointmentAt: futureTime(),
			serviceType:   strings.Repeat("s", 201),
			wantField:     "serviceType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewAppointment(tt.placeID, tt.appointmentAt, tt.serviceType, validContact(t), nil)

			assert.Error(t, err)
			assert.NotEmpty(t, failure.GetFields(err)[tt.wantField])
		})
	}
}

func TestNewAppointment_Valid(t *testing.T) {
	appointment, err := model.NewAppointment(7, futureTime(), "oil change", validContact(t), nil)

	assert.NoError(t, err)
	assert.Equal(t, 7, appointment.PlaceID)
	assert.Equal(t, appointment.CreatedAt, appointment.UpdatedAt)
	assert.False(t, appointment.CreatedAt.IsZero())
	assert.Zero(t, appointment.GetID(), "id is assigned by the store, not the constructor")
}
