package model

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"boxes/shared/failure"
	gModel "boxes/shared/model"
	"boxes/shared/timezone"
)

const (
	EntityName = "appointment"

	maxServiceTypeLength  = 200
	maxContactNameLength  = 200
	maxContactEmailLength = 200
	maxContactPhoneLength = 50
	maxLicensePlateLength = 20
)

// Contact is the person booking the appointment. Owned exclusively by the
// appointment; no separate lifecycle.
type Contact struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

func NewContact(name, email string, phone *string) (Contact, error) {
	if strings.TrimSpace(name) == "" {
		return Contact{}, failure.InvalidField("contact.name", "contact.name is required") //nolint:wrapcheck
	}

	if len(name) > maxContactNameLength {
		return Contact{}, failure.InvalidField("contact.name", fmt.Sprintf("contact.name must be less than or equal to %d characters", maxContactNameLength)) //nolint:wrapcheck
	}

	if strings.TrimSpace(email) == "" {
		return Contact{}, failure.InvalidField("contact.email", "contact.email is required") //nolint:wrapcheck
	}

	if len(email) > maxContactEmailLength {
		return Contact{}, failure.InvalidField("contact.email", fmt.Sprintf("contact.email must be less than or equal to %d characters", maxContactEmailLength)) //nolint:wrapcheck
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return Contact{}, failure.InvalidField("contact.email", "contact.email must be a valid email address") //nolint:wrapcheck
	}

	if phone != nil && len(*phone) > maxContactPhoneLength {
		return Contact{}, failure.InvalidField("contact.phone", fmt.Sprintf("contact.phone must be less than or equal to %d characters", maxContactPhoneLength)) //nolint:wrapcheck
	}

	return Contact{
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

// Vehicle is the optional vehicle the appointment is for. Every field is
// optional.
type Vehicle struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
}

func NewVehicle(makeName, modelName *string, year *int, licensePlate *string) (*Vehicle, error) {
	if licensePlate != nil && len(*licensePlate) > maxLicensePlateLength {
		return nil, failure.InvalidField("vehicle.licensePlate", fmt.Sprintf("vehicle.licensePlate must be less than or equal to %d characters", maxLicensePlateLength)) //nolint:wrapcheck
	}

	return &Vehicle{
		Make:         makeName,
		Model:        modelName,
		Year:         year,
		LicensePlate: licensePlate,
	}, nil
}

// Appointment is a booked service slot at a workshop. Instances only exist
// fully valid: the constructor rejects anything that violates an invariant,
// so no partial appointment is ever observable.
type Appointment struct {
	gModel.Metadata

	PlaceID       int       `json:"place_id"`
	AppointmentAt time.Time `json:"appointment_at"`
	ServiceType   string    `json:"service_type"`
	Contact       Contact   `json:"contact"`
	Vehicle       *Vehicle  `json:"vehicle,omitempty"`
}

func NewAppointment(placeID int, appointmentAt time.Time, serviceType string, contact Contact, vehicle *Vehicle) (*Appointment, error) {
	if placeID <= 0 {
		return nil, failure.InvalidField("placeId", "placeId must be greater than 0") //nolint:wrapcheck
	}

	now := timezone.Now().UTC()

	if !appointmentAt.After(now) {
		return nil, failure.InvalidField("appointmentAt", "appointmentAt must be a future date") //nolint:wrapcheck
	}

	if strings.TrimSpace(serviceType) == "" {
		return nil, failure.InvalidField("serviceType", "serviceType is required") //nolint:wrapcheck
	}

	if len(serviceType) > maxServiceTypeLength {
		return nil, failure.InvalidField("serviceType", fmt.Sprintf("serviceType must be less than or equal to %d characters", maxServiceTypeLength)) //nolint:wrapcheck
	}

	appointment := &Appointment{
		PlaceID:       placeID,
		AppointmentAt: appointmentAt,
		ServiceType:   serviceType,
		Contact:       contact,
		Vehicle:       vehicle,
	}
	appointment.SetCreatedAt(now)
	appointment.SetUpdatedAt(now)

	return appointment, nil
}
