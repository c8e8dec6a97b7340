package dto

import (
	"time"

	"boxes/internal/domains/appointment/model"
	"boxes/shared/constant"
	"boxes/shared/timezone"
)

type ContactRequest struct {
	Name  string  `json:"name"  validate:"required,max=200"`
	Email string  `json:"email" validate:"required,email,max=200"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
}

type VehicleRequest struct {
	Make         *string `json:"make"         validate:"omitempty,max=100"`
	Model        *string `json:"model"        validate:"omitempty,max=100"`
	Year         *int    `json:"year"         validate:"omitempty,gt=0"`
	LicensePlate *string `json:"licensePlate" validate:"omitempty,max=20"`
}

type CreateAppointmentRequest struct {
	PlaceID       int             `json:"placeId"       validate:"required,gt=0"`
	AppointmentAt time.Time       `json:"appointmentAt" validate:"required,future"`
	ServiceType   string          `json:"serviceType"   validate:"required,max=200"`
	Contact       ContactRequest  `json:"contact"       validate:"required"`
	Vehicle       *VehicleRequest `json:"vehicle"       validate:"omitempty"`
}

// ToModel builds the domain entity, triggering its constructor invariants.
func (c *CreateAppointmentRequest) ToModel() (*model.Appointment, error) {
	contact, err := model.NewContact(c.Contact.Name, c.Contact.Email, c.Contact.Phone)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var vehicle *model.Vehicle

	if c.Vehicle != nil {
		vehicle, err = model.NewVehicle(c.Vehicle.Make, c.Vehicle.Model, c.Vehicle.Year, c.Vehicle.LicensePlate)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return model.NewAppointment(c.PlaceID, c.AppointmentAt, c.ServiceType, contact, vehicle) //nolint:wrapcheck
}

type CreateAppointmentResponse struct {
	ID int `json:"id"`
}

type ContactResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type VehicleResponse struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
}

type AppointmentResponse struct {
	ID            int              `json:"id"`
	PlaceID       int              `json:"placeId"`
	AppointmentAt string           `json:"appointmentAt"`
	ServiceType   string           `json:"serviceType"`
	Contact       ContactResponse  `json:"contact"`
	Vehicle       *VehicleResponse `json:"vehicle,omitempty"`
	CreatedAt     string           `json:"createdAt"`
}

func (r *AppointmentResponse) FromModel(appointment *model.Appointment) {
	r.ID = appointment.GetID()
	r.PlaceID = appointment.PlaceID
	r.AppointmentAt = timezone.Format(appointment.AppointmentAt, constant.DateFormat)
	r.ServiceType = appointment.ServiceType
	r.Contact = ContactResponse{
		Name:  appointment.Contact.Name,
		Email: appointment.Contact.Email,
		Phone: appointment.Contact.Phone,
	}
	r.CreatedAt = timezone.Format(appointment.GetCreatedAt(), constant.DateFormat)

	if appointment.Vehicle != nil {
		r.Vehicle = &VehicleResponse{
			Make:         appointment.Vehicle.Make,
			Model:        appointment.Vehicle.Model,
			Year:         appointment.Vehicle.Year,
			LicensePlate: appointment.Vehicle.LicensePlate,
		}
	}
}

// ListAppointmentsQuery is deliberately empty: it declares no validation
// rules and does not opt in to the caching stage.
type ListAppointmentsQuery struct{}
