package requests

import "medrecord-service/internal/app/models"

type CreatePatient struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	DateOfBirth     string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender          string `json:"gender" validate:"required"`
	ContactNumber   string `json:"contact_number" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Address         string `json:"address" validate:"required"`
	VisitDate       string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	DoctorName      string `json:"doctor_name" validate:"required"`
	Diagnosis       string `json:"diagnosis" validate:"required"`
	Prescription    string `json:"prescription" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	Purpose         string `json:"purpose" validate:"required"`
	Notes           string `json:"notes" validate:"required"`
}

func (r *CreatePatient) ToModel() *models.Patient {
	return &models.Patient{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		DateOfBirth:     r.DateOfBirth,
		Gender:          r.Gender,
		ContactNumber:   r.ContactNumber,
		Email:           r.Email,
		Address:         r.Address,
		VisitDate:       r.VisitDate,
		DoctorName:      r.DoctorName,
		Diagnosis:       r.Diagnosis,
		Prescription:    r.Prescription,
		AppointmentDate: r.AppointmentDate,
		Purpose:         r.Purpose,
		Notes:           r.Notes,
	}
}

// UpdatePatient is the sparse variant: nil fields were absent from the payload
// and are dropped before the write, so "update with nothing" stays a no-op
// distinguishable from "update field to empty string".
type UpdatePatient struct {
	FirstName       *string `json:"first_name" validate:"omitempty"`
	LastName        *string `json:"last_name" validate:"omitempty"`
	DateOfBirth     *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender          *string `json:"gender" validate:"omitempty"`
	ContactNumber   *string `json:"contact_number" validate:"omitempty"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Address         *string `json:"address" validate:"omitempty"`
	VisitDate       *string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	DoctorName      *string `json:"doctor_name" validate:"omitempty"`
	Diagnosis       *string `json:"diagnosis" validate:"omitempty"`
	Prescription    *string `json:"prescription" validate:"omitempty"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,datetime=2006-01-02"`
	Purpose         *string `json:"purpose" validate:"omitempty"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

// Fields returns only the supplied fields keyed by their stored names.
func (r *UpdatePatient) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	put := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}
	put("first_name", r.FirstName)
	put("last_name", r.LastName)
	put("date_of_birth", r.DateOfBirth)
	put("gender", r.Gender)
	put("contact_number", r.ContactNumber)
	put("email", r.Email)
	put("address", r.Address)
	put("visit_date", r.VisitDate)
	put("doctor_name", r.DoctorName)
	put("diagnosis", r.Diagnosis)
	put("prescription", r.Prescription)
	put("appointment_date", r.AppointmentDate)
	put("purpose", r.Purpose)
	put("notes", r.Notes)
	return fields
}
