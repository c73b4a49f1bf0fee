package models

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment holds a booking for a doctor slot. A slot is the
// (doctor_id, appointment_date, appointment_time) tuple and may be held by at
// most one appointment whose status is pending or confirmed.
type Appointment struct {
	ID                uuid.UUID         `json:"id"`
	AppointmentNumber string            `json:"appointment_number"`
	PatientID         *uuid.UUID        `json:"patient_id,omitempty"`
	PatientName       string            `json:"patient_name"`
	PatientEmail      string            `json:"patient_email"`
	PatientPhone      string            `json:"patient_phone,omitempty"`
	DoctorID          uuid.UUID         `json:"doctor_id"`
	DoctorName        string            `json:"doctor_name,omitempty"`
	Date              string            `json:"appointment_date"`
	Time              string            `json:"appointment_time"`
	Symptoms          string            `json:"symptoms,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Status            AppointmentStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type BookAppointmentRequest struct {
	PatientID    *uuid.UUID `json:"patient_id,omitempty"`
	PatientName  string     `json:"patient_name" validate:"required,min=2,max=200"`
	PatientEmail string     `json:"patient_email" validate:"required,email"`
	PatientPhone string     `json:"patient_phone,omitempty" validate:"omitempty,max=30"`
	DoctorID     uuid.UUID  `json:"doctor_id" validate:"required"`
	DoctorName   string     `json:"doctor_name,omitempty"`
	Date         string     `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	Time         string     `json:"appointment_time" validate:"required,datetime=15:04"`
	Symptoms     string     `json:"symptoms,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientName  *string            `json:"patient_name,omitempty" validate:"omitempty,min=2,max=200"`
	PatientEmail *string            `json:"patient_email,omitempty" validate:"omitempty,email"`
	PatientPhone *string            `json:"patient_phone,omitempty" validate:"omitempty,max=30"`
	DoctorID     *uuid.UUID         `json:"doctor_id,omitempty"`
	DoctorName   *string            `json:"doctor_name,omitempty"`
	Date         *string            `json:"appointment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time         *string            `json:"appointment_time,omitempty" validate:"omitempty,datetime=15:04"`
	Symptoms     *string            `json:"symptoms,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	Status       *AppointmentStatus `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentFilter struct {
	Status    AppointmentStatus
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Date      string
}
