package models

import (
	"time"

	"github.com/google/uuid"
)

type PrescriptionStatus string

const (
	PrescriptionStatusPending  PrescriptionStatus = "pending"
	PrescriptionStatusApproved PrescriptionStatus = "approved"
	PrescriptionStatusRejected PrescriptionStatus = "rejected"
)

type Prescription struct {
	ID                 uuid.UUID          `json:"id"`
	PrescriptionNumber string             `json:"prescription_number"`
	PatientID          *uuid.UUID         `json:"patient_id,omitempty"`
	PatientName        string             `json:"patient_name"`
	PatientEmail       string             `json:"patient_email"`
	PatientPhone       string             `json:"patient_phone,omitempty"`
	PatientAge         *int               `json:"patient_age,omitempty"`
	Address            string             `json:"address,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	Files              []string           `json:"files"`
	Status             PrescriptionStatus `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type SubmitPrescriptionRequest struct {
	PatientID    *uuid.UUID `json:"patient_id,omitempty"`
	PatientName  string     `json:"patient_name" validate:"required,min=2,max=200"`
	PatientEmail string     `json:"patient_email" validate:"required,email"`
	PatientPhone string     `json:"patient_phone,omitempty" validate:"omitempty,max=30"`
	PatientAge   *int       `json:"patient_age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Address      string     `json:"address,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Files        []string   `json:"files" validate:"required,min=1,dive,required"`
}

type UpdatePrescriptionStatusRequest struct {
	Status PrescriptionStatus `json:"status" validate:"required,oneof=pending approved rejected"`
}

type PrescriptionFilter struct {
	Status    PrescriptionStatus
	PatientID *uuid.UUID
}
