package models

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	ImageURL       string    `json:"image_url,omitempty"`
	Education      []string  `json:"education"`
	Languages      []string  `json:"languages"`
	About          string    `json:"about,omitempty"`
	Category       string    `json:"category,omitempty"`
	Rating         float64   `json:"rating"`
	Reviews        int       `json:"reviews"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateDoctorRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=200"`
	Specialization string   `json:"specialization" validate:"required,min=2,max=100"`
	Experience     *int     `json:"experience" validate:"required,gte=0"`
	ImageURL       string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Education      []string `json:"education,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	About          string   `json:"about,omitempty"`
	Category       string   `json:"category,omitempty"`
}

type UpdateDoctorRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Specialization *string   `json:"specialization,omitempty" validate:"omitempty,min=2,max=100"`
	Experience     *int      `json:"experience,omitempty" validate:"omitempty,gte=0"`
	ImageURL       *string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Education      *[]string `json:"education,omitempty"`
	Languages      *[]string `json:"languages,omitempty"`
	About          *string   `json:"about,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Rating         *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Reviews        *int      `json:"reviews,omitempty" validate:"omitempty,gte=0"`
	Available      *bool     `json:"available,omitempty"`
}

type DoctorFilter struct {
	Specialization string
	Category       string
	Available      *bool
	Search         string
}

// DoctorAvailability lists the times already taken for a doctor on a date.
type DoctorAvailability struct {
	Date        string   `json:"date"`
	BookedTimes []string `json:"bookedTimes"`
}
