package service

import (
	"context"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.Doctor, error)
	GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *models.UpdateDoctorRequest) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListDoctors(ctx context.Context, filter *models.DoctorFilter) ([]*models.Doctor, error)
	GetAvailability(ctx context.Context, id uuid.UUID, date string) (*models.DoctorAvailability, error)
}

type doctorService struct {
	repo            repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	sanitizer       *bluemonday.Policy
}

func NewDoctorService(repo repository.DoctorRepository, appointmentRepo repository.AppointmentRepository) DoctorService {
	return &doctorService{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		sanitizer:       bluemonday.UGCPolicy(),
	}
}

func (s *doctorService) CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.Doctor, error) {
	doctor := &models.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		ImageURL:       req.ImageURL,
		Education:      req.Education,
		Languages:      req.Languages,
		About:          s.sanitizer.Sanitize(req.About),
		Category:       req.Category,
		Available:      true,
	}

	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}

	if err := s.repo.CreateDoctor(ctx, doctor); err != nil {
		return nil, errors.DatabaseError("Failed to create doctor").WithError(err)
	}

	return doctor, nil
}

func (s *doctorService) GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	doctor, err := s.repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Doctor not found").WithError(err)
	}

	return doctor, nil
}

func (s *doctorService) UpdateDoctor(ctx context.Context, id uuid.UUID, req *models.UpdateDoctorRequest) (*models.Doctor, error) {
	doctor, err := s.repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Doctor not found").WithError(err)
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}

	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}

	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}

	if req.ImageURL != nil {
		doctor.ImageURL = *req.ImageURL
	}

	if req.Education != nil {
		doctor.Education = *req.Education
	}

	if req.Languages != nil {
		doctor.Languages = *req.Languages
	}

	if req.About != nil {
		doctor.About = s.sanitizer.Sanitize(*req.About)
	}

	if req.Category != nil {
		doctor.Category = *req.Category
	}

	if req.Rating != nil {
		doctor.Rating = *req.Rating
	}

	if req.Reviews != nil {
		doctor.Reviews = *req.Reviews
	}

	if req.Available != nil {
		doctor.Available = *req.Available
	}

	if err := s.repo.UpdateDoctor(ctx, doctor); err != nil {
		return nil, errors.DatabaseError("Failed to update doctor").WithError(err)
	}

	return doctor, nil
}

func (s *doctorService) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDoctor(ctx, id); err != nil {
		return errors.NotFoundError("Doctor not found").WithError(err)
	}

	return nil
}

func (s *doctorService) ListDoctors(ctx context.Context, filter *models.DoctorFilter) ([]*models.Doctor, error) {
	doctors, err := s.repo.ListDoctors(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch doctors").WithError(err)
	}

	return doctors, nil
}

// GetAvailability returns the slots already taken for the doctor on the given
// date. The storefront renders the free slots from its fixed time grid.
func (s *doctorService) GetAvailability(ctx context.Context, id uuid.UUID, date string) (*models.DoctorAvailability, error) {
	if _, err := s.repo.GetDoctorByID(ctx, id); err != nil {
		return nil, errors.NotFoundError("Doctor not found").WithError(err)
	}

	booked, err := s.appointmentRepo.ListBookedTimes(ctx, id, date)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch availability").WithError(err)
	}

	if booked == nil {
		booked = []string{}
	}

	return &models.DoctorAvailability{Date: date, BookedTimes: booked}, nil
}
