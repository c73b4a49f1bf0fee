package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
)

// SlotConstraint names the partial unique index over active appointments.
// Inserts racing past the application-level availability check fail on it and
// are mapped to the same conflict as the fast path.
const SlotConstraint = "appointments_active_slot_idx"

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) error
	ListAppointments(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error)
	SlotTaken(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (bool, error)
	ListBookedTimes(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error)
}

type appointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepo(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{DB: db}
}

const appointmentColumns = `id, appointment_number, patient_id, patient_name, patient_email, patient_phone,
		doctor_id, doctor_name, appointment_date, appointment_time, symptoms, notes, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (*models.Appointment, error) {
	appointment := &models.Appointment{}

	var patientID uuid.NullUUID

	var patientPhone, doctorName, symptoms, notes sql.NullString

	err := row.Scan(&appointment.ID, &appointment.AppointmentNumber, &patientID,
		&appointment.PatientName, &appointment.PatientEmail, &patientPhone,
		&appointment.DoctorID, &doctorName, &appointment.Date, &appointment.Time,
		&symptoms, &notes, &appointment.Status, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if patientID.Valid {
		appointment.PatientID = &patientID.UUID
	}

	appointment.PatientPhone = patientPhone.String
	appointment.DoctorName = doctorName.String
	appointment.Symptoms = symptoms.String
	appointment.Notes = notes.String

	return appointment, nil
}

func (r *appointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO appointments (appointment_number, patient_id, patient_name, patient_email, patient_phone,
		                          doctor_id, doctor_name, appointment_date, appointment_time, symptoms, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, appointment.AppointmentNumber, appointment.PatientID,
		appointment.PatientName, appointment.PatientEmail, appointment.PatientPhone,
		appointment.DoctorID, appointment.DoctorName, appointment.Date, appointment.Time,
		appointment.Symptoms, appointment.Notes, appointment.Status).
		Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	appointment, err := scanAppointment(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return appointment, nil
}

func (r *appointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE appointments
		SET patient_name = $1, patient_email = $2, patient_phone = $3, doctor_id = $4, doctor_name = $5,
		    appointment_date = $6, appointment_time = $7, symptoms = $8, notes = $9, status = $10,
		    updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, appointment.PatientName, appointment.PatientEmail,
		appointment.PatientPhone, appointment.DoctorID, appointment.DoctorName,
		appointment.Date, appointment.Time, appointment.Symptoms, appointment.Notes,
		appointment.Status, appointment.ID).
		Scan(&appointment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListAppointments applies the allow-listed filters, soonest first.
func (r *appointmentRepository) ListAppointments(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var conditions []string

	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		conditions = append(conditions, fmt.Sprintf("doctor_id = $%d", len(args)))
	}

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", len(args)))
	}

	if filter.Date != "" {
		args = append(args, filter.Date)
		conditions = append(conditions, fmt.Sprintf("appointment_date = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM appointments`, appointmentColumns)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY appointment_date, appointment_time"

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	defer rows.Close()

	var appointments []*models.Appointment

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}

		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appointments, nil
}

// SlotTaken is the fast-path availability check. The partial unique index is
// the authoritative guard; this only exists to answer the common case before
// attempting the insert.
func (r *appointmentRepository) SlotTaken(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND appointment_date = $2 AND appointment_time = $3
			AND status IN ('pending', 'confirmed')
		)
	`

	err := r.DB.QueryRowContext(dbCtx, query, doctorID, date, timeOfDay).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}

	return exists, nil
}

func (r *appointmentRepository) ListBookedTimes(ctx context.Context, doctorID uuid.UUID, date string) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT appointment_time FROM appointments
		WHERE doctor_id = $1 AND appointment_date = $2 AND status IN ('pending', 'confirmed')
		ORDER BY appointment_time
	`

	rows, err := r.DB.QueryContext(dbCtx, query, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked times: %w", err)
	}

	defer rows.Close()

	var times []string

	for rows.Next() {
		var t string

		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan booked time: %w", err)
		}

		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return times, nil
}
