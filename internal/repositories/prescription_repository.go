package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	GetPrescriptionByID(ctx context.Context, id uuid.UUID) (*models.Prescription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PrescriptionStatus) error
	ListPrescriptions(ctx context.Context, filter *models.PrescriptionFilter) ([]*models.Prescription, error)
}

type prescriptionRepository struct {
	DB *sql.DB
}

func NewPrescriptionRepo(db *sql.DB) PrescriptionRepository {
	return &prescriptionRepository{DB: db}
}

const prescriptionColumns = `id, prescription_number, patient_id, patient_name, patient_email, patient_phone,
		patient_age, address, notes, files, status, created_at, updated_at`

func scanPrescription(row interface{ Scan(...any) error }) (*models.Prescription, error) {
	prescription := &models.Prescription{}

	var patientID uuid.NullUUID

	var patientPhone, address, notes sql.NullString

	var patientAge sql.NullInt64

	var files pq.StringArray

	err := row.Scan(&prescription.ID, &prescription.PrescriptionNumber, &patientID,
		&prescription.PatientName, &prescription.PatientEmail, &patientPhone,
		&patientAge, &address, &notes, &files,
		&prescription.Status, &prescription.CreatedAt, &prescription.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if patientID.Valid {
		prescription.PatientID = &patientID.UUID
	}

	if patientAge.Valid {
		age := int(patientAge.Int64)
		prescription.PatientAge = &age
	}

	prescription.PatientPhone = patientPhone.String
	prescription.Address = address.String
	prescription.Notes = notes.String
	prescription.Files = files

	return prescription, nil
}

func (r *prescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO prescriptions (prescription_number, patient_id, patient_name, patient_email, patient_phone,
		                           patient_age, address, notes, files, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, prescription.PrescriptionNumber, prescription.PatientID,
		prescription.PatientName, prescription.PatientEmail, prescription.PatientPhone,
		prescription.PatientAge, prescription.Address, prescription.Notes,
		pq.Array(prescription.Files), prescription.Status).
		Scan(&prescription.ID, &prescription.CreatedAt, &prescription.UpdatedAt)
}

func (r *prescriptionRepository) GetPrescriptionByID(ctx context.Context, id uuid.UUID) (*models.Prescription, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM prescriptions WHERE id = $1`, prescriptionColumns)

	prescription, err := scanPrescription(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return prescription, nil
}

func (r *prescriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PrescriptionStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`UPDATE prescriptions SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update prescription status: %w", err)
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

func (r *prescriptionRepository) ListPrescriptions(ctx context.Context, filter *models.PrescriptionFilter) ([]*models.Prescription, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var conditions []string

	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		conditions = append(conditions, fmt.Sprintf("patient_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM prescriptions`, prescriptionColumns)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}

	defer rows.Close()

	var prescriptions []*models.Prescription

	for rows.Next() {
		prescription, err := scanPrescription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prescription: %w", err)
		}

		prescriptions = append(prescriptions, prescription)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prescriptions, nil
}
