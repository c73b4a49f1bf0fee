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

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) error
	GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListDoctors(ctx context.Context, filter *models.DoctorFilter) ([]*models.Doctor, error)
}

type doctorRepository struct {
	DB *sql.DB
}

func NewDoctorRepo(db *sql.DB) DoctorRepository {
	return &doctorRepository{DB: db}
}

const doctorColumns = `id, name, specialization, experience, image_url, education, languages, about, category, rating, reviews, available, created_at, updated_at`

func scanDoctor(row interface{ Scan(...any) error }) (*models.Doctor, error) {
	doctor := &models.Doctor{}

	var imageURL, about, category sql.NullString

	var education, languages pq.StringArray

	err := row.Scan(&doctor.ID, &doctor.Name, &doctor.Specialization, &doctor.Experience,
		&imageURL, &education, &languages, &about, &category,
		&doctor.Rating, &doctor.Reviews, &doctor.Available, &doctor.CreatedAt, &doctor.UpdatedAt)
	if err != nil {
		return nil, err
	}

	doctor.ImageURL = imageURL.String
	doctor.About = about.String
	doctor.Category = category.String
	doctor.Education = education
	doctor.Languages = languages

	return doctor, nil
}

func (r *doctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO doctors (name, specialization, experience, image_url, education, languages, about, category, rating, reviews, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, doctor.Name, doctor.Specialization, doctor.Experience,
		doctor.ImageURL, pq.Array(doctor.Education), pq.Array(doctor.Languages), doctor.About,
		doctor.Category, doctor.Rating, doctor.Reviews, doctor.Available).
		Scan(&doctor.ID, &doctor.CreatedAt, &doctor.UpdatedAt)
}

func (r *doctorRepository) GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM doctors WHERE id = $1`, doctorColumns)

	doctor, err := scanDoctor(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return doctor, nil
}

func (r *doctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE doctors
		SET name = $1, specialization = $2, experience = $3, image_url = $4, education = $5,
		    languages = $6, about = $7, category = $8, rating = $9, reviews = $10, available = $11,
		    updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, doctor.Name, doctor.Specialization, doctor.Experience,
		doctor.ImageURL, pq.Array(doctor.Education), pq.Array(doctor.Languages), doctor.About,
		doctor.Category, doctor.Rating, doctor.Reviews, doctor.Available, doctor.ID).
		Scan(&doctor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	return nil
}

func (r *doctorRepository) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListDoctors applies the allow-listed filters, best rated first.
func (r *doctorRepository) ListDoctors(ctx context.Context, filter *models.DoctorFilter) ([]*models.Doctor, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var conditions []string

	var args []any

	if filter.Specialization != "" {
		args = append(args, filter.Specialization)
		conditions = append(conditions, fmt.Sprintf("specialization = $%d", len(args)))
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if filter.Available != nil {
		args = append(args, *filter.Available)
		conditions = append(conditions, fmt.Sprintf("available = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR specialization ILIKE $%d OR about ILIKE $%d)", len(args), len(args), len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM doctors`, doctorColumns)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY rating DESC"

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	defer rows.Close()

	var doctors []*models.Doctor

	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}

		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return doctors, nil
}
