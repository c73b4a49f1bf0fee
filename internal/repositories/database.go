package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

// Repositories bundles every repository over a shared connection pool.
type Repositories struct {
	DB           *sql.DB
	Product      ProductRepository
	Category     CategoryRepository
	Doctor       DoctorRepository
	Appointment  AppointmentRepository
	Order        OrderRepository
	Prescription PrescriptionRepository
	User         UserRepository
	Notification NotificationRepository
	Analytics    AnalyticsRepository
}

func New(cfg *config.Config) (*Repositories, error) {
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:           db,
		Product:      NewProductRepo(db),
		Category:     NewCategoryRepo(db),
		Doctor:       NewDoctorRepo(db),
		Appointment:  NewAppointmentRepo(db),
		Order:        NewOrderRepo(db),
		Prescription: NewPrescriptionRepo(db),
		User:         NewUserRepo(db),
		Notification: NewNotificationRepo(db),
		Analytics:    NewAnalyticsRepo(db),
	}, nil
}

// RunMigrations applies the SQL migrations from the configured directory.
func (r *Repositories) RunMigrations(cfg *config.Config) error {
	driver, err := migratepg.WithInstance(r.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.Database.MigrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
