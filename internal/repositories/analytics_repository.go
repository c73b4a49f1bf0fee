package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/shopspring/decimal"
)

type AnalyticsRepository interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	SalesByDay(ctx context.Context, days int) ([]*models.SalesPoint, error)
	ProductsByCategory(ctx context.Context) ([]*models.CategoryCount, error)
	AppointmentStats(ctx context.Context) (*models.AppointmentStats, error)
	TopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error)
	RecentActivity(ctx context.Context, limit int) ([]*models.Activity, error)
}

type analyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{DB: db}
}

func (r *analyticsRepository) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Cancelled orders do not count toward sales.
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM appointments),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE status <> 'cancelled'),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM appointments WHERE status = 'confirmed')
	`

	stats := &models.DashboardStats{}

	var totalSales string

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&stats.TotalProducts, &stats.TotalOrders,
		&stats.TotalUsers, &stats.TotalAppointments, &totalSales,
		&stats.PendingOrders, &stats.ConfirmedAppointments)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard stats: %w", err)
	}

	stats.TotalSales, err = decimal.NewFromString(totalSales)
	if err != nil {
		return nil, fmt.Errorf("failed to parse total sales: %w", err)
	}

	return stats, nil
}

func (r *analyticsRepository) SalesByDay(ctx context.Context, days int) ([]*models.SalesPoint, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(total), 0),
		       COUNT(*)
		FROM orders
		WHERE status <> 'cancelled'
		  AND created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.DB.QueryContext(dbCtx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales by day: %w", err)
	}

	defer rows.Close()

	var points []*models.SalesPoint

	for rows.Next() {
		point := &models.SalesPoint{}

		var total string

		if err := rows.Scan(&point.Date, &total, &point.Count); err != nil {
			return nil, fmt.Errorf("failed to scan sales point: %w", err)
		}

		point.Total, err = decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sales total: %w", err)
		}

		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

func (r *analyticsRepository) ProductsByCategory(ctx context.Context) ([]*models.CategoryCount, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE(c.name, 'Uncategorized'), COUNT(p.id)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY COUNT(p.id) DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}

	defer rows.Close()

	var counts []*models.CategoryCount

	for rows.Next() {
		count := &models.CategoryCount{}

		if err := rows.Scan(&count.Category, &count.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}

		counts = append(counts, count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *analyticsRepository) AppointmentStats(ctx context.Context) (*models.AppointmentStats, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx,
		`SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment stats: %w", err)
	}

	defer rows.Close()

	stats := &models.AppointmentStats{ByStatus: make(map[models.AppointmentStatus]int)}

	for rows.Next() {
		var status models.AppointmentStatus

		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan appointment stat: %w", err)
		}

		stats.ByStatus[status] = count
		stats.Total += count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *analyticsRepository) TopProducts(ctx context.Context, limit int) ([]*models.TopProduct, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Items are stored as a JSONB snapshot per order, so ranking
	// expands them back into rows before aggregating.
	query := `
		SELECT item->>'name',
		       SUM((item->>'quantity')::int),
		       SUM((item->>'unit_price')::numeric * (item->>'quantity')::int)
		FROM orders, jsonb_array_elements(items) AS item
		WHERE status <> 'cancelled'
		GROUP BY item->>'name'
		ORDER BY SUM((item->>'quantity')::int) DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}

	defer rows.Close()

	var products []*models.TopProduct

	for rows.Next() {
		product := &models.TopProduct{}

		var revenue string

		if err := rows.Scan(&product.Name, &product.Count, &revenue); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}

		product.Revenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product revenue: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *analyticsRepository) RecentActivity(ctx context.Context, limit int) ([]*models.Activity, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT * FROM (
			SELECT 'order' AS type, id::text, order_number AS title,
			       customer_name AS description, status::text, created_at
			FROM orders
			UNION ALL
			SELECT 'appointment' AS type, id::text, appointment_number AS title,
			       patient_name AS description, status::text, created_at
			FROM appointments
		) activity
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}

	defer rows.Close()

	var activities []*models.Activity

	for rows.Next() {
		activity := &models.Activity{}

		err := rows.Scan(&activity.Type, &activity.ID, &activity.Title,
			&activity.Description, &activity.Status, &activity.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
