package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalProducts         int             `json:"totalProducts"`
	TotalOrders           int             `json:"totalOrders"`
	TotalUsers            int             `json:"totalUsers"`
	TotalAppointments     int             `json:"totalAppointments"`
	TotalSales            decimal.Decimal `json:"totalSales"`
	PendingOrders         int             `json:"pendingOrders"`
	ConfirmedAppointments int             `json:"confirmedAppointments"`
}

type SalesPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type AppointmentStats struct {
	ByStatus map[AppointmentStatus]int `json:"byStatus"`
	Total    int                       `json:"total"`
}

type TopProduct struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Activity is a merged feed entry built from recent orders and appointments.
type Activity struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}
