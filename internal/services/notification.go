package service

import (
	"context"
	"fmt"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/pkg/sendgrid"
)

type NotificationService interface {
	SendEmail(ctx context.Context, req *models.EmailNotificationRequest) error
	ListRecent(ctx context.Context, limit int) ([]*models.Notification, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

// SendEmail records the notification, attempts delivery and keeps the record
// in sync with the outcome.
func (n *notificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) error {
	notification := &models.Notification{
		Type:      models.NotificationTypeEmail,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.NotificationStatusPending,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		_ = n.repo.MarkFailed(ctx, notification.ID, err.Error())

		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := n.repo.MarkSent(ctx, notification.ID); err != nil {
		return fmt.Errorf("email sent but failed to update notification status: %w", err)
	}

	return nil
}

func (n *notificationService) ListRecent(ctx context.Context, limit int) ([]*models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, err := n.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}
