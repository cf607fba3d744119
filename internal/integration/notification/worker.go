// Package notification delivers queued order emails via Resend.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/notification/templates"
)

// Worker drains the notification queue and sends emails.
type Worker struct {
	queue        adapter.NotificationQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(queue adapter.NotificationQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending notifications.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending notification jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing notification batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single notification job.
func (w *Worker) processJob(ctx context.Context, job *entity.NotificationJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.Template,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render notification template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.Payload["customer_name"],
		Subject: subjectFor(job.Template),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send notification", "error", err)

		var notifErr *domainerror.NotificationError
		isPermanent := errors.As(err, &notifErr) && notifErr.Code == domainerror.ErrCodePermanentDeliveryFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Notification sent", "provider_id", result.ProviderID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.NotificationJob) (html string, text string, err error) {
	var data interface{}
	switch job.Template {
	case entity.NotificationTemplateOrderConfirmation:
		data = templates.OrderConfirmationData{
			CustomerName: job.Payload["customer_name"],
			Set:          job.Payload["set"],
			Quantity:     job.Payload["quantity"],
			OrderDate:    job.Payload["order_date"],
			DeliveryType: job.Payload["delivery_type"],
			TimeSlot:     job.Payload["time_slot"],
		}
	case entity.NotificationTemplateDeliveryUpdate:
		data = templates.DeliveryUpdateData{
			CustomerName:   job.Payload["customer_name"],
			Set:            job.Payload["set"],
			DeliveryStatus: job.Payload["delivery_status"],
			DeliveryDate:   job.Payload["delivery_date"],
			PickupDate:     job.Payload["pickup_date"],
		}
	default:
		return "", "", domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidNotificationTemplate,
			"unknown notification template",
			domainerror.ErrInvalidNotificationTemplate,
		)
	}

	return w.renderer.Render(string(job.Template), data)
}

// subjectFor returns the email subject line for a template.
func subjectFor(template entity.NotificationTemplate) string {
	switch template {
	case entity.NotificationTemplateOrderConfirmation:
		return "Your order has been received"
	case entity.NotificationTemplateDeliveryUpdate:
		return "Your order status has changed"
	}
	return "Dapur Ledger notification"
}

// handleFailure handles a failed notification job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.NotificationJob, err error, permanent bool) {
	job.MarkFailed(err.Error(), permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.NotificationStatusFailed {
		slog.Warn("Notification permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Notification scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
		)
	}
}

// ProcessNow processes all pending notifications immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
