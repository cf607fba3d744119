// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTemplate identifies which email template a job renders.
type NotificationTemplate string

const (
	NotificationTemplateOrderConfirmation NotificationTemplate = "order_confirmation"
	NotificationTemplateDeliveryUpdate    NotificationTemplate = "delivery_update"
)

// NotificationStatus represents the lifecycle state of a queued notification.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// MaxNotificationAttempts is the number of delivery attempts before a job is
// marked failed permanently.
const MaxNotificationAttempts = 3

// NotificationJob represents a queued outbound email. Jobs are written by use
// cases and drained by the notification worker; a failed enqueue or delivery
// never fails the operation that produced it.
type NotificationJob struct {
	ID             uuid.UUID
	RecipientEmail string
	Template       NotificationTemplate
	Payload        map[string]string
	Status         NotificationStatus
	Attempts       int
	LastError      string
	ScheduledAt    time.Time
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewNotificationJob creates a pending notification job.
func NewNotificationJob(recipient string, template NotificationTemplate, payload map[string]string) *NotificationJob {
	now := time.Now().UTC()

	return &NotificationJob{
		ID:             uuid.New(),
		RecipientEmail: recipient,
		Template:       template,
		Payload:        payload,
		Status:         NotificationStatusPending,
		ScheduledAt:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkProcessing transitions the job to processing.
func (j *NotificationJob) MarkProcessing() {
	j.Status = NotificationStatusProcessing
	j.Attempts++
	j.UpdatedAt = time.Now().UTC()
}

// MarkSent transitions the job to sent.
func (j *NotificationJob) MarkSent() {
	now := time.Now().UTC()
	j.Status = NotificationStatusSent
	j.SentAt = &now
	j.UpdatedAt = now
}

// MarkFailed records a delivery failure. The job returns to pending until the
// attempt budget is exhausted, then stays failed.
func (j *NotificationJob) MarkFailed(reason string, permanent bool) {
	j.LastError = reason
	if permanent || j.Attempts >= MaxNotificationAttempts {
		j.Status = NotificationStatusFailed
	} else {
		j.Status = NotificationStatusPending
	}
	j.UpdatedAt = time.Now().UTC()
}
