// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// NotificationQueueModel represents the notification_queue table in the database.
type NotificationQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	RecipientEmail string       `gorm:"type:varchar(255);not null"`
	Template       string       `gorm:"type:varchar(50);not null"`
	Payload        string       `gorm:"type:jsonb;not null;default:'{}'"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int          `gorm:"not null;default:0"`
	LastError      string       `gorm:"type:text"`
	ScheduledAt    time.Time    `gorm:"not null;index"`
	SentAt         sql.NullTime
	CreatedAt      time.Time    `gorm:"not null"`
	UpdatedAt      time.Time    `gorm:"not null"`
}

// TableName returns the table name for the NotificationQueueModel.
func (NotificationQueueModel) TableName() string {
	return "notification_queue"
}

// ToEntity converts a NotificationQueueModel to a domain NotificationJob entity.
func (m *NotificationQueueModel) ToEntity() *entity.NotificationJob {
	var payload map[string]string
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
			slog.Warn("Failed to unmarshal notification payload", "error", err, "id", m.ID)
		}
	}
	if payload == nil {
		payload = make(map[string]string)
	}

	var sentAt *time.Time
	if m.SentAt.Valid {
		sentAt = &m.SentAt.Time
	}

	return &entity.NotificationJob{
		ID:             m.ID,
		RecipientEmail: m.RecipientEmail,
		Template:       entity.NotificationTemplate(m.Template),
		Payload:        payload,
		Status:         entity.NotificationStatus(m.Status),
		Attempts:       m.Attempts,
		LastError:      m.LastError,
		ScheduledAt:    m.ScheduledAt,
		SentAt:         sentAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// NotificationQueueModelFromEntity creates a NotificationQueueModel from a domain NotificationJob entity.
func NotificationQueueModelFromEntity(job *entity.NotificationJob) *NotificationQueueModel {
	payloadJSON, err := json.Marshal(job.Payload)
	if err != nil {
		slog.Error("Failed to marshal notification payload", "error", err, "job_id", job.ID)
		payloadJSON = []byte("{}")
	}

	var sentAt sql.NullTime
	if job.SentAt != nil {
		sentAt = sql.NullTime{Time: *job.SentAt, Valid: true}
	}

	return &NotificationQueueModel{
		ID:             job.ID,
		RecipientEmail: job.RecipientEmail,
		Template:       string(job.Template),
		Payload:        string(payloadJSON),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		LastError:      job.LastError,
		ScheduledAt:    job.ScheduledAt,
		SentAt:         sentAt,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}
