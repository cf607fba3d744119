// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
)

// ErrNotificationJobNotFound is returned when a queued notification is missing.
var ErrNotificationJobNotFound = errors.New("notification job not found")

// notificationQueueRepository implements the adapter.NotificationQueueRepository interface.
type notificationQueueRepository struct {
	db *gorm.DB
}

// NewNotificationQueueRepository creates a new notification queue repository instance.
func NewNotificationQueueRepository(db *gorm.DB) adapter.NotificationQueueRepository {
	return &notificationQueueRepository{
		db: db,
	}
}

// Create adds a new notification job to the queue.
func (r *notificationQueueRepository) Create(ctx context.Context, job *entity.NotificationJob) error {
	jobModel := model.NotificationQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	return result.Error
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *notificationQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var models []model.NotificationQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ?", entity.NotificationStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.NotificationJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs, nil
}

// Update saves changes to a notification job.
func (r *notificationQueueRepository) Update(ctx context.Context, job *entity.NotificationJob) error {
	jobModel := model.NotificationQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	return result.Error
}

// GetByID retrieves a specific job by its ID.
func (r *notificationQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	var jobModel model.NotificationQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationJobNotFound
		}
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}

// DeleteOldSentJobs removes sent jobs older than the given number of days.
func (r *notificationQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.NotificationStatusSent).
		Where("sent_at < ?", cutoff).
		Delete(&model.NotificationQueueModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
