package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/integration/notification/templates"
)

type fakeQueue struct {
	jobs map[uuid.UUID]*entity.NotificationJob
}

func newFakeQueue(jobs ...*entity.NotificationJob) *fakeQueue {
	q := &fakeQueue{jobs: map[uuid.UUID]*entity.NotificationJob{}}
	for _, j := range jobs {
		q.jobs[j.ID] = j
	}
	return q
}

func (q *fakeQueue) Create(_ context.Context, job *entity.NotificationJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.NotificationJob, error) {
	var pending []*entity.NotificationJob
	for _, j := range q.jobs {
		if j.Status == entity.NotificationStatusPending && len(pending) < limit {
			pending = append(pending, j)
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(_ context.Context, job *entity.NotificationJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	if j, ok := q.jobs[id]; ok {
		return j, nil
	}
	return nil, errors.New("not found")
}

func (q *fakeQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

func confirmationJob() *entity.NotificationJob {
	return entity.NewNotificationJob("customer@example.com", entity.NotificationTemplateOrderConfirmation, map[string]string{
		"customer_name": "Aminah",
		"set":           "Orkid",
		"quantity":      "2",
		"order_date":    "2025-03-01",
		"delivery_type": "delivery",
	})
}

func TestWorkerSendsPendingJob(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	job := confirmationJob()
	queue := newFakeQueue(job)
	sender := NewMockEmailSender()
	w := NewWorker(queue, sender, renderer, DefaultWorkerConfig())

	w.ProcessNow(context.Background())

	if job.Status != entity.NotificationStatusSent {
		t.Fatalf("job status = %q, want sent", job.Status)
	}
	if len(sender.SentEmails) != 1 {
		t.Fatalf("sent emails = %d, want 1", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "customer@example.com" {
		t.Errorf("recipient = %q", sent.To)
	}
	if !strings.Contains(sent.HTML, "Orkid") || !strings.Contains(sent.Text, "Orkid") {
		t.Error("expected rendered bodies to mention the ordered set")
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	job := confirmationJob()
	queue := newFakeQueue(job)
	sender := NewMockEmailSender()
	sender.ShouldFail = true
	w := NewWorker(queue, sender, renderer, DefaultWorkerConfig())

	w.ProcessNow(context.Background())

	if job.Status != entity.NotificationStatusPending {
		t.Fatalf("job status = %q, want pending for retry", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
}

func TestWorkerMarksPermanentFailure(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	job := confirmationJob()
	queue := newFakeQueue(job)
	sender := NewMockEmailSender()
	sender.ShouldFail = true
	sender.IsPermanent = true
	w := NewWorker(queue, sender, renderer, DefaultWorkerConfig())

	w.ProcessNow(context.Background())

	if job.Status != entity.NotificationStatusFailed {
		t.Fatalf("job status = %q, want failed", job.Status)
	}
}

func TestWorkerExhaustsAttemptBudget(t *testing.T) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	job := confirmationJob()
	queue := newFakeQueue(job)
	sender := NewMockEmailSender()
	sender.ShouldFail = true
	w := NewWorker(queue, sender, renderer, DefaultWorkerConfig())

	for i := 0; i < entity.MaxNotificationAttempts; i++ {
		w.ProcessNow(context.Background())
	}

	if job.Status != entity.NotificationStatusFailed {
		t.Fatalf("job status after %d attempts = %q, want failed", entity.MaxNotificationAttempts, job.Status)
	}
	if job.Attempts != entity.MaxNotificationAttempts {
		t.Errorf("attempts = %d, want %d", job.Attempts, entity.MaxNotificationAttempts)
	}
}
