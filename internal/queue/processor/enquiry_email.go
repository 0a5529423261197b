package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/tourhub/backend/internal/queue/task"
	"github.com/tourhub/backend/internal/worker"
)

type enquiryEmailProcessor struct {
	workers *worker.Workers
}

func NewEnquiryEmailProcessor(workers *worker.Workers) *enquiryEmailProcessor {
	return &enquiryEmailProcessor{
		workers: workers,
	}
}

func (p *enquiryEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.EnquiryReceived
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process enquiry email task json unmarshal failed: %w", err)
	}

	if err = p.workers.EnquiryMailer.SendEnquiryNotification(ctx, data); err != nil {
		return fmt.Errorf("send enquiry notification failed: %w", err)
	}

	return nil
}
