package task

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	EnquiryReceivedTaskName  = "enquiryReceivedTask"
	EnquiryReceivedQueueName = "enquiryEmailQueue"
)

type EnquiryReceived struct {
	EnquiryID     uuid.UUID `json:"enquiry_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PackageTitle  string    `json:"package_title"`
}

func NewEnquiryReceivedTask(enquiryID uuid.UUID, customerName, customerEmail, packageTitle string) (*asynq.Task, error) {
	data := EnquiryReceived{
		EnquiryID:     enquiryID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		PackageTitle:  packageTitle,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		EnquiryReceivedTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(EnquiryReceivedQueueName),
	), nil
}
