package worker

import (
	"context"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/queue/task"
	emailProvider "github.com/tourhub/backend/pkg/email"
)

type Workers struct {
	EnquiryMailer EnquiryMailer
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EnquiryMailer interface {
	SendEnquiryNotification(ctx context.Context, data task.EnquiryReceived) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EnquiryMailer: newEnquiryMailer(deps.EmailProvider, deps.Config.Email),
	}
}
