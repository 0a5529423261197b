package worker

import (
	"context"
	"fmt"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/queue/task"
	emailProvider "github.com/tourhub/backend/pkg/email"
)

type enquiryMailer struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEnquiryMailer(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *enquiryMailer {
	return &enquiryMailer{
		sender: sender,
		config: config,
	}
}

type enquiryEmailInput struct {
	CustomerName  string
	CustomerEmail string
	PackageTitle  string
}

// SendEnquiryNotification mails the site admin about a newly submitted
// enquiry.
func (m *enquiryMailer) SendEnquiryNotification(ctx context.Context, data task.EnquiryReceived) error {
	subject := fmt.Sprintf("New enquiry from %s", data.CustomerName)

	templateInput := enquiryEmailInput{
		CustomerName:  data.CustomerName,
		CustomerEmail: data.CustomerEmail,
		PackageTitle:  data.PackageTitle,
	}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: m.config.AdminAddress}

	if err := sendInput.GenerateBodyFromHTML(m.config.Templates.Enquiry, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := m.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
