package mailer

import (
	"context"
	"fmt"

	"rf_commerce/config"
	"rf_commerce/internal/common"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPTransport gửi email qua SMTP server bằng gomail
type SMTPTransport struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	fromName    string
	frontendURL string
}

// NewSMTPTransport tạo transport SMTP từ cấu hình server
func NewSMTPTransport(cfg *config.Configuration) *SMTPTransport {
	return &SMTPTransport{
		host:        cfg.SMTP_Host,
		port:        cfg.SMTP_Port,
		username:    cfg.SMTP_Username,
		password:    cfg.SMTP_Password,
		from:        cfg.SMTP_From,
		fromName:    cfg.SMTP_FromName,
		frontendURL: cfg.FrontendURL,
	}
}

// SendOne gửi một email HTML tới một người nhận.
// Mỗi email có Message-ID riêng (uuid); nếu người nhận có unsubscribe token
// thì gắn thêm footer hủy đăng ký và header List-Unsubscribe.
func (t *SMTPTransport) SendOne(ctx context.Context, recipient Recipient, subject string, htmlBody string) (string, error) {
	// Tôn trọng context đã hủy trước khi dial
	if err := ctx.Err(); err != nil {
		return "", common.NewError(common.ErrCodeMailTransport, "Gửi email bị hủy: "+err.Error(), common.StatusServiceUnavailable, err)
	}

	messageID := uuid.NewString()

	body := htmlBody
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", t.fromName, t.from))
	msg.SetHeader("To", recipient.Address)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", messageID, t.host))

	if recipient.UnsubscribeToken != "" {
		unsubscribeURL := fmt.Sprintf("%s/unsubscribe?token=%s", t.frontendURL, recipient.UnsubscribeToken)
		msg.SetHeader("List-Unsubscribe", "<"+unsubscribeURL+">")
		body += fmt.Sprintf(
			`<p style="font-size:12px;color:#888;margin-top:24px;">Nếu bạn không muốn nhận email này nữa, <a href="%s">hủy đăng ký tại đây</a>.</p>`,
			unsubscribeURL,
		)
	}
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(t.host, t.port, t.username, t.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return "", common.NewError(
			common.ErrCodeMailTransport,
			fmt.Sprintf("Không gửi được email tới %s: %v", recipient.Address, err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	return messageID, nil
}
