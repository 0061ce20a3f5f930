package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"rf_commerce/internal/logger"
	"rf_commerce/internal/utility"
)

// DefaultBatchSize là số email gửi đồng thời trong một đợt khi caller không chỉ định
const DefaultBatchSize = 10

// interBatchDelay là khoảng nghỉ giữa hai đợt gửi để tránh bị SMTP server rate-limit
const interBatchDelay = 1000 * time.Millisecond

// Recipient là một người nhận trong job gửi hàng loạt.
// UnsubscribeToken (nếu có) dùng để gắn link hủy đăng ký vào email.
type Recipient struct {
	Address          string `json:"address" bson:"address"`
	UnsubscribeToken string `json:"unsubscribeToken,omitempty" bson:"unsubscribeToken,omitempty"`
}

// SendResult là kết quả gửi cho một người nhận
type SendResult struct {
	Address   string `json:"address" bson:"address"`
	Success   bool   `json:"success" bson:"success"`
	MessageID string `json:"messageId,omitempty" bson:"messageId,omitempty"`
	Error     string `json:"error,omitempty" bson:"error,omitempty"`
	SentAt    int64  `json:"sentAt" bson:"sentAt"` // Thời điểm gửi (Unix milliseconds)
}

// Transport gửi một email tới một người nhận, trả về message id.
// Implementation không được panic; lỗi gửi trả về qua error.
type Transport interface {
	SendOne(ctx context.Context, recipient Recipient, subject string, htmlBody string) (messageID string, err error)
}

// Sleeper trừu tượng hóa time.Sleep để test không phải chờ thật
type Sleeper interface {
	Sleep(d time.Duration)
}

type realSleeper struct{}

func (realSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NewRealSleeper trả về Sleeper dùng time.Sleep
func NewRealSleeper() Sleeper {
	return realSleeper{}
}

// BulkMailer gửi email hàng loạt theo từng đợt (batch).
// Mỗi người nhận được gửi đúng một lần, không retry; lỗi của một người nhận
// không làm dừng các người nhận khác.
type BulkMailer struct {
	transport Transport
	sleeper   Sleeper
}

// NewBulkMailer tạo mới BulkMailer. sleeper nil sẽ dùng time.Sleep thật.
func NewBulkMailer(transport Transport, sleeper Sleeper) *BulkMailer {
	if sleeper == nil {
		sleeper = NewRealSleeper()
	}
	return &BulkMailer{
		transport: transport,
		sleeper:   sleeper,
	}
}

// SendBulk gửi email tới danh sách người nhận theo từng đợt kích thước batchSize.
// Các email trong cùng một đợt được gửi đồng thời; giữa hai đợt nghỉ 1 giây
// (không nghỉ sau đợt cuối). Kết quả trả về theo đúng thứ tự người nhận đầu vào.
// Danh sách người nhận không được khử trùng lặp; mỗi phần tử gửi đúng một lần.
//
// batchSize <= 0 sẽ dùng DefaultBatchSize.
func (m *BulkMailer) SendBulk(ctx context.Context, recipients []Recipient, subject string, htmlBody string, batchSize int) []SendResult {
	if len(recipients) == 0 {
		return []SendResult{}
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"totalRecipients": len(recipients),
		"batchSize":       batchSize,
	}).Info("📨 [MAILER] Bắt đầu gửi email hàng loạt")

	results := make([]SendResult, len(recipients))

	for start := 0; start < len(recipients); start += batchSize {
		// Nghỉ giữa các đợt, không nghỉ trước đợt đầu
		if start > 0 {
			m.sleeper.Sleep(interBatchDelay)
		}

		end := start + batchSize
		if end > len(recipients) {
			end = len(recipients)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = m.sendOne(ctx, recipients[idx], subject, htmlBody)
			}(i)
		}
		wg.Wait()

		log.WithFields(map[string]interface{}{
			"batchStart": start,
			"batchEnd":   end,
		}).Debug("📨 [MAILER] Đã gửi xong một đợt")
	}

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}
	log.WithFields(map[string]interface{}{
		"totalRecipients": len(recipients),
		"sentCount":       sent,
		"failedCount":     len(recipients) - sent,
	}).Info("📨 [MAILER] Hoàn tất gửi email hàng loạt")

	return results
}

// sendOne gửi cho một người nhận và ghi nhận kết quả.
// Recover để một transport lỗi bất thường không làm sập cả đợt gửi.
func (m *BulkMailer) sendOne(ctx context.Context, recipient Recipient, subject string, htmlBody string) (result SendResult) {
	result = SendResult{
		Address: recipient.Address,
		SentAt:  utility.CurrentTimeInMilli(),
	}

	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.MessageID = ""
			result.Error = fmt.Sprintf("panic khi gửi email: %v", r)
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"recipient": recipient.Address,
				"panic":     fmt.Sprintf("%v", r),
			}).Error("📨 [MAILER] Panic khi gửi email")
		}
	}()

	messageID, err := m.transport.SendOne(ctx, recipient, subject, htmlBody)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"recipient": recipient.Address,
			"error":     err.Error(),
		}).Warn("📨 [MAILER] Gửi email thất bại")
		return result
	}

	result.Success = true
	result.MessageID = messageID
	return result
}
