// Package contactsvc - service cho domain contact.
package contactsvc

import (
	"context"
	"fmt"
	"html"

	basesvc "rf_commerce/internal/api/base/service"
	contactdto "rf_commerce/internal/api/contact/dto"
	contactmodels "rf_commerce/internal/api/contact/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/logger"
	"rf_commerce/internal/mailer"
	"rf_commerce/internal/utility"
)

// ContactService lưu lượt liên hệ và chuyển tiếp qua email tới hộp thư nội bộ
type ContactService struct {
	*basesvc.BaseServiceMongoImpl[contactmodels.Contact]
	transport mailer.Transport
	inbox     string
}

// NewContactService tạo mới ContactService với SMTP transport từ cấu hình server
func NewContactService() (*ContactService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contacts)
	if !exist {
		return nil, fmt.Errorf("failed to get contacts collection: %v", common.ErrNotFound)
	}
	return &ContactService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contactmodels.Contact](collection),
		transport:            mailer.NewSMTPTransport(global.ServerConfig),
		inbox:                global.ServerConfig.ContactInbox,
	}, nil
}

// buildRelayHTML dựng nội dung email chuyển tiếp. Input người dùng được
// escape để nội dung form không thành HTML trong hộp thư nội bộ.
func buildRelayHTML(contact contactmodels.Contact) string {
	body := "<h3>Liên hệ mới từ website</h3>" +
		"<p><b>Tên:</b> " + html.EscapeString(contact.Name) + "</p>" +
		"<p><b>Email:</b> " + html.EscapeString(contact.Email) + "</p>"
	if contact.Phone != "" {
		body += "<p><b>Điện thoại:</b> " + html.EscapeString(contact.Phone) + "</p>"
	}
	if contact.Company != "" {
		body += "<p><b>Công ty:</b> " + html.EscapeString(contact.Company) + "</p>"
	}
	body += "<p><b>Nội dung:</b></p><p>" + html.EscapeString(contact.Message) + "</p>"
	return body
}

// Submit lưu lượt liên hệ rồi chuyển tiếp qua email.
//
// Lượt liên hệ luôn được lưu trước; lỗi chuyển tiếp email không làm thất bại
// request (khách không phải gửi lại form), chỉ ghi vào relayError để admin xử lý.
func (s *ContactService) Submit(ctx context.Context, input *contactdto.ContactSubmitInput) (contactmodels.Contact, error) {
	var empty contactmodels.Contact

	contact := contactmodels.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Message: input.Message,
	}
	created, err := s.InsertOne(ctx, contact)
	if err != nil {
		return empty, err
	}

	subject := "Liên hệ mới từ " + input.Name
	if _, relayErr := s.transport.SendOne(ctx, mailer.Recipient{Address: s.inbox}, subject, buildRelayHTML(created)); relayErr != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"contactId": created.ID.Hex(),
			"error":     relayErr.Error(),
		}).Warn("📮 [CONTACT] Chuyển tiếp email liên hệ thất bại")

		updated, updateErr := s.UpdateById(ctx, created.ID, map[string]interface{}{
			"relayError": relayErr.Error(),
		})
		if updateErr != nil {
			return created, nil
		}
		return updated, nil
	}

	updated, err := s.UpdateById(ctx, created.ID, map[string]interface{}{
		"relayedAt": utility.CurrentTimeInMilli(),
	})
	if err != nil {
		return created, nil
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"contactId": created.ID.Hex(),
		"email":     created.Email,
	}).Info("📮 [CONTACT] Đã nhận và chuyển tiếp liên hệ mới")

	return updated, nil
}
