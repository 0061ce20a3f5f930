package newslettersvc

import (
	"context"
	"fmt"

	basesvc "rf_commerce/internal/api/base/service"
	newslettermodels "rf_commerce/internal/api/newsletter/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/logger"
	"rf_commerce/internal/mailer"
	"rf_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriberLister liệt kê subscriber đang hoạt động cho việc gửi chiến dịch
type SubscriberLister interface {
	FindActive(ctx context.Context) ([]newslettermodels.Subscriber, error)
}

// CampaignService là service quản lý và gửi chiến dịch bản tin
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[newslettermodels.Campaign]
	subscribers SubscriberLister
	bulkMailer  *mailer.BulkMailer
	batchSize   int
}

// NewCampaignService tạo mới CampaignService với SMTP transport từ cấu hình server
func NewCampaignService() (*CampaignService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("failed to get campaigns collection: %v", common.ErrNotFound)
	}
	subscriberService, err := NewSubscriberService()
	if err != nil {
		return nil, err
	}

	transport := mailer.NewSMTPTransport(global.ServerConfig)
	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[newslettermodels.Campaign](collection),
		subscribers:          subscriberService,
		bulkMailer:           mailer.NewBulkMailer(transport, nil),
		batchSize:            global.ServerConfig.CampaignBatchSize,
	}, nil
}

// buildRecipients chuyển danh sách subscriber thành người nhận kèm token hủy đăng ký
func buildRecipients(subscribers []newslettermodels.Subscriber) []mailer.Recipient {
	recipients := make([]mailer.Recipient, len(subscribers))
	for i, sub := range subscribers {
		recipients[i] = mailer.Recipient{
			Address:          sub.Email,
			UnsubscribeToken: sub.UnsubscribeToken,
		}
	}
	return recipients
}

// countResults đếm số gửi thành công / thất bại
func countResults(results []mailer.SendResult) (sent int, failed int) {
	for _, r := range results {
		if r.Success {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}

// SendCampaign gửi chiến dịch tới toàn bộ subscriber đang hoạt động.
//
// Chiến dịch đã sent không gửi lại được. Kết quả gửi từng người nhận
// (kể cả thất bại) được lưu vào document chiến dịch sau khi hoàn tất.
func (s *CampaignService) SendCampaign(ctx context.Context, campaignID string) (newslettermodels.Campaign, error) {
	var empty newslettermodels.Campaign

	objID, err := primitive.ObjectIDFromHex(campaignID)
	if err != nil {
		return empty, common.NewError(common.ErrCodeValidationFormat, "ID chiến dịch không hợp lệ", common.StatusBadRequest, err)
	}

	campaign, err := s.FindOneById(ctx, objID)
	if err != nil {
		if isNotFound(err) {
			return empty, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy chiến dịch: "+campaignID, common.StatusNotFound, err)
		}
		return empty, err
	}
	if campaign.Status == newslettermodels.CampaignStatusSent {
		return empty, common.NewError(common.ErrCodeBusinessOperation, "Chiến dịch đã được gửi, không thể gửi lại", common.StatusConflict, nil)
	}

	activeSubscribers, err := s.subscribers.FindActive(ctx)
	if err != nil {
		return empty, err
	}

	if _, err := s.UpdateById(ctx, objID, map[string]interface{}{
		"status": newslettermodels.CampaignStatusSending,
	}); err != nil {
		return empty, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"campaignId": campaignID,
		"recipients": len(activeSubscribers),
		"batchSize":  s.batchSize,
	}).Info("📨 [CAMPAIGN] Bắt đầu gửi chiến dịch")

	recipients := buildRecipients(activeSubscribers)
	results := s.bulkMailer.SendBulk(ctx, recipients, campaign.Subject, campaign.HTMLBody, s.batchSize)
	sent, failed := countResults(results)

	updated, err := s.UpdateById(ctx, objID, map[string]interface{}{
		"status":      newslettermodels.CampaignStatusSent,
		"results":     results,
		"sentCount":   sent,
		"failedCount": failed,
		"sentAt":      utility.CurrentTimeInMilli(),
	})
	if err != nil {
		return empty, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"campaignId": campaignID,
		"sent":       sent,
		"failed":     failed,
	}).Info("📨 [CAMPAIGN] Gửi chiến dịch hoàn tất")

	return updated, nil
}
