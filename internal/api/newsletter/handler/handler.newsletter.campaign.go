package newsletterhdl

import (
	"fmt"

	basehdl "rf_commerce/internal/api/base/handler"
	newsletterdto "rf_commerce/internal/api/newsletter/dto"
	newslettermodels "rf_commerce/internal/api/newsletter/models"
	newslettersvc "rf_commerce/internal/api/newsletter/service"
	"rf_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// CampaignHandler xử lý CRUD và gửi chiến dịch bản tin.
type CampaignHandler struct {
	*basehdl.BaseHandler[newslettermodels.Campaign, newsletterdto.CampaignCreateInput, newsletterdto.CampaignUpdateInput]
	CampaignService *newslettersvc.CampaignService
}

// NewCampaignHandler tạo CampaignHandler mới.
func NewCampaignHandler() (*CampaignHandler, error) {
	campaignService, err := newslettersvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("tạo CampaignService: %w", err)
	}
	h := &CampaignHandler{CampaignService: campaignService}
	h.BaseHandler = basehdl.NewBaseHandler[newslettermodels.Campaign, newsletterdto.CampaignCreateInput, newsletterdto.CampaignUpdateInput](campaignService)
	return h, nil
}

// HandleSendCampaign xử lý POST /newsletter/campaigns/:id/send.
// Gửi đồng bộ: response trả về sau khi toàn bộ các đợt gửi hoàn tất.
func (h *CampaignHandler) HandleSendCampaign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		campaign, err := h.CampaignService.SendCampaign(c.Context(), c.Params("id"))
		if err == nil {
			logger.LogAction("campaign_send", c, map[string]interface{}{
				"campaign_id": campaign.ID.Hex(),
				"sent":        campaign.SentCount,
				"failed":      campaign.FailedCount,
			})
		}
		h.HandleResponse(c, campaign, err)
		return nil
	})
}
