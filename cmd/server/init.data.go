package main

import (
	"context"

	catalogmodels "rf_commerce/internal/api/catalog/models"
	catalogsvc "rf_commerce/internal/api/catalog/service"
	chatbotmodels "rf_commerce/internal/api/chatbot/models"
	chatbotsvc "rf_commerce/internal/api/chatbot/service"
	"rf_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData tạo dữ liệu mẫu khi chạy với INITMODE=true.
// Chỉ chèn khi collection còn trống, chạy lại không tạo trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	initSampleCategory(ctx)
	initDefaultChatRules(ctx)

	log.Info("✅ [INIT] InitDefaultData completed")
}

// initSampleCategory tạo một danh mục mẫu với cấu trúc subcategory rỗng
func initSampleCategory(ctx context.Context) {
	log := logger.GetAppLogger()

	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		log.Fatalf("Failed to create category service: %v", err)
	}

	count, err := categoryService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Warnf("Failed to count categories: %v", err)
		return
	}
	if count > 0 {
		return
	}

	sample := catalogmodels.CategoryDocument{
		Title: "RF and Microwave",
		Subcategories: []catalogmodels.Subcategory{
			{Name: "Amplifiers", Products: []catalogmodels.ProductRecord{}},
			{Name: "Switches", Products: []catalogmodels.ProductRecord{}},
			{Name: "Filters", Products: []catalogmodels.ProductRecord{}},
		},
	}
	if _, err := categoryService.Save(ctx, sample); err != nil {
		log.Warnf("Failed to create sample category: %v", err)
		return
	}
	log.Info("🛒 [INIT] Created sample catalog category")
}

// initDefaultChatRules tạo bộ rule chatbot cơ bản
func initDefaultChatRules(ctx context.Context) {
	log := logger.GetAppLogger()

	chatRuleService, err := chatbotsvc.NewChatRuleService()
	if err != nil {
		log.Fatalf("Failed to create chat rule service: %v", err)
	}

	count, err := chatRuleService.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Warnf("Failed to count chat rules: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaultRules := []chatbotmodels.ChatRule{
		{
			Keywords: []string{"giá", "báo giá", "price"},
			Reply:    "Vui lòng để lại email qua form liên hệ, đội ngũ kinh doanh sẽ gửi báo giá chi tiết trong 24h.",
			Priority: 10,
			Enabled:  true,
		},
		{
			Keywords: []string{"bảo hành", "warranty"},
			Reply:    "Tất cả sản phẩm được bảo hành chính hãng 12 tháng.",
			Priority: 5,
			Enabled:  true,
		},
		{
			Keywords: []string{"liên hệ", "hotline", "contact"},
			Reply:    "Bạn có thể liên hệ qua form trên website hoặc email trong phần chân trang.",
			Priority: 5,
			Enabled:  true,
		},
	}
	for _, rule := range defaultRules {
		if _, err := chatRuleService.InsertOne(ctx, rule); err != nil {
			log.Warnf("Failed to insert default chat rule: %v", err)
		}
	}
	log.Info("💬 [INIT] Created default chatbot rules")
}
