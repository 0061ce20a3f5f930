package main

import (
	"context"

	"rf_commerce/config"
	catalogmodels "rf_commerce/internal/api/catalog/models"
	chatbotmodels "rf_commerce/internal/api/chatbot/models"
	contactmodels "rf_commerce/internal/api/contact/models"
	contentmodels "rf_commerce/internal/api/content/models"
	newslettermodels "rf_commerce/internal/api/newsletter/models"
	"rf_commerce/internal/database"
	"rf_commerce/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Categories = "catalog_categories"
	global.MongoDB_ColNames.BlogPosts = "content_blog_posts"
	global.MongoDB_ColNames.Events = "content_events"
	global.MongoDB_ColNames.Subscribers = "newsletter_subscribers"
	global.MongoDB_ColNames.Campaigns = "newsletter_campaigns"
	global.MongoDB_ColNames.ChatRules = "chatbot_rules"
	global.MongoDB_ColNames.Contacts = "contact_messages"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, slug, object_id)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo index tag trên model
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.CategoryDocument{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.BlogPosts), contentmodels.BlogPost{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Events), contentmodels.Event{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscribers), newslettermodels.Subscriber{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Campaigns), newslettermodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ChatRules), chatbotmodels.ChatRule{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), contactmodels.Contact{})
}
