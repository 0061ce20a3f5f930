package global

import (
	"rf_commerce/config"
	"rf_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Categories  string // Tên collection cho danh mục sản phẩm (document tổng hợp)
	BlogPosts   string // Tên collection cho bài viết blog
	Events      string // Tên collection cho sự kiện
	Subscribers string // Tên collection cho người đăng ký nhận tin
	Campaigns   string // Tên collection cho chiến dịch email
	ChatRules   string // Tên collection cho luật trả lời chatbot
	Contacts    string // Tên collection cho form liên hệ
}

// Các biến toàn cục
var Validate *validator.Validate                                   // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                  // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName                        // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
