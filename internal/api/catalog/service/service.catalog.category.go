package catalogsvc

import (
	"context"
	"fmt"

	basesvc "rf_commerce/internal/api/base/service"
	catalogmodels "rf_commerce/internal/api/catalog/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryStore trừu tượng hóa kho lưu CategoryDocument cho mutation sản phẩm.
// Mọi ghi đều là ghi nguyên cả document (không ghi từng field); hai mutation
// đồng thời trên cùng document có thể ghi đè lẫn nhau (lost update) — hạn chế
// đã biết, giữ nguyên theo thiết kế.
type CategoryStore interface {
	// FindByTitle tìm danh mục theo title khớp chính xác
	FindByTitle(ctx context.Context, title string) (catalogmodels.CategoryDocument, error)
	// FindContainingProductID tìm danh mục chứa sản phẩm có id cho trước
	FindContainingProductID(ctx context.Context, productID string) (catalogmodels.CategoryDocument, error)
	// Save ghi đè nguyên cả document
	Save(ctx context.Context, doc catalogmodels.CategoryDocument) (catalogmodels.CategoryDocument, error)
}

// CategoryService là service quản lý CategoryDocument, kiêm CategoryStore cho ProductService
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.CategoryDocument]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.CategoryDocument](collection),
	}, nil
}

// FindByTitle tìm danh mục theo title khớp chính xác
func (s *CategoryService) FindByTitle(ctx context.Context, title string) (catalogmodels.CategoryDocument, error) {
	return s.FindOne(ctx, bson.M{"title": title}, nil)
}

// FindContainingProductID tìm danh mục chứa sản phẩm có id cho trước
// (query trên mảng lồng subcategories.products)
func (s *CategoryService) FindContainingProductID(ctx context.Context, productID string) (catalogmodels.CategoryDocument, error) {
	return s.FindOne(ctx, bson.M{"subcategories.products.id": productID}, nil)
}

// Save ghi đè nguyên cả CategoryDocument theo _id (upsert)
func (s *CategoryService) Save(ctx context.Context, doc catalogmodels.CategoryDocument) (catalogmodels.CategoryDocument, error) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		doc.CreatedAt = utility.CurrentTimeInMilli()
	}
	doc.UpdatedAt = utility.CurrentTimeInMilli()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.Collection().ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return doc, common.ConvertMongoError(err)
	}
	return doc, nil
}
