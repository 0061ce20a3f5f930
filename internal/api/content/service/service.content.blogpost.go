// Package contentsvc - service cho domain content (bài viết, sự kiện).
package contentsvc

import (
	"context"
	"fmt"

	basesvc "rf_commerce/internal/api/base/service"
	basemodels "rf_commerce/internal/api/base/models"
	contentmodels "rf_commerce/internal/api/content/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogPostService là service quản lý bài viết
type BlogPostService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.BlogPost]
}

// NewBlogPostService tạo mới BlogPostService
func NewBlogPostService() (*BlogPostService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BlogPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_posts collection: %v", common.ErrNotFound)
	}
	return &BlogPostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.BlogPost](collection),
	}, nil
}

// FindBySlug tìm bài viết theo slug (dùng cho trang chi tiết công khai)
func (s *BlogPostService) FindBySlug(ctx context.Context, slug string) (contentmodels.BlogPost, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// FindPublished trả về trang bài viết đã xuất bản, mới nhất trước
func (s *BlogPostService) FindPublished(ctx context.Context, page int64, limit int64) (*basemodels.PaginateResult[contentmodels.BlogPost], error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"status": contentmodels.BlogPostStatusPublished}, page, limit, opts)
}

// Publish chuyển bài viết sang trạng thái published và ghi thời điểm xuất bản.
// Xuất bản lại một bài đã published chỉ cập nhật publishedAt.
func (s *BlogPostService) Publish(ctx context.Context, id string) (contentmodels.BlogPost, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return contentmodels.BlogPost{}, common.NewError(common.ErrCodeValidationFormat, "ID bài viết không hợp lệ", common.StatusBadRequest, err)
	}
	return s.UpdateById(ctx, objID, map[string]interface{}{
		"status":      contentmodels.BlogPostStatusPublished,
		"publishedAt": utility.CurrentTimeInMilli(),
	})
}
