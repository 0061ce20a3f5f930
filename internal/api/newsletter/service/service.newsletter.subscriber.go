// Package newslettersvc - service cho domain newsletter.
package newslettersvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basesvc "rf_commerce/internal/api/base/service"
	newslettermodels "rf_commerce/internal/api/newsletter/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/logger"
	"rf_commerce/internal/utility"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// SubscriberService là service quản lý người đăng ký nhận bản tin
type SubscriberService struct {
	*basesvc.BaseServiceMongoImpl[newslettermodels.Subscriber]
}

// NewSubscriberService tạo mới SubscriberService
func NewSubscriberService() (*SubscriberService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("failed to get subscribers collection: %v", common.ErrNotFound)
	}
	return &SubscriberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[newslettermodels.Subscriber](collection),
	}, nil
}

// isNotFound kiểm tra lỗi có phải không-tìm-thấy không
func isNotFound(err error) bool {
	var customErr *common.Error
	return errors.As(err, &customErr) && customErr.StatusCode == common.StatusNotFound
}

// Subscribe đăng ký một email nhận bản tin. Idempotent:
// email đang subscribed trả về bản ghi hiện có, email đã hủy được kích hoạt lại
// (giữ nguyên unsubscribe token cũ).
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (newslettermodels.Subscriber, error) {
	var empty newslettermodels.Subscriber

	email = strings.ToLower(strings.TrimSpace(email))
	if err := utility.ValidateEmail(email); err != nil {
		return empty, err
	}

	existing, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err == nil {
		if existing.Status == newslettermodels.SubscriberStatusSubscribed {
			return existing, nil
		}
		// Đã hủy trước đó, kích hoạt lại
		return s.UpdateById(ctx, existing.ID, map[string]interface{}{
			"status":         newslettermodels.SubscriberStatusSubscribed,
			"subscribedAt":   utility.CurrentTimeInMilli(),
			"unsubscribedAt": 0,
		})
	}
	if !isNotFound(err) {
		return empty, err
	}

	subscriber := newslettermodels.Subscriber{
		Email:            email,
		UnsubscribeToken: uuid.NewString(),
		Status:           newslettermodels.SubscriberStatusSubscribed,
		SubscribedAt:     utility.CurrentTimeInMilli(),
	}
	created, err := s.InsertOne(ctx, subscriber)
	if err != nil {
		return empty, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"email": email,
	}).Info("📨 [NEWSLETTER] Đăng ký nhận bản tin mới")

	return created, nil
}

// Unsubscribe hủy đăng ký theo token trong link email. Idempotent:
// token của subscriber đã hủy vẫn trả về thành công.
func (s *SubscriberService) Unsubscribe(ctx context.Context, token string) (newslettermodels.Subscriber, error) {
	var empty newslettermodels.Subscriber

	if strings.TrimSpace(token) == "" {
		return empty, common.NewError(common.ErrCodeValidationInput, "Token hủy đăng ký không được để trống", common.StatusBadRequest, nil)
	}

	existing, err := s.FindOne(ctx, bson.M{"unsubscribeToken": token}, nil)
	if err != nil {
		if isNotFound(err) {
			return empty, common.NewError(common.ErrCodeDatabaseQuery, "Token hủy đăng ký không tồn tại", common.StatusNotFound, err)
		}
		return empty, err
	}
	if existing.Status == newslettermodels.SubscriberStatusUnsubscribed {
		return existing, nil
	}

	updated, err := s.UpdateById(ctx, existing.ID, map[string]interface{}{
		"status":         newslettermodels.SubscriberStatusUnsubscribed,
		"unsubscribedAt": utility.CurrentTimeInMilli(),
	})
	if err != nil {
		return empty, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"email": existing.Email,
	}).Info("📨 [NEWSLETTER] Hủy đăng ký nhận bản tin")

	return updated, nil
}

// FindActive trả về tất cả subscriber đang nhận tin
func (s *SubscriberService) FindActive(ctx context.Context) ([]newslettermodels.Subscriber, error) {
	return s.Find(ctx, bson.M{"status": newslettermodels.SubscriberStatusSubscribed}, nil)
}
