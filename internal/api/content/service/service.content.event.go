package contentsvc

import (
	"context"
	"fmt"

	basesvc "rf_commerce/internal/api/base/service"
	contentmodels "rf_commerce/internal/api/content/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventService là service quản lý sự kiện
type EventService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Event]
}

// NewEventService tạo mới EventService
func NewEventService() (*EventService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Events)
	if !exist {
		return nil, fmt.Errorf("failed to get events collection: %v", common.ErrNotFound)
	}
	return &EventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Event](collection),
	}, nil
}

// FindUpcoming trả về các sự kiện chưa diễn ra, gần nhất trước
func (s *EventService) FindUpcoming(ctx context.Context, limit int64) ([]contentmodels.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.Find(ctx, bson.M{"startAt": bson.M{"$gte": utility.CurrentTimeInMilli()}}, opts)
}
