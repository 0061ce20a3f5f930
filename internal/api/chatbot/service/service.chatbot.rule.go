// Package chatbotsvc - service cho domain chatbot.
package chatbotsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	basesvc "rf_commerce/internal/api/base/service"
	chatbotmodels "rf_commerce/internal/api/chatbot/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/global"
	"rf_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

const rulesCacheKey = "chatbot:rules"

// ChatRuleService là service quản lý rule và trả lời tin nhắn chatbot.
// Danh sách rule được cache 60s để endpoint công khai không query Mongo mỗi tin nhắn.
type ChatRuleService struct {
	*basesvc.BaseServiceMongoImpl[chatbotmodels.ChatRule]
	cache *utility.Cache
}

// NewChatRuleService tạo mới ChatRuleService
func NewChatRuleService() (*ChatRuleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatRules)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_rules collection: %v", common.ErrNotFound)
	}
	return &ChatRuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[chatbotmodels.ChatRule](collection),
		cache:                utility.NewCache(60*time.Second, 5*time.Minute),
	}, nil
}

// matchRule tìm rule khớp tin nhắn: tin nhắn chứa một trong các keyword
// (không phân biệt hoa thường). Nhiều rule cùng khớp thì priority cao hơn
// thắng; bằng priority thì rule đứng trước trong danh sách thắng.
func matchRule(rules []chatbotmodels.ChatRule, message string) (chatbotmodels.ChatRule, bool) {
	normalized := strings.ToLower(message)

	var matched []chatbotmodels.ChatRule
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		for _, keyword := range rule.Keywords {
			keyword = strings.ToLower(strings.TrimSpace(keyword))
			if keyword != "" && strings.Contains(normalized, keyword) {
				matched = append(matched, rule)
				break
			}
		}
	}
	if len(matched) == 0 {
		return chatbotmodels.ChatRule{}, false
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	return matched[0], true
}

// activeRules trả về danh sách rule, ưu tiên bản cache
func (s *ChatRuleService) activeRules(ctx context.Context) ([]chatbotmodels.ChatRule, error) {
	if cached, ok := s.cache.Get(rulesCacheKey); ok {
		if rules, ok := cached.([]chatbotmodels.ChatRule); ok {
			return rules, nil
		}
	}

	rules, err := s.Find(ctx, bson.M{"enabled": true}, nil)
	if err != nil {
		return nil, err
	}
	s.cache.Set(rulesCacheKey, rules)
	return rules, nil
}

// InvalidateCache xóa cache rule, gọi sau khi admin thay đổi rule
func (s *ChatRuleService) InvalidateCache() {
	s.cache.Delete(rulesCacheKey)
}

// Answer trả lời một tin nhắn. Không rule nào khớp thì dùng câu mặc định.
func (s *ChatRuleService) Answer(ctx context.Context, message string) (reply string, isMatched bool, err error) {
	if strings.TrimSpace(message) == "" {
		return "", false, common.NewError(common.ErrCodeValidationInput, "Tin nhắn không được để trống", common.StatusBadRequest, nil)
	}

	rules, err := s.activeRules(ctx)
	if err != nil {
		return "", false, err
	}

	rule, ok := matchRule(rules, message)
	if !ok {
		return chatbotmodels.DefaultReply, false, nil
	}
	return rule.Reply, true, nil
}
