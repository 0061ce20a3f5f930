package chatbotsvc

import (
	"testing"

	chatbotmodels "rf_commerce/internal/api/chatbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []chatbotmodels.ChatRule {
	return []chatbotmodels.ChatRule{
		{Keywords: []string{"giá", "báo giá"}, Reply: "Vui lòng để lại email để nhận báo giá.", Priority: 10, Enabled: true},
		{Keywords: []string{"bảo hành"}, Reply: "Sản phẩm được bảo hành 12 tháng.", Priority: 5, Enabled: true},
		{Keywords: []string{"giá", "khuyến mãi"}, Reply: "Hiện đang có chương trình khuyến mãi.", Priority: 20, Enabled: true},
		{Keywords: []string{"địa chỉ"}, Reply: "Văn phòng tại Hà Nội.", Priority: 1, Enabled: false},
	}
}

func TestMatchRule_CaseInsensitive(t *testing.T) {
	rules := []chatbotmodels.ChatRule{
		{Keywords: []string{"Bảo Hành"}, Reply: "12 tháng", Priority: 1, Enabled: true},
	}

	rule, ok := matchRule(rules, "cho hỏi BẢO HÀNH bao lâu?")
	require.True(t, ok, "keyword phải khớp không phân biệt hoa thường")
	assert.Equal(t, "12 tháng", rule.Reply)
}

func TestMatchRule_HighestPriorityWins(t *testing.T) {
	// "giá" khớp cả rule priority 10 và 20
	rule, ok := matchRule(testRules(), "sản phẩm này giá bao nhiêu")
	require.True(t, ok)
	assert.Equal(t, "Hiện đang có chương trình khuyến mãi.", rule.Reply, "rule priority cao hơn phải thắng")
}

func TestMatchRule_DisabledRuleIgnored(t *testing.T) {
	_, ok := matchRule(testRules(), "cho xin địa chỉ văn phòng")
	assert.False(t, ok, "rule đã tắt không được tham gia match")
}

func TestMatchRule_NoMatch(t *testing.T) {
	_, ok := matchRule(testRules(), "xin chào")
	assert.False(t, ok)
}

func TestMatchRule_EqualPriorityFirstWins(t *testing.T) {
	rules := []chatbotmodels.ChatRule{
		{Keywords: []string{"ship"}, Reply: "đầu tiên", Priority: 5, Enabled: true},
		{Keywords: []string{"ship"}, Reply: "thứ hai", Priority: 5, Enabled: true},
	}

	rule, ok := matchRule(rules, "có ship không")
	require.True(t, ok)
	assert.Equal(t, "đầu tiên", rule.Reply, "bằng priority thì rule đứng trước thắng")
}
