package basehdl

import (
	"net/http/httptest"
	"strings"
	"testing"

	basesvc "rf_commerce/internal/api/base/service"
	"rf_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model và DTO tối giản cho test partial update: có đủ ba loại giá trị zero
// đáng quan tâm (bool false, int 0, chuỗi rỗng).
type flagDoc struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Label    string             `json:"label" bson:"label"`
	Priority int                `json:"priority" bson:"priority"`
	Enabled  bool               `json:"enabled" bson:"enabled"`
}

type flagUpdateInput struct {
	Label    string `json:"label,omitempty"`
	Priority *int   `json:"priority,omitempty"`
	Enabled  *bool  `json:"enabled,omitempty"`
}

// parseUpdateBodyFromJSON chạy parseUpdateBody qua một request Fiber thật
// để lấy UpdateData như handler UpdateOne/UpdateById nhận được.
func parseUpdateBodyFromJSON(t *testing.T, body string) (*basesvc.UpdateData, error) {
	t.Helper()
	global.InitValidator()

	h := NewBaseHandler[flagDoc, flagUpdateInput, flagUpdateInput](nil)

	var update *basesvc.UpdateData
	var parseErr error
	app := fiber.New()
	app.Put("/docs", func(c fiber.Ctx) error {
		update, parseErr = h.parseUpdateBody(c)
		return nil
	})

	req := httptest.NewRequest("PUT", "/docs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	return update, parseErr
}

func TestParseUpdateBody_BooleanFalseIsApplied(t *testing.T) {
	update, err := parseUpdateBodyFromJSON(t, `{"enabled":false}`)
	require.NoError(t, err)

	require.Contains(t, update.Set, "enabled")
	assert.Equal(t, false, update.Set["enabled"])
	assert.Len(t, update.Set, 1)
}

func TestParseUpdateBody_ZeroNumberIsApplied(t *testing.T) {
	update, err := parseUpdateBodyFromJSON(t, `{"priority":0}`)
	require.NoError(t, err)

	require.Contains(t, update.Set, "priority")
	assert.EqualValues(t, 0, update.Set["priority"])
	assert.Len(t, update.Set, 1)
}

func TestParseUpdateBody_OmittedFieldsStayOut(t *testing.T) {
	update, err := parseUpdateBodyFromJSON(t, `{"label":"khuyến mãi"}`)
	require.NoError(t, err)

	assert.Equal(t, "khuyến mãi", update.Set["label"])
	assert.NotContains(t, update.Set, "enabled")
	assert.NotContains(t, update.Set, "priority")
	assert.NotContains(t, update.Set, "_id")
}

func TestParseUpdateBody_MixedZeroAndNonZero(t *testing.T) {
	update, err := parseUpdateBodyFromJSON(t, `{"label":"flash sale","priority":0,"enabled":false}`)
	require.NoError(t, err)

	assert.Equal(t, "flash sale", update.Set["label"])
	assert.EqualValues(t, 0, update.Set["priority"])
	assert.Equal(t, false, update.Set["enabled"])
	assert.Len(t, update.Set, 3)
}

func TestParseUpdateBody_NonObjectBodyRejected(t *testing.T) {
	_, err := parseUpdateBodyFromJSON(t, `"not an object"`)
	assert.Error(t, err)
}
