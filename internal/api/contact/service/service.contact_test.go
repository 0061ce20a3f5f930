package contactsvc

import (
	"testing"

	contactmodels "rf_commerce/internal/api/contact/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildRelayHTML_EscapesUserInput(t *testing.T) {
	contact := contactmodels.Contact{
		Name:    "<script>alert(1)</script>",
		Email:   "a@x.vn",
		Message: "Báo giá cho tôi & gửi catalog <b>gấp</b>",
	}

	body := buildRelayHTML(contact)

	assert.NotContains(t, body, "<script>", "input người dùng phải được escape")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, body, "Báo giá cho tôi &amp; gửi catalog")
}

func TestBuildRelayHTML_OptionalFields(t *testing.T) {
	withAll := buildRelayHTML(contactmodels.Contact{
		Name: "A", Email: "a@x.vn", Phone: "0901234567", Company: "RF Corp", Message: "Hi",
	})
	assert.Contains(t, withAll, "0901234567")
	assert.Contains(t, withAll, "RF Corp")

	minimal := buildRelayHTML(contactmodels.Contact{Name: "A", Email: "a@x.vn", Message: "Hi"})
	assert.NotContains(t, minimal, "Điện thoại")
	assert.NotContains(t, minimal, "Công ty")
}
