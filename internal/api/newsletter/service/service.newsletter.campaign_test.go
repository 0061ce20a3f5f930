package newslettersvc

import (
	"testing"

	newslettermodels "rf_commerce/internal/api/newsletter/models"
	"rf_commerce/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecipients(t *testing.T) {
	subscribers := []newslettermodels.Subscriber{
		{Email: "a@x.vn", UnsubscribeToken: "tok-a"},
		{Email: "b@x.vn", UnsubscribeToken: "tok-b"},
	}

	recipients := buildRecipients(subscribers)

	require.Len(t, recipients, 2)
	assert.Equal(t, "a@x.vn", recipients[0].Address)
	assert.Equal(t, "tok-a", recipients[0].UnsubscribeToken, "token hủy đăng ký phải đi kèm từng người nhận")
	assert.Equal(t, "b@x.vn", recipients[1].Address)
	assert.Equal(t, "tok-b", recipients[1].UnsubscribeToken)
}

func TestBuildRecipients_Empty(t *testing.T) {
	recipients := buildRecipients(nil)
	require.NotNil(t, recipients)
	assert.Empty(t, recipients)
}

func TestCountResults(t *testing.T) {
	results := []mailer.SendResult{
		{Address: "a@x.vn", Success: true},
		{Address: "b@x.vn", Success: false, Error: "mailbox full"},
		{Address: "c@x.vn", Success: true},
		{Address: "a@x.vn", Success: false, Error: "timeout"},
	}

	sent, failed := countResults(results)

	assert.Equal(t, 2, sent)
	assert.Equal(t, 2, failed)
}
