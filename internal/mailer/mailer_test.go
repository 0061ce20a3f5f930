package mailer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSleeper ghi lại các lần Sleep thay vì chờ thật
type fakeSleeper struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleeps = append(s.sleeps, d)
}

func (s *fakeSleeper) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sleeps)
}

// fakeTransport ghi lại các lần gửi, có thể giả lập lỗi hoặc panic cho từng địa chỉ.
// wave của mỗi lần gửi = số lần Sleep đã xảy ra trước đó (để kiểm tra chia đợt).
type fakeTransport struct {
	mu       sync.Mutex
	calls    map[string]int
	waves    map[string]int
	tokens   map[string]string
	sleeper  *fakeSleeper
	failFor  map[string]error
	panicFor map[string]bool
}

func newFakeTransport(sleeper *fakeSleeper) *fakeTransport {
	return &fakeTransport{
		calls:    make(map[string]int),
		waves:    make(map[string]int),
		tokens:   make(map[string]string),
		sleeper:  sleeper,
		failFor:  make(map[string]error),
		panicFor: make(map[string]bool),
	}
}

func (f *fakeTransport) SendOne(ctx context.Context, recipient Recipient, subject, htmlBody string) (string, error) {
	f.mu.Lock()
	f.calls[recipient.Address]++
	f.tokens[recipient.Address] = recipient.UnsubscribeToken
	if f.sleeper != nil {
		f.waves[recipient.Address] = f.sleeper.count()
	}
	shouldPanic := f.panicFor[recipient.Address]
	err := f.failFor[recipient.Address]
	f.mu.Unlock()

	if shouldPanic {
		panic("smtp connection corrupted")
	}
	if err != nil {
		return "", err
	}
	return "msg-" + recipient.Address, nil
}

func (f *fakeTransport) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func addresses(addrs ...string) []Recipient {
	recipients := make([]Recipient, len(addrs))
	for i, a := range addrs {
		recipients[i] = Recipient{Address: a}
	}
	return recipients
}

func TestSendBulk_EmptyRecipients(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	m := NewBulkMailer(transport, sleeper)

	results := m.SendBulk(context.Background(), nil, "Subject", "<p>Hi</p>", 5)

	require.NotNil(t, results, "kết quả không được nil")
	assert.Empty(t, results, "danh sách người nhận rỗng phải trả về kết quả rỗng")
	assert.Equal(t, 0, transport.totalCalls(), "không được gọi transport khi không có người nhận")
	assert.Equal(t, 0, sleeper.count(), "không được sleep khi không có người nhận")
}

func TestSendBulk_BatchesAndDelay(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	m := NewBulkMailer(transport, sleeper)

	recipients := addresses("a@x.vn", "b@x.vn", "c@x.vn", "d@x.vn", "e@x.vn")
	results := m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", 2)

	// 5 người nhận, batch 2 → 3 đợt, nghỉ 2 lần (không nghỉ sau đợt cuối)
	require.Equal(t, 2, sleeper.count(), "phải nghỉ đúng giữa các đợt, không nghỉ sau đợt cuối")
	for _, d := range sleeper.sleeps {
		assert.Equal(t, 1000*time.Millisecond, d, "khoảng nghỉ giữa các đợt phải là 1 giây")
	}

	// Mỗi người nhận được gửi đúng một lần
	assert.Equal(t, len(recipients), transport.totalCalls())
	for _, r := range recipients {
		assert.Equal(t, 1, transport.calls[r.Address], "địa chỉ %s phải được gửi đúng một lần", r.Address)
	}

	// Kết quả theo đúng thứ tự đầu vào, kèm message id
	require.Len(t, results, len(recipients))
	for i, r := range recipients {
		assert.Equal(t, r.Address, results[i].Address, "kết quả phải theo thứ tự người nhận đầu vào")
		assert.True(t, results[i].Success)
		assert.Equal(t, "msg-"+r.Address, results[i].MessageID)
	}

	// Chia đợt đúng: [a,b] đợt 0, [c,d] đợt 1, [e] đợt 2
	assert.Equal(t, 0, transport.waves["a@x.vn"])
	assert.Equal(t, 0, transport.waves["b@x.vn"])
	assert.Equal(t, 1, transport.waves["c@x.vn"])
	assert.Equal(t, 1, transport.waves["d@x.vn"])
	assert.Equal(t, 2, transport.waves["e@x.vn"])
}

func TestSendBulk_DefaultBatchSize(t *testing.T) {
	for _, batchSize := range []int{0, -3} {
		sleeper := &fakeSleeper{}
		transport := newFakeTransport(sleeper)
		m := NewBulkMailer(transport, sleeper)

		// 10 người nhận với batch mặc định 10 → một đợt duy nhất, không nghỉ
		recipients := make([]Recipient, 10)
		for i := range recipients {
			recipients[i] = Recipient{Address: fmt.Sprintf("user%d@x.vn", i)}
		}

		results := m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", batchSize)

		assert.Len(t, results, 10)
		assert.Equal(t, 0, sleeper.count(), "batchSize %d phải dùng mặc định 10, một đợt duy nhất", batchSize)
		assert.Equal(t, 10, transport.totalCalls())
	}
}

func TestSendBulk_FailureDoesNotAbort(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	transport.failFor["b@x.vn"] = errors.New("mailbox full")
	m := NewBulkMailer(transport, sleeper)

	recipients := addresses("a@x.vn", "b@x.vn", "c@x.vn")
	results := m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", 3)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success, "người nhận lỗi phải được ghi nhận thất bại")
	assert.Contains(t, results[1].Error, "mailbox full")
	assert.Empty(t, results[1].MessageID)
	assert.True(t, results[2].Success, "lỗi của một người nhận không được ảnh hưởng người khác")

	// Không retry
	assert.Equal(t, 1, transport.calls["b@x.vn"], "không được retry người nhận lỗi")
}

func TestSendBulk_TransportPanicIsRecovered(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	transport.panicFor["b@x.vn"] = true
	m := NewBulkMailer(transport, sleeper)

	recipients := addresses("a@x.vn", "b@x.vn", "c@x.vn")

	var results []SendResult
	assert.NotPanics(t, func() {
		results = m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", 3)
	}, "panic trong transport không được lan ra ngoài SendBulk")

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "panic")
	assert.True(t, results[2].Success)
}

func TestSendBulk_DuplicateAddressesNotDeduplicated(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	m := NewBulkMailer(transport, sleeper)

	recipients := addresses("a@x.vn", "a@x.vn", "b@x.vn")
	results := m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", 3)

	require.Len(t, results, 3)
	assert.Equal(t, 2, transport.calls["a@x.vn"], "địa chỉ trùng lặp phải được gửi cho từng phần tử đầu vào")
	assert.Equal(t, 1, transport.calls["b@x.vn"])
}

func TestSendBulk_UnsubscribeTokenForwardedToTransport(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	m := NewBulkMailer(transport, sleeper)

	recipients := []Recipient{
		{Address: "a@x.vn", UnsubscribeToken: "tok-a"},
		{Address: "b@x.vn"},
	}
	results := m.SendBulk(context.Background(), recipients, "Subject", "<p>Hi</p>", 2)

	require.Len(t, results, 2)
	assert.Equal(t, "tok-a", transport.tokens["a@x.vn"])
	assert.Equal(t, "", transport.tokens["b@x.vn"])
}

func TestSendBulk_ResultTimestamps(t *testing.T) {
	sleeper := &fakeSleeper{}
	transport := newFakeTransport(sleeper)
	m := NewBulkMailer(transport, sleeper)

	before := time.Now().UnixMilli()
	results := m.SendBulk(context.Background(), addresses("a@x.vn"), "Subject", "<p>Hi</p>", 1)
	after := time.Now().UnixMilli()

	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].SentAt, before)
	assert.LessOrEqual(t, results[0].SentAt, after)
}
