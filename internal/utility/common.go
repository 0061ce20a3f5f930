package utility

import (
	"regexp"
	"time"

	"rf_commerce/internal/common"
)

// UnixMilli dùng để lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.NewError(common.ErrCodeValidationInput, "Email không đúng định dạng", common.StatusBadRequest, nil)
	}
	return nil
}
