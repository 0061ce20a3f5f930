package dto

// EventCreateInput dữ liệu tạo sự kiện mới.
type EventCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	StartAt     int64  `json:"startAt" validate:"required,gt=0"`
	EndAt       int64  `json:"endAt,omitempty" validate:"omitempty,gtefield=StartAt"`
}

// EventUpdateInput dữ liệu cập nhật sự kiện.
type EventUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	StartAt     int64  `json:"startAt,omitempty"`
	EndAt       int64  `json:"endAt,omitempty"`
}
