package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DownloadRecord là một usage record, append-only.
// Được ghi một lần cho mỗi render thành công, không bao giờ
// bị mutate hay delete bởi core.
type DownloadRecord struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	Filename  string    `json:"filename"`
}

// NewDownloadRecord tạo record với ID và timestamp tự sinh
func NewDownloadRecord(userAgent, ipAddress, filename string) *DownloadRecord {
	return &DownloadRecord{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		Filename:  filename,
	}
}

// Validate kiểm tra record có đủ thông tin để ghi audit trail
func (r DownloadRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required),
		validation.Field(&r.IPAddress, validation.Required),
	)
}

// Statistics là platform statistics trả về cho landing page.
// Các số liệu marketing là fixed values, chỉ TotalDownloads được
// đếm từ store.
type Statistics struct {
	StudentsHelped   int   `json:"students_helped"`
	SuccessRate      int   `json:"success_rate"`
	AvgTimeToResults int   `json:"avg_time_to_results"`
	TotalDownloads   int64 `json:"total_downloads"`
}

// DefaultStatistics trả về statistics với download count = 0
// Dùng làm fallback khi store không available
func DefaultStatistics() *Statistics {
	return &Statistics{
		StudentsHelped:   15000,
		SuccessRate:      85,
		AvgTimeToResults: 30,
		TotalDownloads:   0,
	}
}
