package shared

// Task types cho asynq
const (
	TypeCleanupExpiredPDFs = "pdf:cleanup_expired"
)

// Queue names
const (
	QueueDefault     = "default"
	QueueMaintenance = "maintenance"
)

// CleanupExpiredPDFsPayload represents data for the PDF cleanup job
// RetentionHours = 0 nghĩa là dùng default từ config
type CleanupExpiredPDFsPayload struct {
	RetentionHours int `json:"retention_hours"`
}
