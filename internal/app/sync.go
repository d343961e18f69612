package app

import "time"

type SyncResult struct {
	StartedAt   time.Time
	LeadCount   int
	VendorCount int
	DurationMs  int64
}

type SyncErrorCode string

const (
	SyncErrNotConfigured SyncErrorCode = "NOT_CONFIGURED"
	SyncErrUnavailable   SyncErrorCode = "UNAVAILABLE"
)

type SyncError struct {
	Code    SyncErrorCode
	Message string
}

func (e *SyncError) Error() string {
	return string(e.Code) + ": " + e.Message
}
