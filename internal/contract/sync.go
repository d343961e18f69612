package contract

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"

type SyncResult = app.SyncResult

type SyncErrorCode = app.SyncErrorCode

const (
	SyncErrNotConfigured SyncErrorCode = app.SyncErrNotConfigured
	SyncErrUnavailable   SyncErrorCode = app.SyncErrUnavailable
)

type SyncError = app.SyncError
