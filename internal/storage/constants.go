package storage

// File naming
const (
	// BackupSuffix is appended to the primary path for the fallback copy.
	BackupSuffix = ".bak"
)

// Error message constants
const (
	ErrMsgCreateDataDirFailed  = "failed to create data directory: %w"
	ErrMsgCloneSnapshotFailed  = "failed to clone snapshot: %w"
	ErrMsgEncodeSnapshotFailed = "failed to encode snapshot: %w"
	ErrMsgWriteSnapshotFailed  = "failed to write snapshot: %w"
)

// Log message constants
const (
	LogMsgPrimaryUnreadable = "Primary store document unreadable, trying backup"
	LogMsgBackupUnreadable  = "Backup store document unreadable, starting empty"
	LogMsgBackupWriteFailed = "Failed to refresh backup copy"
)
