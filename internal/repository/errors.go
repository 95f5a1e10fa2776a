package repository

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrCollectionNotFound   = errors.New("collection not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrRewardNotFound       = errors.New("reward not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrDuplicateAward means a point event already exists for the same
	// (source, kind). Callers treat it as "already done", not a failure.
	ErrDuplicateAward = errors.New("points already awarded for this source")

	// ErrCodeTaken means a generated redemption code collided with an
	// existing one. The caller retries with a fresh code.
	ErrCodeTaken = errors.New("redemption code already exists")
)
