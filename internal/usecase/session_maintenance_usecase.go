package usecase

import "context"

// SessionMaintenanceUsecase keeps the relational session table small.
type SessionMaintenanceUsecase interface {
	// PurgeExpiredSessions deletes expired sessions and returns how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
