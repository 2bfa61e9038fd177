package models

// LogEntry records one authenticated HTTP call. Fields are nullable because
// the audit layer writes whatever it observed; rows are never updated or
// deleted afterwards.
type LogEntry struct {
	Record
	Method   *string `db:"method"`
	Endpoint *string `db:"endpoint"`
	Status   *string `db:"status"`
	UserID   *int64  `db:"user_id"`
}
