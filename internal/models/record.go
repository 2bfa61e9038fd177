package models

// Record carries the fields every persisted entity shares: the
// storage-assigned id and the Jalali creation timestamp. Entities embed it by
// value.
type Record struct {
	ID      int64  `db:"id"`
	Created string `db:"created"`
}
