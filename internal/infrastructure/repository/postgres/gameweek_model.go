package postgres

import "time"

type gameweekTableModel struct {
	ID          int64      `db:"id"`
	Number      int        `db:"number"`
	Name        string     `db:"name"`
	StartsAt    time.Time  `db:"starts_at"`
	EndsAt      time.Time  `db:"ends_at"`
	IsActive    bool       `db:"is_active"`
	IsCompleted bool       `db:"is_completed"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
