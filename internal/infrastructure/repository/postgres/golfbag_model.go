package postgres

import "time"

type golfBagTableModel struct {
	ID        int64     `db:"id"`
	Player    string    `db:"player"`
	Capacity  int       `db:"capacity"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type golfBagInsertModel struct {
	Player   string `db:"player"`
	Capacity int    `db:"capacity"`
}

type clubTableModel struct {
	ID        int64     `db:"id"`
	BagID     int64     `db:"bag_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type clubInsertModel struct {
	BagID int64  `db:"bag_id"`
	Name  string `db:"name"`
}
