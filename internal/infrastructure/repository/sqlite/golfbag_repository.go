package sqlite

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
)

const (
	selectGolfBagsSQL = `SELECT id, player, capacity FROM golf_bags ORDER BY id`
	selectGolfBagSQL  = `SELECT id, player, capacity FROM golf_bags WHERE id = ?`
	insertGolfBagSQL  = `INSERT INTO golf_bags (player, capacity) VALUES (?, ?) RETURNING id`
	updateGolfBagSQL  = `UPDATE golf_bags SET player = ?, capacity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	deleteGolfBagSQL  = `DELETE FROM golf_bags WHERE id = ?`
	selectClubsSQL    = `SELECT id, bag_id, name FROM clubs WHERE bag_id = ? ORDER BY id`
	insertClubSQL     = `INSERT INTO clubs (bag_id, name) SELECT ?, ? WHERE EXISTS (SELECT 1 FROM golf_bags WHERE id = ?) RETURNING id`
)

type golfBagRow struct {
	ID       int64  `db:"id"`
	Player   string `db:"player"`
	Capacity int    `db:"capacity"`
}

type clubRow struct {
	ID    int64  `db:"id"`
	BagID int64  `db:"bag_id"`
	Name  string `db:"name"`
}

type GolfBagRepository struct {
	db *sqlx.DB
}

func NewGolfBagRepository(db *sqlx.DB) *GolfBagRepository {
	return &GolfBagRepository{db: db}
}

func (r *GolfBagRepository) List(ctx context.Context) ([]golfbag.Bag, error) {
	var rows []golfBagRow
	if err := r.db.SelectContext(ctx, &rows, selectGolfBagsSQL); err != nil {
		return nil, errors.Wrap(err, "select golf bags")
	}

	out := make([]golfbag.Bag, 0, len(rows))
	for _, row := range rows {
		out = append(out, golfbag.Bag{ID: row.ID, Player: row.Player, Capacity: row.Capacity})
	}
	return out, nil
}

func (r *GolfBagRepository) GetByID(ctx context.Context, bagID int64, opts ...golfbag.GetOption) (golfbag.Bag, bool, error) {
	var row golfBagRow
	if err := r.db.GetContext(ctx, &row, selectGolfBagSQL, bagID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return golfbag.Bag{}, false, nil
		}
		return golfbag.Bag{}, false, errors.Wrapf(err, "get golf bag by id=%d", bagID)
	}

	bag := golfbag.Bag{ID: row.ID, Player: row.Player, Capacity: row.Capacity}
	if !golfbag.ApplyGetOptions(opts...).IncludeClubs {
		return bag, true, nil
	}

	var clubs []clubRow
	if err := r.db.SelectContext(ctx, &clubs, selectClubsSQL, bagID); err != nil {
		return golfbag.Bag{}, false, errors.Wrapf(err, "select clubs for golf bag id=%d", bagID)
	}
	bag.Clubs = make([]golfbag.Club, 0, len(clubs))
	for _, c := range clubs {
		bag.Clubs = append(bag.Clubs, golfbag.Club{ID: c.ID, BagID: c.BagID, Name: c.Name})
	}
	return bag, true, nil
}

func (r *GolfBagRepository) Create(ctx context.Context, bag golfbag.Bag) (golfbag.Bag, error) {
	var id int64
	if err := r.db.QueryRowxContext(ctx, insertGolfBagSQL, bag.Player, bag.Capacity).Scan(&id); err != nil {
		return golfbag.Bag{}, errors.Wrap(err, "insert golf bag")
	}
	bag.ID = id
	bag.Clubs = nil
	return bag, nil
}

func (r *GolfBagRepository) Update(ctx context.Context, bag golfbag.Bag) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateGolfBagSQL, bag.Player, bag.Capacity, bag.ID)
	if err != nil {
		return false, errors.Wrapf(err, "update golf bag id=%d", bag.ID)
	}
	return rowsChanged(res)
}

func (r *GolfBagRepository) Delete(ctx context.Context, bagID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteGolfBagSQL, bagID)
	if err != nil {
		return false, errors.Wrapf(err, "delete golf bag id=%d", bagID)
	}
	return rowsChanged(res)
}

func (r *GolfBagRepository) AddClub(ctx context.Context, club golfbag.Club) (golfbag.Club, bool, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, insertClubSQL, club.BagID, club.Name, club.BagID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return golfbag.Club{}, false, nil
		}
		return golfbag.Club{}, false, errors.Wrapf(err, "insert club for golf bag id=%d", club.BagID)
	}
	club.ID = id
	return club, true, nil
}

func rowsChanged(res sql.Result) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "read affected rows")
	}
	return affected > 0, nil
}
