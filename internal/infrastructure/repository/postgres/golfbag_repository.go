package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/caddyshack/internal/domain/golfbag"
	qb "github.com/riskibarqy/caddyshack/internal/platform/querybuilder"
)

const (
	golfBagsTable = "golf_bags"
	clubsTable    = "clubs"
)

var (
	golfBagColumns = []string{"id", "player", "capacity", "created_at", "updated_at"}
	clubColumns    = []string{"id", "bag_id", "name", "created_at"}
)

type GolfBagRepository struct {
	db *sqlx.DB
}

func NewGolfBagRepository(db *sqlx.DB) *GolfBagRepository {
	return &GolfBagRepository{db: db}
}

func (r *GolfBagRepository) List(ctx context.Context) ([]golfbag.Bag, error) {
	query, args, err := qb.Select(golfBagColumns...).From(golfBagsTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select golf bags query")
	}

	var rows []golfBagTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select golf bags")
	}

	out := make([]golfbag.Bag, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GolfBagRepository) GetByID(ctx context.Context, bagID int64, opts ...golfbag.GetOption) (golfbag.Bag, bool, error) {
	query, args, err := qb.Select(golfBagColumns...).From(golfBagsTable).
		Where(qb.Eq("id", bagID)).
		ToSQL()
	if err != nil {
		return golfbag.Bag{}, false, errors.Wrap(err, "build get golf bag by id query")
	}

	var row golfBagTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return golfbag.Bag{}, false, nil
		}
		return golfbag.Bag{}, false, errors.Wrapf(err, "get golf bag by id=%d", bagID)
	}

	bag := row.toDomain()
	if golfbag.ApplyGetOptions(opts...).IncludeClubs {
		clubs, err := r.listClubs(ctx, bagID)
		if err != nil {
			return golfbag.Bag{}, false, err
		}
		bag.Clubs = clubs
	}

	return bag, true, nil
}

func (r *GolfBagRepository) Create(ctx context.Context, bag golfbag.Bag) (golfbag.Bag, error) {
	query, args, err := qb.InsertModel(golfBagsTable, golfBagInsertModel{
		Player:   bag.Player,
		Capacity: bag.Capacity,
	}, "RETURNING id")
	if err != nil {
		return golfbag.Bag{}, errors.Wrap(err, "build insert golf bag query")
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return golfbag.Bag{}, errors.Wrap(err, "insert golf bag")
	}

	bag.ID = id
	bag.Clubs = nil
	return bag, nil
}

func (r *GolfBagRepository) Update(ctx context.Context, bag golfbag.Bag) (bool, error) {
	query, args, err := qb.Update(golfBagsTable).
		Set("player", bag.Player).
		Set("capacity", bag.Capacity).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", bag.ID)).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build update golf bag query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "update golf bag id=%d", bag.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "read updated golf bag rows")
	}
	return affected > 0, nil
}

// Delete relies on the clubs foreign key cascade.
func (r *GolfBagRepository) Delete(ctx context.Context, bagID int64) (bool, error) {
	query, args, err := qb.DeleteFrom(golfBagsTable).
		Where(qb.Eq("id", bagID)).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete golf bag query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "delete golf bag id=%d", bagID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "read deleted golf bag rows")
	}
	return affected > 0, nil
}

func (r *GolfBagRepository) AddClub(ctx context.Context, club golfbag.Club) (golfbag.Club, bool, error) {
	query, args, err := qb.InsertModel(clubsTable, clubInsertModel{
		BagID: club.BagID,
		Name:  club.Name,
	}, "RETURNING id")
	if err != nil {
		return golfbag.Club{}, false, errors.Wrap(err, "build insert club query")
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return golfbag.Club{}, false, nil
		}
		return golfbag.Club{}, false, errors.Wrapf(err, "insert club for golf bag id=%d", club.BagID)
	}

	club.ID = id
	return club, true, nil
}

func (r *GolfBagRepository) listClubs(ctx context.Context, bagID int64) ([]golfbag.Club, error) {
	query, args, err := qb.Select(clubColumns...).From(clubsTable).
		Where(qb.Eq("bag_id", bagID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select clubs query")
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select clubs for golf bag id=%d", bagID)
	}

	out := make([]golfbag.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, golfbag.Club{ID: row.ID, BagID: row.BagID, Name: row.Name})
	}
	return out, nil
}

func (m golfBagTableModel) toDomain() golfbag.Bag {
	return golfbag.Bag{
		ID:       m.ID,
		Player:   m.Player,
		Capacity: m.Capacity,
	}
}
