package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sports-ground-booking/internal/model"
)

// GroundRepo encapsulates database operations for grounds.
type GroundRepo struct {
	db *sql.DB
}

// NewGroundRepo constructs a GroundRepo bound to the given database.
func NewGroundRepo(db *sql.DB) *GroundRepo { return &GroundRepo{db: db} }

const groundColumns = `id, name, location, sport_type, CAST(rating AS CHAR), description, image_url`

func scanGround(row interface{ Scan(...any) error }) (*model.Ground, error) {
	var g model.Ground
	var desc, img sql.NullString
	if err := row.Scan(&g.ID, &g.Name, &g.Location, &g.SportType, &g.Rating, &desc, &img); err != nil {
		return nil, err
	}
	if desc.Valid {
		g.Description = &desc.String
	}
	if img.Valid {
		g.ImageURL = &img.String
	}
	return &g, nil
}

// List returns all grounds ordered by id.
func (r *GroundRepo) List(ctx context.Context) ([]*model.Ground, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+groundColumns+` FROM grounds ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Ground, 0)
	for rows.Next() {
		g, err := scanGround(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GetByID fetches a ground by id, returning ErrGroundNotFound when absent.
func (r *GroundRepo) GetByID(ctx context.Context, id int64) (*model.Ground, error) {
	g, err := scanGround(r.db.QueryRowContext(ctx,
		`SELECT `+groundColumns+` FROM grounds WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroundNotFound
		}
		return nil, err
	}
	return g, nil
}

// Create inserts a ground and populates its generated id. An empty
// rating defaults to 0.00 to match the reference schema.
func (r *GroundRepo) Create(ctx context.Context, g *model.Ground) error {
	if g.Rating == "" {
		g.Rating = "0.00"
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO grounds (name, location, sport_type, rating, description, image_url) VALUES (?,?,?,?,?,?)`,
		g.Name, g.Location, g.SportType, g.Rating, g.Description, g.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

// Update rewrites all mutable columns of a ground. The handler merges
// partial input into a fetched record before calling this.
func (r *GroundRepo) Update(ctx context.Context, g *model.Ground) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE grounds SET name=?, location=?, sport_type=?, rating=?, description=?, image_url=? WHERE id=?`,
		g.Name, g.Location, g.SportType, g.Rating, g.Description, g.ImageURL, g.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// 0 rows can also mean an identical write; treat as success
		// only when the row exists.
		if _, err := r.GetByID(ctx, g.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a ground. Slots cascade at the schema level.
func (r *GroundRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grounds WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGroundNotFound
	}
	return nil
}
