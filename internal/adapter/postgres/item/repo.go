// Package item implements the listing repository. Queries are composed with
// squirrel and scanned with scany.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectColumns are qualified with the "i" alias used by every read query.
var selectColumns = []string{
	"i.id",
	"i.user_id",
	"i.title",
	"i.description",
	"i.price::text AS price",
	"i.location",
	"i.category_id",
	"i.image_url",
	"i.status",
	"i.created_at",
	"i.updated_at",
}

const returningColumns = "RETURNING id, user_id, title, description, price::text AS price, " +
	"location, category_id, image_url, status, created_at, updated_at"

type itemRow struct {
	ID          uuid.UUID  `db:"id"`
	OwnerID     uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Price       string     `db:"price"`
	Location    string     `db:"location"`
	CategoryID  *uuid.UUID `db:"category_id"`
	ImageURL    *string    `db:"image_url"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type detailRow struct {
	itemRow
	CategoryName   *string `db:"category_name"`
	OwnerUsername  string  `db:"owner_username"`
	OwnerFullName  *string `db:"owner_full_name"`
	OwnerPhone     *string `db:"owner_phone"`
	OwnerAvatarURL *string `db:"owner_avatar_url"`
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new item repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns items matching f, newest first. f.Limit must already be
// clamped by the caller; zero means no limit.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	query, args, err := BuildListQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build item list query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		it, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// BuildListQuery composes the listing query for f. Search is a
// case-insensitive substring match on title or description with LIKE
// metacharacters escaped; every filter composes conjunctively.
func BuildListQuery(f domain.ItemFilter) (string, []any, error) {
	b := psql.Select(selectColumns...).
		From("items i").
		OrderBy("i.created_at DESC", "i.id DESC")

	if f.CategoryID != nil {
		b = b.Where(squirrel.Eq{"i.category_id": *f.CategoryID})
	}
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"i.status": string(*f.Status)})
	}
	if f.OwnerID != nil {
		b = b.Where(squirrel.Eq{"i.user_id": *f.OwnerID})
	}
	if f.Search != nil {
		if term := strings.TrimSpace(*f.Search); term != "" {
			pattern := "%" + EscapeLike(term) + "%"
			b = b.Where(squirrel.Or{
				squirrel.ILike{"i.title": pattern},
				squirrel.ILike{"i.description": pattern},
			})
		}
	}
	if c := f.After; c != nil {
		b = b.Where(squirrel.Expr("(i.created_at, i.id) < (?, ?)", c.CreatedAt, c.ID))
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}

	return b.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetByID returns a single item.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query, args, err := psql.Select(selectColumns...).
		From("items i").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	it, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetDetail returns an item joined with its category name and the owner's
// public profile fields.
func (r *Repo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.ItemDetail, error) {
	query, args, err := psql.Select(selectColumns...).
		Columns(
			"c.name AS category_name",
			"p.username AS owner_username",
			"p.full_name AS owner_full_name",
			"p.phone AS owner_phone",
			"p.avatar_url AS owner_avatar_url",
		).
		From("items i").
		Join("profiles p ON p.id = i.user_id").
		LeftJoin("categories c ON c.id = i.category_id").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item detail query: %w", err)
	}

	var row detailRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	it, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &domain.ItemDetail{
		Item:         it,
		CategoryName: row.CategoryName,
		Owner: domain.OwnerSummary{
			Username:  row.OwnerUsername,
			FullName:  row.OwnerFullName,
			Phone:     row.OwnerPhone,
			AvatarURL: row.OwnerAvatarURL,
		},
	}, nil
}

// Create inserts an item and returns the stored row.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	query, args, err := psql.Insert("items").
		Columns("id", "user_id", "title", "description", "price", "location",
			"category_id", "image_url", "status", "created_at", "updated_at").
		Values(it.ID, it.OwnerID, it.Title, it.Description,
			squirrel.Expr("?::numeric", it.Price.String()), it.Location,
			it.CategoryID, it.ImageURL, string(it.Status), it.CreatedAt, it.UpdatedAt).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item insert: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}

	out, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update overwrites the editable fields of an item owned by ownerID.
// A missing item or an ownership mismatch yields domain.ErrNotFound and
// writes nothing.
func (r *Repo) Update(ctx context.Context, id, ownerID uuid.UUID, ch domain.ItemChanges) (*domain.Item, error) {
	query, args, err := psql.Update("items").
		SetMap(map[string]any{
			"title":       ch.Title,
			"description": ch.Description,
			"price":       squirrel.Expr("?::numeric", ch.Price.String()),
			"location":    ch.Location,
			"category_id": ch.CategoryID,
			"image_url":   ch.ImageURL,
			"status":      string(ch.Status),
			"updated_at":  squirrel.Expr("now()"),
		}).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item update: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	out, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an item owned by ownerID. Deleting an absent item is not
// an error; the returned count tells whether a row was removed. Orders keep
// their item, so an item with any order yields domain.ErrItemHasOrders.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx,
		`DELETE FROM items WHERE id = $1 AND user_id = $2`, id, ownerID)
	if postgres.IsForeignKeyViolation(err) {
		return 0, fmt.Errorf("item %s: %w", id, domain.ErrItemHasOrders)
	}
	if err != nil {
		return 0, postgres.MapError(err, "item", id)
	}
	return tag.RowsAffected(), nil
}

func (row itemRow) toDomain() (domain.Item, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %s: parse price %q: %w", row.ID, row.Price, err)
	}
	return domain.Item{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Price:       price,
		Location:    row.Location,
		CategoryID:  row.CategoryID,
		ImageURL:    row.ImageURL,
		Status:      domain.ItemStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
