package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pyronix-studio/pkg"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"order_id", "reference", "order_status", "email",
	"platform", "platform_other", "handle", "title",
	"styles", "styles_other", "voice", "vocal_language_style",
	"mood", "mood_other", "tempo", "energy",
	"subject", "ai_summary", "created_at",
}

type Repo interface {
	InsertOrder(ctx context.Context, order DBOrder) error
	GetOrders(ctx context.Context) ([]DBOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (*DBOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type DefaultRepo struct {
	db *sqlx.DB
}

func NewDefaultRepo(db *sqlx.DB) Repo {
	return &DefaultRepo{db: db}
}

func (d *DefaultRepo) InsertOrder(ctx context.Context, order DBOrder) error {
	query, args, err := queryBuilder.
		Insert("orders").
		Columns(orderColumns...).
		Values(
			order.OrderID, order.Reference, order.OrderStatus, order.Email,
			order.Platform, order.PlatformOther, order.Handle, order.Title,
			order.Styles, order.StylesOther, order.Voice, order.VocalLanguageStyle,
			order.Mood, order.MoodOther, order.Tempo, order.Energy,
			order.Subject, order.AISummary, order.CreatedAt,
		).
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to build insert query",
			Err:   err,
		}
	}

	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to insert order",
			Info:  fmt.Sprintf("query: %s", query),
			Err:   err,
		}
	}
	return nil
}

func (d *DefaultRepo) GetOrders(ctx context.Context) ([]DBOrder, error) {
	query, args, err := queryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to build select query",
			Err:   err,
		}
	}

	var orders []DBOrder
	if err := d.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to select orders",
			Info:  fmt.Sprintf("query: %s", query),
			Err:   err,
		}
	}
	return orders, nil
}

func (d *DefaultRepo) GetOrderByID(ctx context.Context, orderID string) (*DBOrder, error) {
	query, args, err := queryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to build select query",
			Err:   err,
		}
	}

	var order DBOrder
	if err := d.db.GetContext(ctx, &order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &pkg.ErrDBProcedure{
			Cause: "failed to select order",
			Info:  fmt.Sprintf("orderID: %s", orderID),
			Err:   err,
		}
	}
	return &order, nil
}

func (d *DefaultRepo) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	query, args, err := queryBuilder.
		Update("orders").
		Set("order_status", status).
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to build update query",
			Err:   err,
		}
	}

	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to update order status",
			Info:  fmt.Sprintf("orderID: %s", orderID),
			Err:   err,
		}
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (d *DefaultRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args, err := queryBuilder.
		Delete("orders").
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to build delete query",
			Err:   err,
		}
	}

	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to delete order",
			Info:  fmt.Sprintf("orderID: %s", orderID),
			Err:   err,
		}
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}
