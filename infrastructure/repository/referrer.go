package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/influencer-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
)

//go:generate mockgen -source=referrer.go -destination=mocks/referrer.go -package=mocks

const referrersTable = "referrers"

// Código do postgres para violação de unicidade
const uniqueViolation = "23505"

var (
	ErrDuplicateReferrer = errors.New("referrer already exists")
	ErrReferrerNotFound  = errors.New("referrer not found")
)

var referrerColumns = []string{
	"id",
	"name",
	"tracker_id",
	"referral_link",
	"clicks",
	"installs",
	"registrations",
	"earnings",
	"created_at",
	"updated_at",
}

type ReferrerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Referrer, error)
	List(ctx context.Context) ([]*domain.Referrer, error)
	Create(ctx context.Context, referrer *domain.Referrer) error
	UpdateStats(ctx context.Context, referrer *domain.Referrer) error
}

type referrerRepository struct {
	conn postgres.Queryer
}

func NewReferrerRepository(conn postgres.Queryer) ReferrerRepository {
	return &referrerRepository{
		conn: conn,
	}
}

// GetByID retorna nil, nil quando o influenciador não existe
func (r *referrerRepository) GetByID(ctx context.Context, id string) (*domain.Referrer, error) {
	query, args, err := squirrel.
		Select(referrerColumns...).
		From(referrersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	referrer, err := scanReferrer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err)
	}

	return referrer, nil
}

func (r *referrerRepository) List(ctx context.Context) ([]*domain.Referrer, error) {
	query, args, err := squirrel.
		Select(referrerColumns...).
		From(referrersTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err)
	}
	defer rows.Close()

	referrers := make([]*domain.Referrer, 0)
	for rows.Next() {
		referrer, err := scanReferrer(rows)
		if err != nil {
			return nil, wrapDatabaseError(err)
		}
		referrers = append(referrers, referrer)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDatabaseError(err)
	}

	return referrers, nil
}

func (r *referrerRepository) Create(ctx context.Context, referrer *domain.Referrer) error {
	now := time.Now().UTC()
	if referrer.CreatedAt.IsZero() {
		referrer.CreatedAt = now
	}
	referrer.UpdatedAt = now

	query, args, err := squirrel.
		Insert(referrersTable).
		Columns(referrerColumns...).
		Values(
			referrer.ID,
			referrer.Name,
			referrer.TrackerID,
			referrer.ReferralLink,
			referrer.Clicks,
			referrer.Installs,
			referrer.Registrations,
			int64(referrer.Earnings),
			referrer.CreatedAt,
			referrer.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateReferrer, referrer.ID)
		}
		return wrapDatabaseError(err)
	}

	logrus.WithField("referrer_id", referrer.ID).Debug("referrer created")

	return nil
}

// UpdateStats sobrescreve apenas os contadores derivados e o link de indicação
func (r *referrerRepository) UpdateStats(ctx context.Context, referrer *domain.Referrer) error {
	referrer.UpdatedAt = time.Now().UTC()

	query, args, err := squirrel.
		Update(referrersTable).
		Set("clicks", referrer.Clicks).
		Set("installs", referrer.Installs).
		Set("registrations", referrer.Registrations).
		Set("earnings", int64(referrer.Earnings)).
		Set("referral_link", referrer.ReferralLink).
		Set("updated_at", referrer.UpdatedAt).
		Where(squirrel.Eq{"id": referrer.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDatabaseError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return wrapDatabaseError(err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrReferrerNotFound, referrer.ID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReferrer(row rowScanner) (*domain.Referrer, error) {
	referrer := &domain.Referrer{}
	var earnings int64

	if err := row.Scan(
		&referrer.ID,
		&referrer.Name,
		&referrer.TrackerID,
		&referrer.ReferralLink,
		&referrer.Clicks,
		&referrer.Installs,
		&referrer.Registrations,
		&earnings,
		&referrer.CreatedAt,
		&referrer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	referrer.Earnings = domain.Earnings(earnings)

	return referrer, nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro no banco de dados: %w", err)
}
