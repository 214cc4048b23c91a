package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. Kept as an interface
// so tests can substitute a mock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS campaigns (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	icp        TEXT NOT NULL,
	source     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'pending',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS prospects (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	data        JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sends (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	to_email    TEXT NOT NULL,
	company     TEXT NOT NULL,
	subject     TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT,
	sent_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status);
CREATE INDEX IF NOT EXISTS idx_prospects_campaign_id ON prospects(campaign_id);
CREATE INDEX IF NOT EXISTS idx_sends_campaign_id ON sends(campaign_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) CreateCampaign(ctx context.Context, icp, source string) (*model.Campaign, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO campaigns (id, icp, source, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, icp, source, string(model.CampaignStatusPending), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert campaign")
	}

	return &model.Campaign{
		ID:        id,
		ICP:       icp,
		Source:    source,
		Status:    model.CampaignStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *PostgresStore) UpdateCampaignStatus(ctx context.Context, campaignID string, status model.CampaignStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), campaignID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update campaign status %s", campaignID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("campaign not found: %s", campaignID)
	}
	return nil
}

func (s *PostgresStore) GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, icp, source, status, created_at, updated_at FROM campaigns WHERE id = $1`,
		campaignID,
	)

	var c model.Campaign
	err := row.Scan(&c.ID, &c.ICP, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("campaign not found: %s", campaignID)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get campaign %s", campaignID)
	}
	return &c, nil
}

func (s *PostgresStore) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]model.Campaign, error) {
	query := `SELECT id, icp, source, status, created_at, updated_at FROM campaigns`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list campaigns")
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.ICP, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan campaign")
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, eris.Wrap(rows.Err(), "postgres: iterate campaigns")
}

func (s *PostgresStore) SaveProspects(ctx context.Context, campaignID string, companies []model.Company) error {
	now := time.Now().UTC()
	for _, company := range companies {
		data, err := json.Marshal(company)
		if err != nil {
			return eris.Wrapf(err, "postgres: marshal prospect %s", company.Name)
		}
		_, err = s.pool.Exec(ctx,
			`INSERT INTO prospects (id, campaign_id, data, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), campaignID, data, now,
		)
		if err != nil {
			return eris.Wrapf(err, "postgres: insert prospect %s", company.Name)
		}
	}
	return nil
}

func (s *PostgresStore) ListProspects(ctx context.Context, campaignID string) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT data FROM prospects WHERE campaign_id = $1 ORDER BY created_at`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list prospects %s", campaignID)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan prospect")
		}
		var company model.Company
		if err := json.Unmarshal(data, &company); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal prospect")
		}
		companies = append(companies, company)
	}
	return companies, eris.Wrap(rows.Err(), "postgres: iterate prospects")
}

func (s *PostgresStore) RecordSend(ctx context.Context, send model.Send) error {
	if send.ID == "" {
		send.ID = uuid.New().String()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO sends (id, campaign_id, to_email, company, subject, status, error, sent_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		send.ID, send.CampaignID, send.ToEmail, send.Company, send.Subject,
		string(send.Status), send.Error, send.SentAt,
	)
	return eris.Wrapf(err, "postgres: record send to %s", send.ToEmail)
}

func (s *PostgresStore) ListSends(ctx context.Context, campaignID string) ([]model.Send, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, campaign_id, to_email, company, subject, status, error, sent_at FROM sends WHERE campaign_id = $1 ORDER BY sent_at`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list sends %s", campaignID)
	}
	defer rows.Close()

	var sends []model.Send
	for rows.Next() {
		var snd model.Send
		if err := rows.Scan(&snd.ID, &snd.CampaignID, &snd.ToEmail, &snd.Company,
			&snd.Subject, &snd.Status, &snd.Error, &snd.SentAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan send")
		}
		sends = append(sends, snd)
	}
	return sends, eris.Wrap(rows.Err(), "postgres: iterate sends")
}
