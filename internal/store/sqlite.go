package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS campaigns (
	id         TEXT PRIMARY KEY,
	icp        TEXT NOT NULL,
	source     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'pending',
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS prospects (
	id          TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	data        TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS sends (
	id          TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	to_email    TEXT NOT NULL,
	company     TEXT NOT NULL,
	subject     TEXT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT,
	sent_at     DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_campaigns_status ON campaigns(status);
CREATE INDEX IF NOT EXISTS idx_prospects_campaign_id ON prospects(campaign_id);
CREATE INDEX IF NOT EXISTS idx_sends_campaign_id ON sends(campaign_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateCampaign(ctx context.Context, icp, source string) (*model.Campaign, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, icp, source, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, icp, source, string(model.CampaignStatusPending), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert campaign")
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

func (s *SQLiteStore) UpdateCampaignStatus(ctx context.Context, campaignID string, status model.CampaignStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE campaigns SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), campaignID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update campaign status %s", campaignID)
	}
	return checkRowsAffected(res, "campaign", campaignID)
}

func (s *SQLiteStore) GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, icp, source, status, created_at, updated_at FROM campaigns WHERE id = ?`,
		campaignID,
	)

	var c model.Campaign
	err := row.Scan(&c.ID, &c.ICP, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("campaign not found: %s", campaignID)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get campaign %s", campaignID)
	}
	return &c, nil
}

func (s *SQLiteStore) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]model.Campaign, error) {
	query := `SELECT id, icp, source, status, created_at, updated_at FROM campaigns`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list campaigns")
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.ICP, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan campaign")
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, eris.Wrap(rows.Err(), "sqlite: iterate campaigns")
}

func (s *SQLiteStore) SaveProspects(ctx context.Context, campaignID string, companies []model.Company) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, company := range companies {
		data, err := json.Marshal(company)
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal prospect %s", company.Name)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO prospects (id, campaign_id, data, created_at) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), campaignID, string(data), now,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert prospect %s", company.Name)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit prospects")
}

func (s *SQLiteStore) ListProspects(ctx context.Context, campaignID string) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM prospects WHERE campaign_id = ? ORDER BY created_at`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list prospects %s", campaignID)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan prospect")
		}
		var company model.Company
		if err := json.Unmarshal([]byte(data), &company); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal prospect")
		}
		companies = append(companies, company)
	}
	return companies, eris.Wrap(rows.Err(), "sqlite: iterate prospects")
}

func (s *SQLiteStore) RecordSend(ctx context.Context, send model.Send) error {
	if send.ID == "" {
		send.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sends (id, campaign_id, to_email, company, subject, status, error, sent_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		send.ID, send.CampaignID, send.ToEmail, send.Company, send.Subject,
		string(send.Status), send.Error, send.SentAt,
	)
	return eris.Wrapf(err, "sqlite: record send to %s", send.ToEmail)
}

func (s *SQLiteStore) ListSends(ctx context.Context, campaignID string) ([]model.Send, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, campaign_id, to_email, company, subject, status, error, sent_at FROM sends WHERE campaign_id = ? ORDER BY sent_at`,
		campaignID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list sends %s", campaignID)
	}
	defer rows.Close()

	var sends []model.Send
	for rows.Next() {
		var snd model.Send
		var sendErr sql.NullString
		if err := rows.Scan(&snd.ID, &snd.CampaignID, &snd.ToEmail, &snd.Company,
			&snd.Subject, &snd.Status, &sendErr, &snd.SentAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan send")
		}
		snd.Error = sendErr.String
		sends = append(sends, snd)
	}
	return sends, eris.Wrap(rows.Err(), "sqlite: iterate sends")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
