package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresCreateCampaign(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO campaigns`).
		WithArgs(pgxmock.AnyArg(), "ai companies", "llm", "pending", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	c, err := s.CreateCampaign(context.Background(), "ai companies", "llm")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, model.CampaignStatusPending, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetCampaignNotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, icp, source, status, created_at, updated_at FROM campaigns WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetCampaign(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateCampaignStatusNotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE campaigns SET status`).
		WithArgs("complete", pgxmock.AnyArg(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateCampaignStatus(context.Background(), "missing", model.CampaignStatusComplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveProspects(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO prospects`).
		WithArgs(pgxmock.AnyArg(), "camp-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.SaveProspects(context.Background(), "camp-1", []model.Company{{
		Name:         "Acme Robotics",
		ContactName:  "Jo Lee",
		ContactEmail: "jo@acmerobotics.com",
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecordSend(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO sends`).
		WithArgs(pgxmock.AnyArg(), "camp-1", "jo@acmerobotics.com", "Acme Robotics",
			"Quick intro", "sent", "", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.RecordSend(context.Background(), model.Send{
		CampaignID: "camp-1",
		ToEmail:    "jo@acmerobotics.com",
		Company:    "Acme Robotics",
		Subject:    "Quick intro",
		Status:     model.SendStatusSent,
		SentAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListCampaigns(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "icp", "source", "status", "created_at", "updated_at"}).
		AddRow("c1", "ai companies", "llm", model.CampaignStatusComplete, now, now)

	mock.ExpectQuery(`SELECT id, icp, source, status, created_at, updated_at FROM campaigns WHERE status = \$1`).
		WithArgs("complete").
		WillReturnRows(rows)

	got, err := s.ListCampaigns(context.Background(), CampaignFilter{Status: model.CampaignStatusComplete})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
