package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnilinks/outreach-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLiteCampaignLifecycle(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	c, err := st.CreateCampaign(ctx, "ai companies in the US", "llm")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, model.CampaignStatusPending, c.Status)

	require.NoError(t, st.UpdateCampaignStatus(ctx, c.ID, model.CampaignStatusRunning))

	got, err := st.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignStatusRunning, got.Status)
	assert.Equal(t, "ai companies in the US", got.ICP)
	assert.Equal(t, "llm", got.Source)
}

func TestSQLiteGetCampaignNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetCampaign(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteUpdateStatusNotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateCampaignStatus(context.Background(), "missing", model.CampaignStatusComplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteListCampaignsFilter(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a, err := st.CreateCampaign(ctx, "icp a", "llm")
	require.NoError(t, err)
	_, err = st.CreateCampaign(ctx, "icp b", "synthetic")
	require.NoError(t, err)
	require.NoError(t, st.UpdateCampaignStatus(ctx, a.ID, model.CampaignStatusComplete))

	all, err := st.ListCampaigns(ctx, CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	complete, err := st.ListCampaigns(ctx, CampaignFilter{Status: model.CampaignStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, a.ID, complete[0].ID)

	limited, err := st.ListCampaigns(ctx, CampaignFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteProspectsRoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	c, err := st.CreateCampaign(ctx, "gaming in japan", "llm")
	require.NoError(t, err)

	companies := []model.Company{
		{
			Name:         "CyberConnect",
			Website:      "https://cyberconnect.co.jp",
			Country:      "JP",
			Industry:     "Gaming",
			ContactName:  "Yuki Tanaka",
			ContactTitle: "CEO",
			ContactEmail: "yuki@cyberconnect.co.jp",
		},
		{
			Name:         "GameForge Studios",
			ContactName:  "Hiroshi Sato",
			ContactEmail: "hiroshi@gameforge.jp",
		},
	}
	require.NoError(t, st.SaveProspects(ctx, c.ID, companies))

	got, err := st.ListProspects(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, companies, got)
}

func TestSQLiteRecordAndListSends(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	c, err := st.CreateCampaign(ctx, "icp", "llm")
	require.NoError(t, err)

	sentAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.RecordSend(ctx, model.Send{
		CampaignID: c.ID,
		ToEmail:    "yuki@cyberconnect.co.jp",
		Company:    "CyberConnect",
		Subject:    "Quick intro: Omnilinks × CyberConnect",
		Status:     model.SendStatusSent,
		SentAt:     sentAt,
	}))
	require.NoError(t, st.RecordSend(ctx, model.Send{
		CampaignID: c.ID,
		ToEmail:    "bad@example.com",
		Company:    "Bad Co",
		Subject:    "Quick intro: Omnilinks × Bad Co",
		Status:     model.SendStatusFailed,
		Error:      "mailgun: unexpected status 400",
		SentAt:     sentAt.Add(time.Second),
	}))

	sends, err := st.ListSends(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, sends, 2)
	assert.Equal(t, model.SendStatusSent, sends[0].Status)
	assert.Empty(t, sends[0].Error)
	assert.Equal(t, model.SendStatusFailed, sends[1].Status)
	assert.Contains(t, sends[1].Error, "400")
	assert.NotEmpty(t, sends[0].ID, "missing send IDs are generated")
}

func TestSQLiteListProspectsEmpty(t *testing.T) {
	st := newTestSQLiteStore(t)

	got, err := st.ListProspects(context.Background(), "no-such-campaign")
	require.NoError(t, err)
	assert.Empty(t, got)
}
