package prospect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackIndustrySelection(t *testing.T) {
	tests := []struct {
		name         string
		icp          string
		wantIndustry string
		wantFirst    string
	}{
		{"ai", "artificial intelligence startups in the US", "Artificial Intelligence", "OpenAI"},
		{"machine_learning", "machine learning platforms", "Artificial Intelligence", "OpenAI"},
		{"gaming", "gaming companies in america", "Gaming", "Epic Games"},
		{"vr", "virtual reality hardware makers", "VR/AR Technology", "Meta Reality Labs"},
		{"tech", "technology companies in the us", "Technology", "Microsoft"},
		{"no_match", "boutique flower shops", "Technology", "Microsoft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.icp, 10)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.wantFirst, got[0].Name)
			assert.Equal(t, tt.wantIndustry, got[0].Industry)
		})
	}
}

func TestFallbackKeywordPriority(t *testing.T) {
	// "ai" outranks "gaming" outranks "vr" outranks "tech" when an ICP
	// mentions several of them.
	got := Fallback("AI gaming technology companies", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "OpenAI", got[0].Name)

	got = Fallback("gaming and vr tech studios", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Epic Games", got[0].Name)
}

func TestFallbackCountrySelection(t *testing.T) {
	got := Fallback("technology conglomerates in japan", 10)
	require.Len(t, got, 3)
	assert.Equal(t, "Sony", got[0].Name)
	for _, c := range got {
		assert.Equal(t, "JP", c.Country)
	}
}

func TestFallbackRecycling(t *testing.T) {
	// No JP gaming catalog exists, so JP tech is served instead.
	got := Fallback("gaming companies in japan", 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Sony", got[0].Name)

	// No CA tech catalog exists, so the US AI list is served.
	got = Fallback("technology firms in canada", 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "OpenAI", got[0].Name)
}

func TestFallbackTruncatesNeverPads(t *testing.T) {
	got := Fallback("ai companies in the US", 2)
	assert.Len(t, got, 2)

	// Requesting more than the catalog holds returns what exists.
	got = Fallback("ai companies in the US", 50)
	assert.Len(t, got, 5)
}

func TestFallbackRecordsValid(t *testing.T) {
	for _, icp := range []string{
		"ai startups", "gaming studios", "vr companies",
		"tech companies", "technology in japan", "anything at all",
	} {
		for _, c := range Fallback(icp, 50) {
			assert.True(t, c.Valid(), "fallback record %q must be valid", c.Name)
			assert.NotEmpty(t, c.Website)
			assert.NotEmpty(t, c.Description)
		}
	}
}
