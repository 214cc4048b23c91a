package prospect

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnilinks/outreach-cli/internal/model"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []model.Company{acmeCompany})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,title,company,website,email,country,industry,description", lines[0])
	assert.Equal(t, "Jo Lee,CEO,Acme Robotics,https://acmerobotics.com,jo@acmerobotics.com,US,Robotics,Industrial robotics manufacturer", lines[1])
}

func TestWriteLegacyCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLegacyCSV(&buf, []model.Company{acmeCompany})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,title,company,website,email,country", lines[0])
	assert.Equal(t, "Jo Lee,CEO,Acme Robotics,https://acmerobotics.com,jo@acmerobotics.com,US", lines[1])
}

func TestLoadCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []model.Company{acmeCompany}))

	got, err := LoadCSV(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, acmeCompany, got[0])
}

func TestLoadCSVLegacyLayout(t *testing.T) {
	in := "name,title,company,website,email,country\n" +
		"Jo Lee,CEO,Acme Robotics,https://acmerobotics.com,jo@acmerobotics.com,US\n"

	got, err := LoadCSV(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Robotics", got[0].Name)
	assert.Equal(t, "Jo Lee", got[0].ContactName)
	assert.Equal(t, "jo@acmerobotics.com", got[0].ContactEmail)
	assert.Empty(t, got[0].Industry)
	assert.Empty(t, got[0].Description)
}

func TestLoadCSVReorderedColumns(t *testing.T) {
	in := "email,company,name\n" +
		"jo@acmerobotics.com,Acme Robotics,Jo Lee\n"

	got, err := LoadCSV(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Robotics", got[0].Name)
	assert.Equal(t, "Jo Lee", got[0].ContactName)
	assert.Equal(t, "jo@acmerobotics.com", got[0].ContactEmail)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	got, err := LoadCSV(context.Background(), strings.NewReader("name,title,company,website,email,country\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospects.xlsx")
	err := WriteXLSX(path, []model.Company{acmeCompany})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
