package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyValid(t *testing.T) {
	tests := []struct {
		name    string
		company Company
		want    bool
	}{
		{
			name:    "complete",
			company: Company{Name: "Acme", ContactName: "Jo Lee", ContactEmail: "jo@acme.com"},
			want:    true,
		},
		{
			name:    "missing_contact_email",
			company: Company{Name: "Acme", ContactName: "Jo Lee"},
			want:    false,
		},
		{
			name:    "missing_contact_name",
			company: Company{Name: "Acme", ContactEmail: "jo@acme.com"},
			want:    false,
		},
		{
			name:    "missing_name",
			company: Company{ContactName: "Jo Lee", ContactEmail: "jo@acme.com"},
			want:    false,
		},
		{
			name:    "whitespace_only_name",
			company: Company{Name: "   ", ContactName: "Jo Lee", ContactEmail: "jo@acme.com"},
			want:    false,
		},
		{
			name:    "optional_fields_absent",
			company: Company{Name: "Acme", ContactName: "Jo", ContactEmail: "jo@acme.com", Website: "", Country: ""},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.company.Valid())
		})
	}
}

func TestCompanyTrimmed(t *testing.T) {
	c := Company{
		Name:         "  Acme  ",
		Website:      " https://acme.com ",
		Country:      " US",
		Industry:     "Technology ",
		ContactName:  "\tJo Lee\n",
		ContactTitle: " CEO ",
		ContactEmail: " jo@acme.com ",
		Description:  "  widgets  ",
	}

	got := c.Trimmed()
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "https://acme.com", got.Website)
	assert.Equal(t, "US", got.Country)
	assert.Equal(t, "Technology", got.Industry)
	assert.Equal(t, "Jo Lee", got.ContactName)
	assert.Equal(t, "CEO", got.ContactTitle)
	assert.Equal(t, "jo@acme.com", got.ContactEmail)
	assert.Equal(t, "widgets", got.Description)

	// Original is untouched.
	assert.Equal(t, "  Acme  ", c.Name)
}
