package prospect

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/omnilinks/outreach-cli/internal/fetcher"
	"github.com/omnilinks/outreach-cli/internal/model"
)

// prospectHeader is the full export layout. The name and title columns
// hold the contact person; company holds the company name.
var prospectHeader = []string{"name", "title", "company", "website", "email", "country", "industry", "description"}

// legacyHeader is the older six-column layout still accepted on import.
var legacyHeader = []string{"name", "title", "company", "website", "email", "country"}

// WriteCSV writes companies in the full eight-column prospect layout.
func WriteCSV(w io.Writer, companies []model.Company) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(prospectHeader); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, c := range companies {
		row := []string{
			c.ContactName, c.ContactTitle, c.Name, c.Website,
			c.ContactEmail, c.Country, c.Industry, c.Description,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "csv: write row for %s", c.Name)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}

// WriteLegacyCSV writes the six-column layout used by older tooling.
func WriteLegacyCSV(w io.Writer, companies []model.Company) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(legacyHeader); err != nil {
		return eris.Wrap(err, "csv: write header")
	}
	for _, c := range companies {
		row := []string{c.ContactName, c.ContactTitle, c.Name, c.Website, c.ContactEmail, c.Country}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "csv: write row for %s", c.Name)
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}

// LoadCSV reads prospect records from either CSV layout, mapping columns
// by header name so column order does not matter.
func LoadCSV(ctx context.Context, r io.Reader) ([]model.Company, error) {
	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, r, fetcher.CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var header []string
	var companies []model.Company
	for row := range rowCh {
		if header == nil {
			select {
			case header = <-headerCh:
			default:
				return nil, eris.New("csv: missing header row")
			}
		}
		companies = append(companies, rowToCompany(header, row))
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	// Header arrives even when the file has no data rows.
	if header == nil {
		select {
		case <-headerCh:
		default:
			return nil, eris.New("csv: missing header row")
		}
	}
	return companies, nil
}

func rowToCompany(header, row []string) model.Company {
	var c model.Company
	for i, col := range header {
		if i >= len(row) {
			break
		}
		value := row[i]
		switch strings.ToLower(col) {
		case "name":
			c.ContactName = value
		case "title":
			c.ContactTitle = value
		case "company":
			c.Name = value
		case "website":
			c.Website = value
		case "email":
			c.ContactEmail = value
		case "country":
			c.Country = value
		case "industry":
			c.Industry = value
		case "description":
			c.Description = value
		}
	}
	return c
}
