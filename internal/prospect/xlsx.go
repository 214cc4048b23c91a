package prospect

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/omnilinks/outreach-cli/internal/model"
)

// WriteXLSX writes companies to an XLSX workbook with a single Prospects
// sheet in the full eight-column layout.
func WriteXLSX(path string, companies []model.Company) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Prospects")
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, col := range prospectHeader {
		headerRow.AddCell().SetString(col)
	}

	for _, c := range companies {
		row := sheet.AddRow()
		for _, value := range []string{
			c.ContactName, c.ContactTitle, c.Name, c.Website,
			c.ContactEmail, c.Country, c.Industry, c.Description,
		} {
			row.AddCell().SetString(value)
		}
	}

	return eris.Wrapf(f.Save(path), "xlsx: save %s", path)
}
