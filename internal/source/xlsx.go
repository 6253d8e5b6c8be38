package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/docoutline/internal/doc"
)

// XLSXProvider handles workbooks. Each sheet is one page: the sheet name
// becomes a large bold span and its rows become body spans, so sheet
// names surface as the workbook's headings.
type XLSXProvider struct{}

func (p *XLSXProvider) Spans(r io.Reader, filename string) ([]doc.TextSpan, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	var spans []doc.TextSpan
	for page, sheet := range f.GetSheetList() {
		spans = append(spans, doc.TextSpan{
			Text:     sheet,
			Size:     sizeH2,
			Bold:     true,
			Page:     page,
			Position: 0,
		})

		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		pos := spanStep
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " | "))
			if line == "" {
				continue
			}
			spans = append(spans, doc.TextSpan{
				Text:     line,
				Size:     sizeBody,
				Page:     page,
				Position: pos,
			})
			pos += spanStep
		}
	}
	return spans, nil
}
