package ingest

import (
	"strings"

	"github.com/shopspring/decimal"

	"figure-catalog/internal/catalog/model"
)

// Positional schema of a source row. Spreadsheet exports are dirty: columns
// may be missing from the right, labels may be garbage. Everything except a
// malformed date degrades to absent.
const (
	colOriginalName = iota
	colBaseName
	colBasePrice
	colReserved // unused in current exports
	colAnnouncementDate
	colPreorderDate
	colReleaseDate
	colURL
	colDistribution
	colLineUp
	colSeries
	colGroup
	colMetalBody
	colOCE
	colRevival
	colPlainCloth
	colBrokenCloth
	colBronzeToGold
	colGold
	colHongKong
	colManga
	colSurplice
	colSet
	colRemarks
)

// ParseRow converts one tab-separated line into a draft record. A blank line
// yields (nil, nil): not an error, the caller skips it. The only error ever
// returned is *DateParseError.
func ParseRow(line string) (*model.DraftRecord, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	return ParseFields(strings.Split(line, "\t"))
}

// ParseFields is ParseRow for callers that already have positional cells
// (spreadsheet readers). All-blank rows yield (nil, nil).
func ParseFields(fields []string) (*model.DraftRecord, error) {
	blank := true
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, nil
	}

	d := &model.DraftRecord{
		OriginalName: strings.TrimSpace(cell(fields, colOriginalName)),
		BaseName:     strings.TrimSpace(cell(fields, colBaseName)),
		BasePrice:    ParsePrice(cell(fields, colBasePrice)),
		URL:          strings.TrimSpace(cell(fields, colURL)),
		Remarks:      strings.TrimSpace(cell(fields, colRemarks)),
	}

	if v, ok := model.ParseDistribution(cell(fields, colDistribution)); ok {
		d.Distribution = v
	}
	if v, ok := model.ParseLineUp(cell(fields, colLineUp)); ok {
		d.LineUp = v
	}
	if v, ok := model.ParseSeries(cell(fields, colSeries)); ok {
		d.Series = v
	}
	if v, ok := model.ParseGroup(cell(fields, colGroup)); ok {
		d.Group = v
	}

	var err error
	if d.FirstAnnouncementDate, _, err = ResolveDate(cell(fields, colAnnouncementDate)); err != nil {
		return nil, err
	}
	if d.PreorderDate, _, err = ResolveDate(cell(fields, colPreorderDate)); err != nil {
		return nil, err
	}
	if d.ReleaseDate, d.ConfirmedDate, err = ResolveDate(cell(fields, colReleaseDate)); err != nil {
		return nil, err
	}

	d.Flags = model.Flags{
		MetalBody:       parseFlag(cell(fields, colMetalBody)),
		OCE:             parseFlag(cell(fields, colOCE)),
		Revival:         parseFlag(cell(fields, colRevival)),
		PlainCloth:      parseFlag(cell(fields, colPlainCloth)),
		BrokenCloth:     parseFlag(cell(fields, colBrokenCloth)),
		BronzeToGold:    parseFlag(cell(fields, colBronzeToGold)),
		Gold:            parseFlag(cell(fields, colGold)),
		HongKongVersion: parseFlag(cell(fields, colHongKong)),
		Manga:           parseFlag(cell(fields, colManga)),
		Surplice:        parseFlag(cell(fields, colSurplice)),
		Set:             parseFlag(cell(fields, colSet)),
	}

	return d, nil
}

// ParsePrice reads a price cell: optional leading $ or ¥ glyph, comma
// thousands separators, exact decimal value. Empty or garbage → absent, never
// an error.
func ParsePrice(cellValue string) *decimal.Decimal {
	s := strings.TrimSpace(cellValue)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "¥")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseFlag: literal case-sensitive TRUE is true, anything else false.
func parseFlag(cellValue string) bool {
	return strings.TrimSpace(cellValue) == "TRUE"
}

func cell(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
