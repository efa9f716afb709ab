package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Transcode wraps r so downstream readers see UTF-8. Japanese retail exports
// are frequently Shift-JIS; older tooling produces Windows-1251.
func Transcode(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	switch cs {
	case "shift_jis", "shift-jis", "sjis":
		return transform.NewReader(br, japanese.ShiftJIS.NewDecoder())
	case "windows-1251", "cp1251":
		return transform.NewReader(br, charmap.Windows1251.NewDecoder())
	default:
		// assume UTF-8
		return br
	}
}

// readDelimited reads delimiter-separated text into positional rows, ragged
// rows allowed.
func readDelimited(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(Transcode(r))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
