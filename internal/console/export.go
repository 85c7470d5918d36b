package console

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/utm"
)

const csvHeader = "ID,Campaign,Source,Medium,Content,Term,URL Final,Notas"

// ExportFilename returns viciolinks_export_<YYYY-MM-DD>.csv for the day of now.
func ExportFilename(now time.Time) string {
	return "viciolinks_export_" + now.Format(time.DateOnly) + ".csv"
}

// WriteCSV writes links as CSV with every data field double-quoted.
// Missing content, term and notes are written as "-".
func WriteCSV(w io.Writer, links []domain.Link) error {
	if len(links) == 0 {
		return ErrNothingToExport
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(csvHeader + "\n")
	for _, l := range links {
		notes := ""
		if l.Notes != nil {
			notes = *l.Notes
		}
		fields := []string{l.ID, l.UTMCampaign, l.UTMSource, l.UTMMedium,
			orMissing(l.UTMContent), orMissing(l.UTMTerm), l.FullURL, orMissing(notes)}
		for i, f := range fields {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(quote(f))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Export writes links to ExportFilename(now) inside dir and returns the
// file path. No file is created for zero links.
func Export(dir string, links []domain.Link, now time.Time) (string, error) {
	if len(links) == 0 {
		return "", ErrNothingToExport
	}
	path := filepath.Join(dir, ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err = WriteCSV(f, links); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func orMissing(s string) string {
	if s == "" {
		return utm.Missing
	}
	return s
}
