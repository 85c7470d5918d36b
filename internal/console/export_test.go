package console

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viciolinks/internal/core/domain"
)

func TestWriteCSV(t *testing.T) {
	notes := `say "hi", ok`
	links := []domain.Link{
		{ID: "lnk_000001", UTMCampaign: "camp", UTMSource: "email", UTMMedium: "newsletter", FullURL: "https://a?x=1"},
		{ID: "lnk_000002", UTMCampaign: "camp", UTMSource: "site", UTMMedium: "site_institucional",
			UTMContent: "banner", UTMTerm: "promo", FullURL: "https://b", Notes: &notes},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, links))
	assert.Equal(t,
		"ID,Campaign,Source,Medium,Content,Term,URL Final,Notas\n"+
			`"lnk_000001","camp","email","newsletter","-","-","https://a?x=1","-"`+"\n"+
			`"lnk_000002","camp","site","site_institucional","banner","promo","https://b","say ""hi"", ok"`+"\n",
		buf.String())
}

func TestExportRefusesEmptySet(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 2, 12, 9, 0, 0, 0, time.Local)

	_, err := Export(dir, nil, now)
	assert.ErrorIs(t, err, ErrNothingToExport)
	_, statErr := os.Stat(filepath.Join(dir, ExportFilename(now)))
	assert.True(t, os.IsNotExist(statErr))

	assert.ErrorIs(t, WriteCSV(&bytes.Buffer{}, nil), ErrNothingToExport)
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 2, 12, 9, 0, 0, 0, time.Local)

	path, err := Export(dir, []domain.Link{{ID: "lnk_000001"}}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "viciolinks_export_2026-02-12.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"lnk_000001"`)
}
