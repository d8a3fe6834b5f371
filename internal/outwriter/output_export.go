package outwriter

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/huangsam/gitbars/schema"
)

// WriteActivityJSON writes the grouped counts and commit records as an
// indented JSON document.
func WriteActivityJSON(w io.Writer, grouped map[string]int, records []schema.CommitRecord) error {
	return writeJSON(w, schema.NewActivityExport(grouped, records))
}

// WriteActivityCSV writes one row per commit with quoting handled by
// encoding/csv. Timestamps keep their original zone offset.
func WriteActivityCSV(w io.Writer, records []schema.CommitRecord) error {
	header := []string{"Date", "Hash", "Author", "Message"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, record := range records {
			row := []string{
				record.Date.Format(time.RFC3339),
				record.Hash,
				record.Author,
				record.Message,
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
