package entity

import (
	"strings"
	"time"
)

// PublicData is one catalog record from the public-data portal.
// Records are read-only for this service; the catalog is populated
// externally (see cmd/seed).
type PublicData struct {
	FileDataName         string // unique key across the catalog
	Title                string
	ClassificationSystem string
	ProviderAgency       string
	FileExtension        string
	Keywords             string // comma-joined keyword list as delivered by the portal
	ModifiedDate         *time.Time
	Description          string
	PublicDataPk         int64 // portal primary key, used to build data.go.kr links
}

// KeywordList splits the comma-joined keyword field into trimmed tokens.
func (d *PublicData) KeywordList() []string {
	if strings.TrimSpace(d.Keywords) == "" {
		return nil
	}
	parts := strings.Split(d.Keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
