package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes where ingested text came from.
type Metadata struct {
	Path      string `json:"path,omitempty"`
	URL       string `json:"url,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Format    string `json:"format"`
	Chars     int    `json:"chars"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

func newMetadata(text, format string) *Metadata {
	return &Metadata{
		Format:    format,
		Chars:     len([]rune(text)),
		Hash:      computeHash(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash returns the SHA-256 hex digest of content.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
