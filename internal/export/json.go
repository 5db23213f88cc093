package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/saltlab/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID         int64   `json:"id"`
	Day        string  `json:"day"`
	OccurredAt string  `json:"occurred_at"`
	Kind       string  `json:"kind"`
	Amount     float64 `json:"amount_grams"`
	Label      string  `json:"label,omitempty"`
}

func ToJSON(entries []store.LogEntry, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
	}

	for _, e := range entries {
		local := e.OccurredAt.Local()
		out.Entries = append(out.Entries, jsonEntry{
			ID:         e.ID,
			Day:        local.Format("2006-01-02"),
			OccurredAt: local.Format(time.RFC3339),
			Kind:       e.Kind,
			Amount:     e.Amount,
			Label:      e.Label,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
