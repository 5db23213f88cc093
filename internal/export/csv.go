package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/saltlab/internal/store"
)

func ToCSV(entries []store.LogEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Day", "Time", "Kind", "Amount (g)", "Label"}); err != nil {
		return err
	}

	for _, e := range entries {
		local := e.OccurredAt.Local()
		row := []string{
			fmt.Sprintf("%d", e.ID),
			local.Format("2006-01-02"),
			local.Format(time.RFC3339),
			e.Kind,
			fmt.Sprintf("%.1f", e.Amount),
			e.Label,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
