package converter

import (
	"bytes"
	"embed"
	"text/template"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
)

const tailLines = 5

var (
	//go:embed templates/sync_report.tmpl
	syncReportFS       embed.FS
	syncReportTemplate = template.Must(template.ParseFS(syncReportFS, "templates/sync_report.tmpl"))
)

type syncReport struct {
	RunID         string
	Flow          model.SyncFlow
	InventoryType model.InventoryType
	Success       bool
	Duration      time.Duration
	Stats         model.SyncStats
	Error         string
	Tail          []string
}

// BuildSyncReport renders the chat message for a failed run or a run that
// found load conflicts or failed receipts.
func BuildSyncReport(req model.SyncRequest, res model.SyncResult) (string, error) {
	tail := res.Log
	if len(tail) > tailLines {
		tail = tail[len(tail)-tailLines:]
	}

	n := syncReport{
		RunID:         res.RunID.String(),
		Flow:          res.Flow,
		InventoryType: req.InventoryType,
		Success:       res.Success,
		Duration:      res.Duration.Round(time.Millisecond),
		Stats:         res.Stats,
		Error:         res.Error,
		Tail:          tail,
	}

	var buf bytes.Buffer
	if err := syncReportTemplate.Execute(&buf, n); err != nil {
		return "", err
	}

	return buf.String(), nil
}
