package converter

import (
	"strings"
	"time"

	"github.com/you-humble/ge-sync/internal/model"
)

type SyncRequestDTO struct {
	Flow          string `json:"flow"`
	InventoryType string `json:"inventoryType,omitempty"`
}

type SyncStatsDTO struct {
	TotalGEItems      int `json:"totalGEItems"`
	ItemsInLoads      int `json:"itemsInLoads"`
	UnassignedItems   int `json:"unassignedItems"`
	NewItems          int `json:"newItems"`
	UpdatedItems      int `json:"updatedItems"`
	ForSaleLoads      int `json:"forSaleLoads"`
	PickedLoads       int `json:"pickedLoads"`
	ChangesLogged     int `json:"changesLogged"`
	ReceiptsProcessed int `json:"receiptsProcessed"`
	ReceiptsFailed    int `json:"receiptsFailed"`
	CrossTypeSkipped  int `json:"crossTypeSkipped"`
	Conflicts         int `json:"conflicts"`
	OrphanedItems     int `json:"orphanedItems"`
}

type SyncResultDTO struct {
	RunID         string       `json:"runId"`
	Flow          string       `json:"flow"`
	InventoryType string       `json:"inventoryType,omitempty"`
	Success       bool         `json:"success"`
	Stats         SyncStatsDTO `json:"stats"`
	DurationMs    int64        `json:"durationMs"`
	Log           []string     `json:"log"`
	Error         string       `json:"error,omitempty"`
}

// SyncRequestToModel normalises flow and inventory type case. Only the
// inventory flow keeps an inventory type.
func SyncRequestToModel(dto SyncRequestDTO) model.SyncRequest {
	req := model.SyncRequest{Flow: model.SyncFlow(strings.ToLower(strings.TrimSpace(dto.Flow)))}
	if req.Flow == model.FlowInventory {
		req.InventoryType = model.InventoryType(strings.ToUpper(strings.TrimSpace(dto.InventoryType)))
	}
	return req
}

func SyncResultToDTO(req model.SyncRequest, res model.SyncResult) SyncResultDTO {
	log := res.Log
	if log == nil {
		log = []string{}
	}

	return SyncResultDTO{
		RunID:         res.RunID.String(),
		Flow:          string(res.Flow),
		InventoryType: string(req.InventoryType),
		Success:       res.Success,
		Stats:         statsToDTO(res.Stats),
		DurationMs:    res.Duration.Milliseconds(),
		Log:           log,
		Error:         res.Error,
	}
}

func statsToDTO(s model.SyncStats) SyncStatsDTO {
	return SyncStatsDTO{
		TotalGEItems:      s.TotalGEItems,
		ItemsInLoads:      s.ItemsInLoads,
		UnassignedItems:   s.UnassignedItems,
		NewItems:          s.NewItems,
		UpdatedItems:      s.UpdatedItems,
		ForSaleLoads:      s.ForSaleLoads,
		PickedLoads:       s.PickedLoads,
		ChangesLogged:     s.ChangesLogged,
		ReceiptsProcessed: s.ReceiptsProcessed,
		ReceiptsFailed:    s.ReceiptsFailed,
		CrossTypeSkipped:  s.CrossTypeSkipped,
		Conflicts:         s.Conflicts,
		OrphanedItems:     s.OrphanedItems,
	}
}

// SyncCompletedEvent is the record published once per finished run.
type SyncCompletedEvent struct {
	EventID    string        `json:"eventId"`
	FinishedAt time.Time     `json:"finishedAt"`
	Result     SyncResultDTO `json:"result"`
}
