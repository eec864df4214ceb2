package model

import (
	"time"

	"github.com/google/uuid"
)

type SyncFlow string

const (
	FlowOrders    SyncFlow = "orders"
	FlowInbound   SyncFlow = "inbound"
	FlowInventory SyncFlow = "inventory"
)

// SyncStats has the same shape for every flow. Counters that do not apply
// to a flow stay zero.
type SyncStats struct {
	TotalGEItems    int
	ItemsInLoads    int
	UnassignedItems int
	NewItems        int
	UpdatedItems    int
	ForSaleLoads    int
	PickedLoads     int
	ChangesLogged   int

	ReceiptsProcessed int
	ReceiptsFailed    int
	CrossTypeSkipped  int
	Conflicts         int
	OrphanedItems     int
}

type SyncResult struct {
	RunID    uuid.UUID
	Flow     SyncFlow
	Success  bool
	Stats    SyncStats
	Duration time.Duration
	Log      []string
	Error    string
}

// SyncRequest is a trigger for one sync invocation.
type SyncRequest struct {
	Flow          SyncFlow
	InventoryType InventoryType
}

// SyncOptions is built once per invocation and passed down explicitly.
type SyncOptions struct {
	LocationID        string
	CompanyID         string
	WindowDays        int
	MaxDaysPerRequest int
	MaxCSOsPerChunk   int
	BatchSize         int
	BrowserFallback   bool
	BrowserTimeout    time.Duration
	// Until is the inclusive end of the sync window.
	Until time.Time
}

// Artifact is a raw upstream body kept for offline inspection.
type Artifact struct {
	RunID       uuid.UUID
	Flow        SyncFlow
	Kind        string
	Key         string
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}
