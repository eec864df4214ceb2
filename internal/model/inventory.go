package model

import (
	"time"

	"github.com/google/uuid"
)

type InventoryType string

const (
	InventoryTypeASIS InventoryType = "ASIS"
	InventoryTypeFG   InventoryType = "FG"
	InventoryTypeSTA  InventoryType = "STA"
)

// Valid reports whether t is an inventory type the DMS exposes.
func (t InventoryType) Valid() bool {
	switch t {
	case InventoryTypeASIS, InventoryTypeFG, InventoryTypeSTA:
		return true
	}
	return false
}

type LoadStatus string

const (
	LoadStatusForSale LoadStatus = "FOR SALE"
	LoadStatusPicked  LoadStatus = "PICKED"
)

// InventoryRow is one physical unit on the warehouse floor.
type InventoryRow struct {
	ID            uuid.UUID
	LocationID    string
	InventoryType InventoryType
	Model         string
	Serial        string
	LoadNumber    string
	Qty           int
	Status        string
	// SourceTimestamp and BatchIndex order duplicates of one serial: the
	// latest timestamp wins, then the highest batch index.
	SourceTimestamp time.Time
	BatchIndex      int
	Orphaned        bool
	OrphanedAt      *time.Time
}

type LoadConflict struct {
	Serial          string
	LoadNumber      string
	ConflictingLoad string
}

type ASISLoad struct {
	LoadNumber string
	Status     LoadStatus
	Units      int
	CSO        string
	UpdatedAt  *time.Time
}

// InventoryChange is one field change observed on an updated item.
type InventoryChange struct {
	ItemID   uuid.UUID
	Serial   string
	Field    string
	OldValue string
	NewValue string
}

// Reconciliation is the write-set produced for one inventory pass.
type Reconciliation struct {
	New       []InventoryRow
	Updated   []InventoryRow
	Orphaned  []InventoryRow
	Conflicts []LoadConflict
	Changes   []InventoryChange
}
