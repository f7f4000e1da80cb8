// Package configbase provides the in-memory configuration database that
// column schemas resolve their reference lists against.
package configbase

import (
	"sync"

	"scadaadmin/internal/core/entity"
)

// Table names as stored in the configuration database.
const (
	ObjTableName      = "obj"
	CommLineTableName = "comm_line"
	KPTypeTableName   = "kp_type"
	KPTableName       = "kp"
)

// Base is the configuration database.
//
// Each table is safe for concurrent use on its own. ReplaceAll and Snapshot
// additionally hold the base lock, so a snapshot never mixes rows from
// before and after a reload.
type Base struct {
	mu sync.RWMutex

	ObjTable      *Table[entity.Obj]
	CommLineTable *Table[entity.CommLine]
	KPTypeTable   *Table[entity.KPType]
	KPTable       *Table[entity.KP]
}

// Snapshot is a detached copy of every table taken at one moment.
type Snapshot struct {
	Objs      []entity.Obj
	CommLines []entity.CommLine
	KPTypes   []entity.KPType
	KPs       []entity.KP
}

// New creates an empty configuration database.
func New() *Base {
	return &Base{
		ObjTable:      NewTable[entity.Obj](ObjTableName),
		CommLineTable: NewTable[entity.CommLine](CommLineTableName),
		KPTypeTable:   NewTable[entity.KPType](KPTypeTableName),
		KPTable:       NewTable[entity.KP](KPTableName),
	}
}

// Snapshot returns the current rows of all tables.
func (b *Base) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{
		Objs:      b.ObjTable.Items(),
		CommLines: b.CommLineTable.Items(),
		KPTypes:   b.KPTypeTable.Items(),
		KPs:       b.KPTable.Items(),
	}
}

// ReplaceAll swaps the rows of every table at once.
func (b *Base) ReplaceAll(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ObjTable.Replace(s.Objs)
	b.CommLineTable.Replace(s.CommLines)
	b.KPTypeTable.Replace(s.KPTypes)
	b.KPTable.Replace(s.KPs)
}

// Stats returns row counts per table, for logs and health output.
func (b *Base) Stats() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return map[string]int{
		ObjTableName:      b.ObjTable.Len(),
		CommLineTableName: b.CommLineTable.Len(),
		KPTypeTableName:   b.KPTypeTable.Len(),
		KPTableName:       b.KPTable.Len(),
	}
}
