package receipt

import (
	"fmt"
	"sync"
)

// MemoryDB implements the DB interface with a mutex-guarded map
type MemoryDB struct {
	mu       sync.RWMutex
	receipts map[string]*Receipt
}

// NewMemoryDB creates an empty MemoryDB
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		receipts: make(map[string]*Receipt),
	}
}

// SaveReceipt stores a copy of the receipt
func (m *MemoryDB) SaveReceipt(id string, receipt *Receipt) error {
	stored := receipt.Clone()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.receipts[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	m.receipts[id] = stored
	return nil
}

// GetReceipt returns a copy of the stored receipt
func (m *MemoryDB) GetReceipt(id string) (*Receipt, error) {
	m.mu.RLock()
	stored, ok := m.receipts[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return stored.Clone(), nil
}

// Close is a no-op
func (m *MemoryDB) Close() error {
	return nil
}
