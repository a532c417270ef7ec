// Package results is for durable storage of evaluation results.
package results

import (
	"sync"

	"github.com/huangsam/pareval/internal/contract"
)

// ResultStoreManager manages the ResultStore instance.
type ResultStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	results      contract.ResultStore
}

var _ contract.StoreManager = &ResultStoreManager{} // Compile-time check

// GetResultStore returns the ResultStore.
func (mgr *ResultStoreManager) GetResultStore() contract.ResultStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}
