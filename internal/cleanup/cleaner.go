package cleanup

import (
	"context"
	"sync"
)

type Cleaner interface {
	Clean(ctx context.Context)
}

// Manager runs the registered cleaners side by side.
// A round finishes when the slowest cleaner does, so rounds never overlap
type Manager struct {
	mutex    sync.Mutex
	cleaners []Cleaner
	running  sync.Mutex
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddCleaner(c Cleaner) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cleaners = append(m.cleaners, c)
}

// Clean blocks until every cleaner is done with the round.
// A round that is still running makes a new one a no-op
func (m *Manager) Clean(ctx context.Context) {
	if !m.running.TryLock() {
		return
	}
	defer m.running.Unlock()

	m.mutex.Lock()
	cleaners := append([]Cleaner(nil), m.cleaners...)
	m.mutex.Unlock()

	var wg sync.WaitGroup
	for _, c := range cleaners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Clean(ctx)
		}()
	}
	wg.Wait()
}
