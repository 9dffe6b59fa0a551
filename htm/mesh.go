package htm

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/arcturuslab/skycore/vector"
)

// Locatable is anything a Mesh can file into a region: a fundamental-frame
// position to classify it by, and a magnitude to pick its mesh level from.
// catalog.Object satisfies this once that package exists; Mesh itself has
// no dependency on any concrete catalog type.
type Locatable interface {
	Position() vector.Vector
	Mag() float64
}

// RegionLoader fetches the objects belonging to a region ID from whatever
// backing store a Mesh's caller uses (CSV files, a database, an embedded
// blob). htmstore provides the CSV-backed implementation spec §6 wants;
// Mesh itself is storage-agnostic, mirroring the separation the original
// C++ drew between SSHTM's in-memory tree and its CSV import/export
// helpers.
type RegionLoader func(ctx context.Context, id ID) ([]Locatable, error)

// Mesh is an in-memory Hierarchical Triangular Mesh index: a tree of
// regions, each lazily populated on demand via RegionLoader, synchronously
// or in the background. A Mesh is safe for concurrent use.
type Mesh struct {
	mu        sync.RWMutex
	magLevels []float64
	regions   map[ID][]Locatable
	pending   map[ID]*sync.WaitGroup
	loader    RegionLoader

	// Log receives non-fatal diagnostics, notably region-load failures
	// from LoadRegion/LoadRegions. Defaults to a no-op logger; set it
	// directly to enable reporting.
	Log zerolog.Logger
}

// NewMesh builds a Mesh whose depth is implied by magLevels: level i holds
// objects fainter than magLevels[i-1] and no fainter than magLevels[i] (the
// origin region holds everything brighter than magLevels[0]). loader may
// be nil if the Mesh will only ever be populated via Store/StoreAll.
func NewMesh(magLevels []float64, loader RegionLoader) *Mesh {
	return &Mesh{
		magLevels: append([]float64(nil), magLevels...),
		regions:   make(map[ID][]Locatable),
		pending:   make(map[ID]*sync.WaitGroup),
		loader:    loader,
		Log:       zerolog.Nop(),
	}
}

// MagLevel returns the mesh level that holds objects of magnitude mag, or
// -1 if mag is fainter than every configured level.
func (m *Mesh) MagLevel(mag float64) int {
	for i, limit := range m.magLevels {
		if mag <= limit {
			return i
		}
	}
	return -1
}

// MagLimits returns the brightest (min) and faintest (max) magnitude a
// region may hold, or false if id's level exceeds the mesh's configured
// depth.
func (m *Mesh) MagLimits(id ID) (min, max float64, ok bool) {
	level := 0
	if id != Origin {
		level = id.Level() + 1
	}
	if level < 0 || level >= len(m.magLevels) {
		return 0, 0, false
	}
	if level == 0 {
		min = math.Inf(-1)
	} else {
		min = m.magLevels[level-1]
	}
	return min, m.magLevels[level], true
}

// SubRegionIDs returns the child region IDs of id that are still within
// the mesh's configured depth. Returns nil for a region at the bottom
// level, or the eight root triangle IDs for the origin.
func (m *Mesh) SubRegionIDs(id ID) []ID {
	level := 0
	if id != Origin {
		level = id.Level() + 1
	}
	if level >= len(m.magLevels)-1 {
		return nil
	}
	return id.Children()
}

// Store files obj into the region its position and magnitude place it in,
// creating that region if needed. Returns false if obj's magnitude is
// fainter than every configured level.
func (m *Mesh) Store(obj Locatable) bool {
	level := m.MagLevel(obj.Mag())
	if level < 0 {
		return false
	}

	id := Origin
	if level > 0 {
		id = VectorToID(obj.Position(), level-1)
	}

	m.mu.Lock()
	m.regions[id] = append(m.regions[id], obj)
	m.mu.Unlock()
	return true
}

// StoreAll files every object in objs and returns how many were stored.
func (m *Mesh) StoreAll(objs []Locatable) int {
	n := 0
	for _, obj := range objs {
		if m.Store(obj) {
			n++
		}
	}
	return n
}

// CountRegions returns the number of regions currently holding objects.
func (m *Mesh) CountRegions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.regions)
}

// CountObjects returns the total number of objects stored across every
// loaded region.
func (m *Mesh) CountObjects() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, objs := range m.regions {
		n += len(objs)
	}
	return n
}

// CountObjectsIn returns the number of objects stored in region id.
func (m *Mesh) CountObjectsIn(id ID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.regions[id])
}

// RegionLoaded reports whether id's objects are present in memory.
func (m *Mesh) RegionLoaded(id ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.regions[id]
	return ok
}

// Objects returns the objects stored in region id, or nil if the region
// isn't loaded.
func (m *Mesh) Objects(id ID) []Locatable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.regions[id]
}

// LoadRegion synchronously loads a single region via the Mesh's
// RegionLoader if it isn't already in memory, and returns its objects. If
// another goroutine is already loading the same region, LoadRegion waits
// for that load to finish instead of issuing a second one.
func (m *Mesh) LoadRegion(ctx context.Context, id ID) ([]Locatable, error) {
	if m.loader == nil {
		return nil, fmt.Errorf("htm: mesh has no region loader configured")
	}

	m.mu.Lock()
	if objs, ok := m.regions[id]; ok {
		m.mu.Unlock()
		return objs, nil
	}
	if wg, loading := m.pending[id]; loading {
		m.mu.Unlock()
		wg.Wait()
		return m.Objects(id), nil
	}
	wg := &sync.WaitGroup{}
	wg.Add(1)
	m.pending[id] = wg
	m.mu.Unlock()

	objs, err := m.loader(ctx, id)
	if err != nil {
		m.Log.Warn().Err(err).Str("region", id.Name()).Msg("htm: region load failed")
	}

	m.mu.Lock()
	if err == nil {
		m.regions[id] = objs
	}
	delete(m.pending, id)
	m.mu.Unlock()
	wg.Done()

	return objs, err
}

// LoadRegionAsync loads a region on a background goroutine and invokes
// done with the result once loading finishes (done runs on the background
// goroutine, not the caller's). Use LoadRegion from within done, or
// Objects, to retrieve the result without blocking twice.
func (m *Mesh) LoadRegionAsync(ctx context.Context, id ID, done func(ID, []Locatable, error)) {
	go func() {
		objs, err := m.LoadRegion(ctx, id)
		if done != nil {
			done(id, objs, err)
		}
	}()
}

// LoadRegions synchronously loads id and every sub-region beneath it,
// recursively, fanning each region's sub-regions out to one goroutine
// apiece via conc.WaitGroup so a deep tree doesn't load strictly
// level-by-level.
// Returns the total number of regions loaded. Stops early and returns the
// first error encountered if ctx is canceled or a load fails.
func (m *Mesh) LoadRegions(ctx context.Context, id ID) (int, error) {
	if _, err := m.LoadRegion(ctx, id); err != nil {
		return 0, err
	}
	n := 1

	subIDs := m.SubRegionIDs(id)
	if len(subIDs) == 0 {
		return n, nil
	}

	var mu sync.Mutex
	var firstErr error
	var wg conc.WaitGroup
	for _, subID := range subIDs {
		subID := subID
		wg.Go(func() {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			count, err := m.LoadRegions(ctx, subID)
			mu.Lock()
			defer mu.Unlock()
			n += count
			if err != nil && firstErr == nil {
				firstErr = err
			}
		})
	}
	wg.Wait()

	return n, firstErr
}

// DumpRegion discards region id's objects from memory, if loaded.
func (m *Mesh) DumpRegion(id ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.regions, id)
}

// DumpRegions discards every loaded region's objects from memory.
func (m *Mesh) DumpRegions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions = make(map[ID][]Locatable)
}
