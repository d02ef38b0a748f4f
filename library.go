package courier

import (
	"sort"
	"sync"
)

// ModelLibrary is a collection of Models by name, as loaded from an asset Manifest. It's safe for concurrent use, so loaders can
// fill it from several goroutines.
type ModelLibrary struct {
	mutex  sync.RWMutex
	models map[string]*Model
}

// NewModelLibrary creates a new, empty ModelLibrary.
func NewModelLibrary() *ModelLibrary {
	return &ModelLibrary{
		models: map[string]*Model{},
	}
}

// Add stores the Model under its name, replacing any Model already there.
func (lib *ModelLibrary) Add(model *Model) {
	lib.mutex.Lock()
	defer lib.mutex.Unlock()
	lib.models[model.Name] = model
}

// Find returns the Model with the provided name. If a Model with the given name isn't found, Find will return nil.
func (lib *ModelLibrary) Find(name string) *Model {
	if lib == nil {
		return nil
	}
	lib.mutex.RLock()
	defer lib.mutex.RUnlock()
	return lib.models[name]
}

// Has returns if a Model with the name given exists in the library.
func (lib *ModelLibrary) Has(name string) bool {
	return lib.Find(name) != nil
}

// Names returns the names of every Model in the library, sorted.
func (lib *ModelLibrary) Names() []string {
	lib.mutex.RLock()
	defer lib.mutex.RUnlock()
	names := make([]string, 0, len(lib.models))
	for name := range lib.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of Models in the library.
func (lib *ModelLibrary) Len() int {
	lib.mutex.RLock()
	defer lib.mutex.RUnlock()
	return len(lib.models)
}
