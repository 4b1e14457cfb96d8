package templstore

// MemoryStore holds template text in memory. It is intended for tests and
// for configuration pushed programmatically at runtime. The dirty flag
// starts true so the first refresh always parses; ParseMap clears it.
type MemoryStore struct {
	data  string
	dirty bool
	load  LoadFunc
}

// MemoryStoreDriver is the driver for creating MemoryStore instances.
type MemoryStoreDriver struct{}

func init() {
	RegisterStoreDriver(StoreDriverNameMemory, &MemoryStoreDriver{})
}

// Open creates a new MemoryStore. The source string is the template text.
func (d *MemoryStoreDriver) Open(source string, load LoadFunc) (TemplateStore, error) {
	return NewMemoryStore(source, load), nil
}

// NewMemoryStore creates a store for the templates in data.
func NewMemoryStore(data string, load LoadFunc) *MemoryStore {
	return &MemoryStore{
		data:  data,
		dirty: true,
		load:  load,
	}
}

// Update replaces the buffered template text and marks the store dirty, so
// the next refresh re-parses. This is the only external mutator.
func (s *MemoryStore) Update(data string) {
	s.data = data
	s.dirty = true
}

// Changed returns the dirty flag without resetting it.
func (s *MemoryStore) Changed() bool {
	return s.dirty
}

// ParseMap deserializes the buffered text and clears the dirty flag.
func (s *MemoryStore) ParseMap() (TemplateMap, error) {
	s.dirty = false
	return s.load(s.data)
}
