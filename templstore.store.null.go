package templstore

// NullStore is the explicit "no backing source" store: it never reports a
// change and every fetch fails with an I/O error, signaling "unconfigured"
// through the same error channel as a real store instead of a separate
// sentinel.
type NullStore struct{}

// NullStoreDriver is the driver for creating NullStore instances.
type NullStoreDriver struct{}

func init() {
	RegisterStoreDriver(StoreDriverNameNull, &NullStoreDriver{})
}

// Open creates a new NullStore. Source and load function are ignored.
func (d *NullStoreDriver) Open(source string, load LoadFunc) (TemplateStore, error) {
	return NewNullStore(), nil
}

// NewNullStore creates a new NullStore.
func NewNullStore() *NullStore {
	return &NullStore{}
}

// Changed always returns false.
func (s *NullStore) Changed() bool {
	return false
}

// ParseMap always fails with an I/O error.
func (s *NullStore) ParseMap() (TemplateMap, error) {
	return nil, NewNullStoreError()
}
