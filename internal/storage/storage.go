package storage

// Storage is the persisted key-value contract the cart and saved filters sit
// on. It mirrors what the legacy frontend got from browser local storage: a
// flat namespace of string keys holding JSON-encoded values.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}
