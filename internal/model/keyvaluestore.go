package model

//
// Key-value store
//

// KeyValueStore is a generic key-value store. The SDK uses it to
// optionally persist access tokens across process restarts.
type KeyValueStore interface {
	// Get gets the value of the given key or returns an error.
	Get(key string) (value []byte, err error)

	// Set sets the value of the given key.
	Set(key string, value []byte) (err error)
}
