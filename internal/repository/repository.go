package repository

// StateRepository is a synchronous key-value store for persisted state.
type StateRepository interface {
	// Get returns the value stored under key. The bool is false when the
	// key has never been written.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
