package db

import "errors"

// ErrKeyNotFound is returned by Get when the key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KVClient is the persistent key-value store behind each visitor's local storage.
type KVClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Ping() error
	Close() error
}
