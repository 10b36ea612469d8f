// Package config exposes runtime configuration behind typed getters.
//
// Implementations resolve keys like "database.pool.max_conns", handle
// missing keys by returning zero values, and close any watch resources on
// Close.
package config

import (
	"io"
	"time"
)

// Config retrieves configuration values of the types this service reads.
type Config interface {
	io.Closer

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool

	// GetString returns the value for key as a string.
	GetString(key string) string

	// GetInt returns the value for key as an int.
	GetInt(key string) int

	// GetInt32 returns the value for key as an int32.
	GetInt32(key string) int32

	// GetInt64 returns the value for key as an int64.
	GetInt64(key string) int64

	// GetUint64 returns the value for key as a uint64.
	GetUint64(key string) uint64

	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond reads the value for key as a whole number of seconds and
	// returns it as a duration.
	GetSecond(key string) time.Duration

	// GetArray returns the value for key split on commas, one element per
	// entry.
	GetArray(key string) []string
}
