package cache

import "time"

// Entry represents one cached resolution.
type Entry struct {
	// Marker is the version marker that was resolved
	// (e.g. "OPENSSL_VERSION=latest").
	Marker string `json:"marker"`

	// Value is the resolved build variable (e.g. "OPENSSL_VERSION=3.2.0").
	Value string `json:"value"`

	// FetchedAt is when the value was retrieved from upstream.
	FetchedAt time.Time `json:"fetched_at"`
}
