// Package catalog persists a local history of subtitle conversion runs
// backed by SQLite.
package catalog
