// Package store defines the persistence interfaces of the application,
// shared store errors, and the transaction helper used by services that
// need multi-statement writes.
package store
