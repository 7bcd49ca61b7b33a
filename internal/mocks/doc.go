// Package mocks provides hand-written fakes of the store and service
// interfaces for handler and service tests. Every mock exposes optional
// function fields that override the default in-memory behavior per test.
package mocks
