// Package postgres provides PostgreSQL implementations of the store
// interfaces, written against database/sql with the pgx stdlib driver.
package postgres
