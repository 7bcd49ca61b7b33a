// Package domain holds the board's core entities: tasks with their
// subtasks, assignments, categories and prios, the board contacts they
// are assigned to, and the auth accounts and profiles of the session
// layer. Entities validate themselves and know nothing about storage
// or HTTP.
package domain
