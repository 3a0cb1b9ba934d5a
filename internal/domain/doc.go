// Package domain contains the core task entities and the recurrence
// logic of the application. It represents the heart of the system,
// independent of any specific delivery mechanism or presentation layer.
package domain
