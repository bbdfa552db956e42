// Package entity contains the core business objects of the project.
package entity

// Category groups generic products. Every product belongs to exactly one category.
type Category struct {
	ID          int64
	Name        string
	Description string
}
