// Package models contains the GORM database models for the certificate store
// and timestamp history, kept separate from the domain entities.

package models
