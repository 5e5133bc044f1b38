// Package provider defines the AI provider interface and implementations.
package provider

import "github.com/ZaguanLabs/godocai"

// Provider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type Provider = godocai.Provider

// Request is an alias to the main package type.
type Request = godocai.Request
