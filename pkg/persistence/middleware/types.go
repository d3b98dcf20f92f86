// Package middleware decorates save stores with cross-cutting behavior.
package middleware

import "github.com/aretw0/diploma/pkg/ports"

// Middleware allows wrapping a SaveStore to add behavior.
type Middleware func(ports.SaveStore) ports.SaveStore

// Chain wraps store with mws. The first middleware is the outermost.
func Chain(store ports.SaveStore, mws ...Middleware) ports.SaveStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
