// Package printify provides a typed client for the Printify REST API.
//
// It exposes the four upstream operations the sync engine consumes:
// listing shop products, fetching a blueprint's provider list, fetching a
// provider's live variant catalog, and applying a product update.
//
// # Client Interface
//
// The Client interface abstracts the HTTP transport, making it easy to mock
// upstream interactions for unit testing (as seen in core/printify/mocks).
//
// # Absence Semantics
//
// Lookup operations return a nil result with a nil error when the upstream
// resource is absent (404 or missing body). Callers treat absence as "skip
// this unit of work", never as a fatal condition.
//
// # Usage
//
//	client, err := printify.NewClient(cfg.Printify)
//	products, err := client.GetProducts(ctx)
package printify
