// Package inventory implements the inventory sync feature.
//
// A sync pass lists the shop's products and reconciles each one against
// the current print provider's live catalog: variants that went out of
// stock are disabled, variants back in stock are re-enabled, and when a
// variant goes out of stock the whole product is first offered to an
// alternative provider able to fulfill every variant (provider failover)
// before falling back to disabling.
//
// # Processing Model
//
// Products are processed strictly sequentially with a configurable pause
// between them (see Pacer). Each product is an independent transaction:
// an unavailable catalog skips the product, a rejected update marks it
// failed, and the pass continues either way. Only the inability to list
// products at all ends a pass early, and it does so cleanly.
//
// # Outputs
//
// Every pass produces a RunReport with per-product outcomes and aggregate
// counters. Reports are held in memory for the status endpoint and can be
// archived to object storage via core/reports.
//
// The feature exposes three HTTP endpoints when loaded: POST
// /inventory/sync, GET /inventory/status, and GET /inventory/probe/:id.
package inventory
