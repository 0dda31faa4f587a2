// Package observability records RaptorFlow domain events to an append-only
// JSON Lines log and derives planning metrics from it on demand.
package observability
