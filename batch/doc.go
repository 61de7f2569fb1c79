// Package batch applies one sorting network to many independent arrays in
// parallel.
//
// A network is data-independent, so a batch of arrays splits into chunks
// that workers sort without coordination. Each array still sees the layers
// strictly in order; only distinct arrays run concurrently.
//
// Three layouts are supported:
//
//   - Apply / Sort     – a slice of arrays, each of length ≥ N.
//   - ApplyFlat        – arrays packed back to back in one slice of k·N values.
//   - Columns          – structure-of-arrays: cols[p][k] is position p of
//     array k; chunks are lane ranges run through network.ApplyColumns.
//
// Work is bounded by WithWorkers (default GOMAXPROCS) and grouped by
// WithChunkSize (default DefaultChunkSize arrays or lanes). The context is
// checked before every chunk; a cancelled batch returns ctx.Err() and leaves
// the arrays it had not reached untouched.
//
//	err := batch.Sort(ctx, rows, nw, batch.WithWorkers(4))
package batch
