// Package combined provides interaction benchmarks that put the queue kinds
// next to the other queues this module is measured against.
//
// The benchmarks cover three workloads:
//   - steady state: a pre-filled queue recycles items, so nothing grows
//   - bursts: fill to a burst size and drain, paying for growth each time
//   - fan-in: producers hand items to one consumer that owns a fifo.Queue
//
// # Confinement (IMPORTANT)
//
// The queue kinds are not safe for concurrent use. In the fan-in
// benchmarks producers only touch the channel or go-lock-free-ring between
// them and the consumer; the fifo.Queue belongs to the consumer goroutine.
package combined
