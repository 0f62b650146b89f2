// meta/meta.go
package meta

// ITERATIONS defines the default number of CFR iterations.
const ITERATIONS = 1000000

// SEED defines the default seed for the deal sampler.
const SEED = 1

// LOG_EVERY defines how many iterations pass between progress log lines.
const LOG_EVERY = 100000

// CHECKPOINTS defines how many convergence checkpoints a run records by default.
const CHECKPOINTS = 20
