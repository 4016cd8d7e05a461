// Package sim provides simulated sensor and actuator capabilities.
//
// The agent core consumes hardware through narrow interfaces; this package
// supplies software stand-ins so the agent runs end-to-end on a development
// machine with no sensor board attached. Readings are plausible bounded
// random walks, reproducible from a seed.
package sim
