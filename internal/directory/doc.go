// Package directory tracks which bus channel each actuator lives on.
//
// Actuators share a flat id space (0-255) but are physically spread
// across several independent bus channels. The directory probes the
// configured channels, caches the first channel that answers for an
// id, and answers later lookups from the cache. An id is never moved
// to a different channel without an explicit clear.
//
// Discovery tolerates partial bus failure: a channel that cannot be
// opened or errors mid-scan is skipped with a warning and the
// remaining channels are still tried.
package directory
