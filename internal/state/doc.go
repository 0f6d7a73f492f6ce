// Package state provides a thread-safe container for polled Mealie data.
//
// The background poller writes full snapshots into the Store; the UI reads
// them at its own cadence. Snapshots are copied on both write and read so
// neither side can mutate the other's view. Poll failures keep the previous
// data but record the error and a consecutive-failure count, which the UI
// uses to show an offline badge after repeated misses.
package state
