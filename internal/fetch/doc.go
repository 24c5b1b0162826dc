// Package fetch drives asynchronous loads through a per-key
// Idle/Loading/Success/Error state machine.
//
// A Store holds the current State of every key and notifies subscribers on
// each transition. An Orchestrator is the only writer of its Store: it turns
// intents into transitions, runs loaders on their own goroutines and applies
// their results only when they still belong to the newest operation for that
// key. Results from superseded or released operations are discarded.
package fetch
