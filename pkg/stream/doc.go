// Package stream provides a pausable event emitter for request streams.
//
// Code that runs before the rest of a request pipeline sometimes needs to
// block on I/O, for example to resolve a user from a session. Listeners
// attached by later stages must not miss events emitted in the meantime. An
// Emitter solves this by queueing events while paused and replaying them in
// arrival order once resumed.
//
// # Usage
//
//	em := stream.NewEmitter()
//	go em.ReadFrom(r.Body)
//
//	paused := em.Pause()
//	user, err := lookup(ctx) // events are buffered meanwhile
//	em.On(func(ev stream.Event) { ... })
//	paused.Resume() // buffered events reach the new listener, in order
//
// Each Resumer takes effect once; repeated Resume calls are ignored, so it is
// safe to defer it and also call it explicitly.
package stream
