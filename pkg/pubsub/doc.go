// Package pubsub implements the client for the event bus's streaming API.
//
// # Overview
//
// A Client owns one transport session and one bidirectional stream per
// subscribed topic. Events are requested in bounded batches: the client
// tracks requested-vs-received counts per topic and, for unbounded
// subscriptions, automatically issues a fresh batch of MaxBatchSize whenever
// the current one is exhausted. Bounded subscriptions signal completion
// instead and wait for an explicit RequestAdditionalEvents.
//
// Quick start
//
//	c := pubsub.New(tr, pubsub.WithLogger(logger))
//	if err := c.Connect(ctx); err != nil { ... }
//	sub, err := c.Subscribe(ctx, pubsub.SubscribeOptions{Topic: "/event/Order"})
//	for msg := range sub.C() {
//	    switch msg.Kind {
//	    case pubsub.KindData:
//	        handle(msg.Event)
//	    case pubsub.KindError:
//	        log(msg.Err) // per-event failures do not end the stream
//	    case pubsub.KindEnd:
//	        return
//	    }
//	}
//
// Every subscription observes exactly one terminal signal per outcome: end,
// a stream-level error, or lastevent when a bounded count is reached.
// Per-event decode failures are delivered as KindError messages and never
// abort the batch.
package pubsub
