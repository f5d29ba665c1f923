// Package metrics records pipeline activity as Prometheus metrics on a
// private registry.
//
// Every Recorder method is safe on a nil *Recorder, so callers can leave
// metrics disabled without guarding each call.
package metrics
