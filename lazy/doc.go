// Package lazy provides deferred and memoized values.
//
// A Deferred wraps a computation and runs it on every Evaluate.
// A Memo runs it until it succeeds once, then returns the cached result forever.
//
// Failures are never cached: a Memo whose computation fails stays unevaluated,
// returns the error unchanged, and runs the computation again on the next call.
//
// Neither type is safe for concurrent use unless built with WithLock.
//
// Example:
//
//	conf := lazy.Memoize(func() (Config, error) {
//	    return loadConfig("app.yaml")
//	})
//	c, err := conf.Evaluate() // loads
//	c, err = conf.Evaluate()  // cached, if the first call succeeded
package lazy
