// Package singleton guards process-wide instances that must be constructed
// at most once.
//
// Two policies are offered:
//
//	Guard[C, T]  explicit: Construct(cfg) builds the instance exactly once and
//	             every later Construct fails with ErrAlreadyInitialized, no
//	             matter the argument. Instance() before the first successful
//	             Construct fails with ErrNotInitialized.
//	Lazy[T]      implicit: the first Get() builds the instance from a fixed
//	             default and every later Get() returns the same one.
//
// A constructor failure leaves a Guard uninitialized, so a later Construct may
// still succeed. Lazy caches the constructor's result, error included.
//
// Connection is the package's own process-wide state built on Guard:
//
//	Connect(dsn)          // first call wins
//	CurrentConnection()   // ErrNotInitialized until Connect succeeds
//	DefaultConnection()   // connects to DefaultDSN unless already connected
//
// There is no teardown: a constructed instance lives for the whole process.
//
// Concurrency: the check-and-set of Guard runs under a sync.Mutex, so of any
// number of concurrent Construct calls exactly one succeeds. Lazy is backed by
// sync.OnceValues.
package singleton
