// Package ratelimiter provides token bucket rate limiting with
// pluggable storage backends.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens
// every RefillInterval; each request consumes tokens and is denied
// when the bucket runs short. Bursts up to Capacity pass through while
// the long-term rate stays bounded.
//
//	store := ratelimiter.NewMemoryStore()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, "user:123")
//	if err != nil {
//		// store failure, decide fail-open vs fail-closed
//	}
//	if !result.Allowed() {
//		// denied; result.RetryAfter() says how long to wait
//	}
//
// MemoryStore serves single-instance deployments and needs its cleanup
// loop running (Start or Run) to bound memory. RedisStore shares
// budgets across replicas and performs the refill-consume step in a
// Lua script so concurrent consumers cannot double-spend.
package ratelimiter
