// Package redis opens go-redis clients for the ledger.
//
// A daily run makes a handful of commands, so the pool is small and startup
// retries are short by default:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//		redis.WithRetry(5, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URLs are accepted.
package redis
