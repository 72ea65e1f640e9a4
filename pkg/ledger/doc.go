// Package ledger records which lesson was dispatched for a course on a calendar day.
//
// Without a ledger every trigger on the same day sends the lesson again. With
// one, dispatch becomes check-then-send-then-record:
//
//	claimed, err := store.Claim(ctx, marker)
//	if err != nil || !claimed {
//		return // already sent today, or the store is unavailable
//	}
//	if err := send(); err != nil {
//		_ = store.Release(ctx, marker) // allow a later trigger to retry
//	}
//
// Claims are keyed by course and calendar date, so at most one claim per
// course per day succeeds across all stores sharing the same backend.
//
// # Backends
//
//   - Memory: process-local, for tests and serve mode without infrastructure
//   - Redis: SET NX with a TTL, built on pkg/redis
//   - Postgres: INSERT ... ON CONFLICT DO NOTHING, schema managed by goose
package ledger
