// internal/daily/daily.go
//
// Deterministic daily puzzle selection. Every process that shares the
// same salt and answer pool picks the same word for a given UTC date,
// without coordination or persisted state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/mfriedel/wordle-solver/internal/core"
)

// DateKey returns the puzzle day for t: YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordFor picks the daily answer for a date: HMAC-SHA256 of the UTC
// date keyed by salt, reduced modulo the pool size. The salt keeps
// independent deployments from leaking each other's answers. Returns
// false for an empty pool.
func WordFor(date time.Time, salt string, answers []core.Word) (core.Word, bool) {
	if len(answers) == 0 {
		return core.Word{}, false
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	digest := mac.Sum(nil)
	// First 8 bytes as uint64 for modulus distribution.
	n := binary.BigEndian.Uint64(digest[:8])
	return answers[n%uint64(len(answers))], true
}
