package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxIDAttempts    = 5
	maxStateAttempts = 3

	transactionPrefix = "TXN"
	certificatePrefix = "CERT"
)

var errIDSpaceExhausted = errors.New("could not allocate a unique identifier")

// referenceID builds <prefix>-<unix millis>-<owner>. Retries append a random
// suffix so two requests in the same millisecond do not collide again.
func referenceID(prefix string, now time.Time, owner string, attempt int) string {
	id := fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), owner)
	if attempt > 0 {
		id += "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	}
	return id
}

// insertWithUniqueID calls insert with fresh ids until it stops failing with
// taken. The unique index decides, not a prior lookup.
func insertWithUniqueID[T any](newID func(attempt int) string, taken error, insert func(id string) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		v, err := insert(newID(attempt))
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, taken) {
			return zero, err
		}
	}

	return zero, errIDSpaceExhausted
}
