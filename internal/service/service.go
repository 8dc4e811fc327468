// Package service holds the platform workflows: payments and donations,
// enrollments and certificates, formations, profiles and auth.
package service

import (
	"context"
	"strconv"
)

// Transactor runs fn inside one database transaction carried by ctx. Calls
// made with the inner ctx join it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func ownerKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
