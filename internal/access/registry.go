// Package access tracks which users hold premium access.
package access

import (
	"strconv"
	"sync"
	"time"

	"github.com/bookshookapp/bookshook-bot/internal/errors"
)

// permanentExpiry is the sentinel expiry marker for granted access.
// Grants are effectively permanent; the timestamp is kept so expiring
// grants can be introduced later without a data model change.
var permanentExpiry = time.Unix(9999999999, 0)

// Registry is an in-memory premium membership store keyed by user id.
// Membership is not persisted and resets on restart. Safe for concurrent
// use; the transport delivers different users' events interleaved.
type Registry struct {
	mu      sync.RWMutex
	members map[string]time.Time
	adminID int64
}

// NewRegistry creates a registry with the administrator pre-granted.
func NewRegistry(adminID int64) *Registry {
	r := &Registry{
		members: make(map[string]time.Time),
		adminID: adminID,
	}
	r.members[strconv.FormatInt(adminID, 10)] = permanentExpiry
	return r
}

// IsPremium reports whether the user currently holds premium access.
func (r *Registry) IsPremium(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	expiry, ok := r.members[strconv.FormatInt(userID, 10)]
	return ok && time.Now().Before(expiry)
}

// IsAdmin reports whether the user is the configured administrator.
func (r *Registry) IsAdmin(userID int64) bool {
	return userID == r.adminID
}

// Grant adds a user to the premium list. Only the administrator may grant;
// anyone else gets ErrUnauthorized. There is no revoke operation.
func (r *Registry) Grant(granterID int64, targetUserID string) error {
	if granterID != r.adminID {
		return errors.Unauthorized("only the admin can add premium users")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[targetUserID] = permanentExpiry
	return nil
}
