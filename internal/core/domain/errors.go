package domain

import "errors"

// Error taxonomy for upstream calls. Handlers translate these into user
// affordances; none is fatal from the application's standpoint.
var (
	// ErrNoSession means an authenticated call was attempted without a
	// token. The request is never sent.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired means the backend rejected the token (HTTP 401).
	// The session is cleared and the caller lands back on login.
	ErrSessionExpired = errors.New("session expired")

	// ErrBackendDown means the transport did not complete.
	ErrBackendDown = errors.New("backend unreachable")

	// ErrRejected is a logical failure: a 2xx response whose envelope set
	// error=true, or a 4xx validation failure. The wrapped message is the
	// backend's own and is safe to show.
	ErrRejected = errors.New("request rejected")

	// ErrConflict covers duplicate resources, e.g. an already registered
	// email or an owner that already has a store.
	ErrConflict = errors.New("resource conflict")

	// ErrOwnerUnavailable means a store creation named an owner that is
	// not a free store-owner account.
	ErrOwnerUnavailable = errors.New("owner not available")

	// ErrStoreNotFound means a rating submission referenced a store the
	// listing does not contain.
	ErrStoreNotFound = errors.New("store not found")
)
