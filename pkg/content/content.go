// Package content wraps the third-party content services the assistant
// surface depends on (sentiment scoring, jokes, image generation) plus the
// local voice command interpreter. Every remote-backed feature degrades to
// ErrUnavailable when its backend is not configured or not reachable so the
// rest of the app can keep serving.
package content

import "errors"

// ErrUnavailable signals that a content feature has no usable backend
// (missing token, network failure, upstream error). Callers are expected to
// degrade gracefully rather than fail the request.
var ErrUnavailable = errors.New("content service unavailable")
