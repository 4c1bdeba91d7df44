package services

import (
	"context"
	"errors"
)

// Params carries everything a source needs to resolve one query. Unused
// fields are ignored by sources that don't need them.
type Params struct {
	ISO3          string
	CommodityCode string
}

// Source is the one contract every upstream client implements: a single
// fetch-and-normalize call. Failure of any kind (network, status, parse) is
// a non-nil error; there is no partial or hollow success value. New sources
// register by name in the engine and nothing else has to change.
type Source interface {
	Name() string
	Fetch(ctx context.Context, p Params) (any, error)
}

// ErrNotConfigured marks a source that cannot run because a required
// credential is missing. It still degrades to an absent sub-source, but
// operators can tell it apart from an upstream outage in the logs.
var ErrNotConfigured = errors.New("source credential not configured")
