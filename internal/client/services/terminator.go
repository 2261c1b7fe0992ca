package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/common"
	"github.com/dmitrijs2005/shortener-client/internal/logging"
)

// NewSessionTerminator returns the SessionTerminator for the HTTP client. It
// clears the stored tokens and calls onEnd. A store that is already empty
// means the session has ended, so repeated calls do nothing until the next
// login stores a pair. onEnd may be nil.
func NewSessionTerminator(tokens client.TokenStore, log logging.Logger, onEnd func()) client.SessionTerminator {
	var mu sync.Mutex

	return func(ctx context.Context) {
		mu.Lock()
		defer mu.Unlock()

		access, aErr := tokens.Get(ctx, common.AccessTokenKey)
		refresh, rErr := tokens.Get(ctx, common.RefreshTokenKey)
		if aErr == nil && rErr == nil && access == "" && refresh == "" {
			return
		}

		if err := tokens.Clear(ctx); err != nil {
			log.Error(ctx, "failed to clear session tokens", "error", err)
		}
		log.Info(ctx, "session ended, login required")

		if onEnd != nil {
			onEnd()
		}
	}
}
