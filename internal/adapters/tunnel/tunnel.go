// Package tunnel optionally exposes the coordinator through a localtunnel
// endpoint so phones outside the LAN can reach the publisher/viewer pages.
package tunnel

import (
	"fmt"
	"net/http"
	"net/url"

	localtunnel "github.com/localtunnel/go-localtunnel"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Broadcast/internal/config"
)

// Expose serves the given server over a tunnel listener in addition to its
// local port. The tunnel listener is closed by srv.Shutdown along with the
// local one.
func Expose(cfg config.Tunnel, srv *http.Server) error {
	l, err := localtunnel.Listen(localtunnel.Options{
		Subdomain: cfg.Subdomain,
		BaseURL:   cfg.Host,
	})
	if err != nil {
		return fmt.Errorf("tunnel listen: %w", err)
	}

	go func() {
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("module", "tunnel").Msg("tunnel serve")
		}
	}()

	log.Info().Str("module", "tunnel").Str("url", publicURL(cfg)).Msg("tunnel ready, share this URL with your mobile device")
	return nil
}

func publicURL(cfg config.Tunnel) string {
	u, err := url.Parse(cfg.Host)
	if err != nil || u.Host == "" {
		return cfg.Subdomain
	}
	return fmt.Sprintf("%s://%s.%s", u.Scheme, cfg.Subdomain, u.Host)
}
