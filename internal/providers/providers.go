// Package providers holds the concrete integrations behind the
// careers interfaces: anonymous file hosts for resume references and
// mail-relay endpoints for notification delivery. Everything here is
// built from configuration; no endpoint or destination address is
// hard-coded.
package providers

import (
	"net/http"

	"github.com/orangeot/backoffice-api/internal/careers"
	"github.com/orangeot/backoffice-api/internal/config"
)

// BuildUploadProviders assembles the ordered provider chain from
// config. The entry named "inline" maps to the local encoder;
// everything else is a remote file host.
func BuildUploadProviders(cfgs []config.ProviderConfig, client *http.Client) []careers.UploadProvider {
	chain := make([]careers.UploadProvider, 0, len(cfgs))
	for _, cfg := range cfgs {
		if cfg.Name == "inline" {
			chain = append(chain, NewInline())
			continue
		}
		chain = append(chain, NewFileHost(cfg, client))
	}
	return chain
}

// BuildRelays assembles the mail-relay destinations from config
func BuildRelays(cfgs []config.RelayConfig, client *http.Client) []careers.Relay {
	relays := make([]careers.Relay, 0, len(cfgs))
	for _, cfg := range cfgs {
		relays = append(relays, NewFormRelay(cfg, client))
	}
	return relays
}
