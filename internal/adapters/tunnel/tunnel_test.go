package tunnel

import (
	"testing"

	"github.com/dkeye/Broadcast/internal/config"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Tunnel
		want string
	}{
		{
			name: "default host",
			cfg:  config.Tunnel{Subdomain: "live3", Host: "https://loca.lt"},
			want: "https://live3.loca.lt",
		},
		{
			name: "unparseable host falls back to subdomain",
			cfg:  config.Tunnel{Subdomain: "live3", Host: "::"},
			want: "live3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := publicURL(tt.cfg); got != tt.want {
				t.Fatalf("publicURL = %q, want %q", got, tt.want)
			}
		})
	}
}
