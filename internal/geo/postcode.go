package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pixelplot/ShootBooker/internal/config"
	"github.com/pixelplot/ShootBooker/internal/domain"
)

type AddressResult struct {
	Postcode  string   `json:"postcode"`
	Territory string   `json:"territory"`
	Addresses []string `json:"addresses"`
}

const defaultTerritory = "Unassigned"

// AddressLookup proxies the postcode lookup provider and resolves the
// operating territory from the outcode.
type AddressLookup struct {
	apiKey      string
	endpoint    string
	territories map[string]string
	httpc       *http.Client
}

func NewAddressLookup(cfg config.GeoConfig) *AddressLookup {
	return &AddressLookup{
		apiKey:      cfg.APIKey,
		endpoint:    strings.TrimSuffix(cfg.Endpoint, "/"),
		territories: cfg.Territories,
		httpc:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *AddressLookup) Lookup(ctx context.Context, postcode string) (*AddressResult, error) {
	normalized := normalizePostcode(postcode)
	if normalized == "" {
		return nil, fmt.Errorf("%w: postcode is required", domain.ErrValidation)
	}

	u := fmt.Sprintf("%s/find/%s?api-key=%s", l.endpoint, url.PathEscape(normalized), url.QueryEscape(l.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}

	resp, err := l.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup postcode: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrAddressNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("lookup postcode: unexpected status %s", resp.Status)
	}

	var body struct {
		Postcode  string   `json:"postcode"`
		Addresses []string `json:"addresses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	if len(body.Addresses) == 0 {
		return nil, domain.ErrAddressNotFound
	}

	return &AddressResult{
		Postcode:  body.Postcode,
		Territory: l.Territory(normalized),
		Addresses: body.Addresses,
	}, nil
}

// Territory maps a postcode's outcode onto an operating territory by longest
// prefix; unmatched outcodes fall into the default territory.
func (l *AddressLookup) Territory(postcode string) string {
	outcode := outcode(normalizePostcode(postcode))

	best, bestLen := defaultTerritory, 0
	for prefix, territory := range l.territories {
		p := strings.ToUpper(prefix)
		if strings.HasPrefix(outcode, p) && len(p) > bestLen {
			best, bestLen = territory, len(p)
		}
	}

	return best
}

func normalizePostcode(p string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(p), " ", ""))
}

// outcode strips the 3-character inward code from a full UK postcode.
func outcode(p string) string {
	if len(p) > 3 {
		return p[:len(p)-3]
	}
	return p
}
