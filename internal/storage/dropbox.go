package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pixelplot/ShootBooker/internal/config"
	"github.com/wb-go/wbf/logger"
)

const (
	tokenEndpoint       = "https://api.dropbox.com/oauth2/token"
	createFolderURL     = "https://api.dropboxapi.com/2/files/create_folder_v2"
	createFileReqURL    = "https://api.dropboxapi.com/2/file_requests/create"
	tokenExpirySkew     = time.Minute
	folderConflictError = "path/conflict"
)

var ErrDisabled = errors.New("storage is not configured")

// TokenProvider mints short-lived access tokens from a long-lived refresh
// token. The cached token and its expiry are explicit state with an injected
// clock, not a module-scope variable.
type TokenProvider struct {
	appKey       string
	appSecret    string
	refreshToken string
	endpoint     string
	httpc        *http.Client
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenProvider(appKey, appSecret, refreshToken string, now func() time.Time) *TokenProvider {
	if now == nil {
		now = time.Now
	}
	return &TokenProvider{
		appKey:       appKey,
		appSecret:    appSecret,
		refreshToken: refreshToken,
		endpoint:     tokenEndpoint,
		httpc:        &http.Client{Timeout: 10 * time.Second},
		now:          now,
	}
}

func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Add(tokenExpirySkew).Before(p.expiresAt) {
		return p.token, nil
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.refreshToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(p.appKey, p.appSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh token: unexpected status %s", resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	p.token = body.AccessToken
	p.expiresAt = p.now().Add(time.Duration(body.ExpiresIn) * time.Second)

	return p.token, nil
}

// Dropbox manages per-booking media folders and client upload links.
type Dropbox struct {
	tokens *TokenProvider
	root   string
	httpc  *http.Client
	logger logger.Logger
}

func NewDropbox(cfg config.StorageConfig, log logger.Logger) *Dropbox {
	var tokens *TokenProvider
	if cfg.RefreshToken != "" {
		tokens = NewTokenProvider(cfg.AppKey, cfg.AppSecret, cfg.RefreshToken, nil)
	} else {
		log.Warn("storage refresh token is empty, media uploads disabled")
	}

	return &Dropbox{
		tokens: tokens,
		root:   strings.TrimSuffix(cfg.RootFolder, "/"),
		httpc:  &http.Client{Timeout: 15 * time.Second},
		logger: log,
	}
}

func (d *Dropbox) folderPath(ref string) string {
	return d.root + "/" + ref
}

// EnsureFolder creates the booking's media folder; an existing folder is not
// an error.
func (d *Dropbox) EnsureFolder(ctx context.Context, ref string) (string, error) {
	if d.tokens == nil {
		return "", ErrDisabled
	}

	path := d.folderPath(ref)
	var out json.RawMessage
	err := d.call(ctx, createFolderURL, map[string]interface{}{"path": path, "autorename": false}, &out)
	if err != nil && !strings.Contains(err.Error(), folderConflictError) {
		return "", fmt.Errorf("create folder: %w", err)
	}

	return path, nil
}

// UploadLink creates a file request the client can upload shoot media to.
func (d *Dropbox) UploadLink(ctx context.Context, ref string) (string, error) {
	if d.tokens == nil {
		return "", ErrDisabled
	}

	if _, err := d.EnsureFolder(ctx, ref); err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	err := d.call(ctx, createFileReqURL, map[string]interface{}{
		"title":       "Media upload for booking " + ref,
		"destination": d.folderPath(ref),
	}, &out)
	if err != nil {
		return "", fmt.Errorf("create file request: %w", err)
	}

	return out.URL, nil
}

func (d *Dropbox) call(ctx context.Context, endpoint string, payload, out interface{}) error {
	token, err := d.tokens.Token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			ErrorSummary string `json:"error_summary"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("dropbox %s: %s", resp.Status, apiErr.ErrorSummary)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
