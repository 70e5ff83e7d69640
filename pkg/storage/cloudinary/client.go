package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yarigadev/yariga-backend/pkg/config"
	"github.com/yarigadev/yariga-backend/pkg/logger"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client uploads images to Cloudinary and hands back durable URLs. Every
// upload produces a fresh URL; abandoned URLs are never cleaned up here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	now        func() time.Time
}

// Uploader is the surface the property service consumes.
type Uploader interface {
	Upload(ctx context.Context, source string) (string, error)
}

// NewClient builds a Cloudinary client from injected credentials.
func NewClient(cfg config.CloudinaryConfig, logg *logger.Logger) (*Client, error) {
	if cfg.CloudName == "" {
		return nil, errors.New("cloudinary cloud name is required")
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary api credentials are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		cloudName:  cfg.CloudName,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		folder:     cfg.UploadFolder,
		now:        time.Now,
	}

	if logg != nil {
		logg.Info(context.Background(), "cloudinary client initialized")
	}

	return client, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image payload (data URI or remote URL) to Cloudinary and
// returns the hosted URL. One call, one URL; no retries.
func (c *Client) Upload(ctx context.Context, source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", errors.New("cloudinary: empty upload source")
	}

	timestamp := strconv.FormatInt(c.now().UTC().Unix(), 10)

	signed := map[string]string{"timestamp": timestamp}
	if c.folder != "" {
		signed["folder"] = c.folder
	}

	form := url.Values{}
	form.Set("file", source)
	form.Set("api_key", c.apiKey)
	form.Set("timestamp", timestamp)
	form.Set("signature", signRequest(signed, c.apiSecret))
	if c.folder != "" {
		form.Set("folder", c.folder)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("cloudinary: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary: upload: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("cloudinary: decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("cloudinary: upload failed: %s", msg)
	}

	hosted := parsed.SecureURL
	if hosted == "" {
		hosted = parsed.URL
	}
	if hosted == "" {
		return "", errors.New("cloudinary: response missing url")
	}
	return hosted, nil
}

// signRequest produces the SHA-1 request signature Cloudinary expects: the
// signed params sorted by key, joined as a query string, with the API secret
// appended.
func signRequest(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
