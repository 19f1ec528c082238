package blogger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultAPIBase  = "https://www.googleapis.com/blogger"

	// Cached tokens are treated as stale well before Google's real
	// one-hour expiry.
	tokenTTL = 50 * time.Minute
)

// PublishError is returned when the blog platform or the token endpoint
// answers with a non-success status. It carries the raw response for
// diagnostics.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("blogger publish failed with status %d: %s", e.StatusCode, e.Body)
}

// RefreshObserver is called after every successful token refresh so the
// operator can learn about it.
type RefreshObserver func(expiresIn time.Duration)

// Client publishes posts to a single Blogger blog. The OAuth access token
// is refreshed on demand via the refresh-token grant and cached in-process.
type Client struct {
	httpClient   *http.Client
	blogID       string
	clientID     string
	clientSecret string
	refreshToken string
	tokenURL     string
	apiBase      string
	onRefresh    RefreshObserver

	accessToken string
	acquiredAt  time.Time
}

func NewClient(blogID, clientID, clientSecret, refreshToken string, onRefresh RefreshObserver) *Client {
	log.Printf("[BLOGGER] Creating publishing client for blog %s", blogID)

	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		blogID:       blogID,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		tokenURL:     defaultTokenURL,
		apiBase:      defaultAPIBase,
		onRefresh:    onRefresh,
	}
}

// Publish creates a new post and returns its public URL. Any non-2xx answer
// from the platform or the token endpoint surfaces as a *PublishError;
// nothing is retried.
func (c *Client) Publish(title, caption, imageURL, buttonURL string) (string, error) {
	token, err := c.getValidToken()
	if err != nil {
		return "", err
	}

	body := map[string]interface{}{
		"kind":    "blogger#post",
		"blog":    map[string]string{"id": c.blogID},
		"title":   title,
		"content": buildPostContent(caption, imageURL, buttonURL),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode blogger post: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v3/blogs/%s/posts/", c.apiBase, c.blogID)
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build blogger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[BLOGGER] Publishing post %q to blog %s", title, c.blogID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("blogger request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[BLOGGER] Publish failed with status %d", resp.StatusCode)
		return "", &PublishError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to parse blogger response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("blogger response carried no post url")
	}

	log.Printf("[BLOGGER] Published post: %s", result.URL)
	return result.URL, nil
}

// getValidToken returns the cached access token, refreshing it once the
// cache window has elapsed. Refresh failures surface as publish failures.
func (c *Client) getValidToken() (string, error) {
	if c.accessToken != "" && time.Since(c.acquiredAt) < tokenTTL {
		return c.accessToken, nil
	}

	log.Printf("[BLOGGER] Refreshing OAuth access token")

	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {c.refreshToken},
		"grant_type":    {"refresh_token"},
	}

	resp, err := c.httpClient.PostForm(c.tokenURL, form)
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[BLOGGER] Token refresh failed with status %d", resp.StatusCode)
		return "", &PublishError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access_token")
	}

	c.accessToken = result.AccessToken
	c.acquiredAt = time.Now()

	log.Printf("[BLOGGER] Access token refreshed (expires_in: %ds)", result.ExpiresIn)

	if c.onRefresh != nil {
		c.onRefresh(time.Duration(result.ExpiresIn) * time.Second)
	}

	return c.accessToken, nil
}

// buildPostContent renders the fixed HTML fragment for a post: image when
// present, escaped caption, and a styled call-to-action anchor.
func buildPostContent(caption, imageURL, buttonURL string) string {
	var b strings.Builder

	b.WriteString("<div>")
	if imageURL != "" {
		fmt.Fprintf(&b, `<img src="%s" style="max-width:100%%;" /><br><br>`, imageURL)
	}
	if caption != "" {
		escaped := strings.ReplaceAll(html.EscapeString(caption), "\n", "<br>")
		b.WriteString("<p>" + escaped + "</p>")
	}
	fmt.Fprintf(&b, `<a href="%s" target="_blank" style="padding: 10px 20px; background-color: #2196F3; color: white; text-decoration: none; border-radius: 5px;">View Product</a>`, buttonURL)
	b.WriteString("</div>")

	return b.String()
}
