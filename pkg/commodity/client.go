package commodity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const rapidAPIHost = "commodity-prices2.p.rapidapi.com"

// Slugs is the set of agricultural commodities tracked for Pakistan.
var Slugs = []string{
	"wheat", "rice", "cotton", "sugar", "corn", "soybeans",
	"palm-oil", "sunflower-oil", "rapeseed-oil",
}

// urduCropNames maps API commodity slugs to the Urdu display names used
// for stored price rows.
var urduCropNames = map[string]string{
	"wheat":  "گندم",
	"rice":   "چاول",
	"cotton": "کپاس",
	"sugar":  "چینی",
	"corn":   "مکئی",
}

// LocalCropName returns the Urdu display name for a commodity slug, or the
// slug itself when no translation exists.
func LocalCropName(slug string) string {
	if name, ok := urduCropNames[slug]; ok {
		return name
	}
	return slug
}

type Quote struct {
	Slug   string
	Name   string
	Price  float64
	Unit   string
	Change *float64
}

type quotePayload struct {
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	CurrentPrice *float64 `json:"current_price"`
	Unit         string   `json:"unit"`
	Change       *float64 `json:"change"`
	PriceChange  *float64 `json:"price_change"`
}

// Client calls the RapidAPI commodity prices API. Quotes are cached for
// the configured TTL so repeated chat questions inside the freshness
// window do not refetch.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(apiKey string, cacheTTL time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://" + rapidAPIHost,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Fetch returns the quote for a single commodity slug.
func (c *Client) Fetch(ctx context.Context, slug string) (*Quote, error) {
	if !c.Available() {
		return nil, fmt.Errorf("rapidapi key is not configured")
	}

	if cached, found := c.cache.Get(slug); found {
		return cached.(*Quote), nil
	}

	url := fmt.Sprintf("%s/api/Commodity/%s", c.baseURL, slug)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(body),
		)
	}

	var payload quotePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	quote := &Quote{
		Slug: slug,
		Name: payload.Name,
		Unit: payload.Unit,
	}
	if quote.Name == "" {
		quote.Name = slug
	}
	switch {
	case payload.Price != nil:
		quote.Price = *payload.Price
	case payload.CurrentPrice != nil:
		quote.Price = *payload.CurrentPrice
	}
	switch {
	case payload.Change != nil:
		quote.Change = payload.Change
	case payload.PriceChange != nil:
		quote.Change = payload.PriceChange
	}

	c.cache.Set(slug, quote, gocache.DefaultExpiration)
	return quote, nil
}

// FetchAll returns quotes for every tracked commodity. Per-slug failures
// are skipped so a single bad upstream answer does not hide the rest.
func (c *Client) FetchAll(ctx context.Context) ([]*Quote, error) {
	if !c.Available() {
		return nil, fmt.Errorf("rapidapi key is not configured")
	}

	quotes := make([]*Quote, 0, len(Slugs))
	var lastErr error
	for _, slug := range Slugs {
		quote, err := c.Fetch(ctx, slug)
		if err != nil {
			lastErr = err
			continue
		}
		quotes = append(quotes, quote)
	}

	if len(quotes) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return quotes, nil
}
