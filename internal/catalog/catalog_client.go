package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://dummyjson.com"

// FetchError is the typed failure for any catalog read: either a non-2xx
// response (Status set) or a transport error (Err set).
type FetchError struct {
	Status int
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("catalog fetch %s: status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=catalog_client.go -destination=../mock/catalog/catalog_client_mock.go -package=mock

// Client reads the remote product catalog. It is a black box to the rest
// of the system: structured data out, *FetchError on failure.
type Client interface {
	ListProducts(ctx context.Context, limit, skip int) (ProductsResponse, error)
	SearchProducts(ctx context.Context, query string, limit, skip int) (ProductsResponse, error)
	ListProductsByCategory(ctx context.Context, category string, limit, skip int) (ProductsResponse, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, client *http.Client) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{baseURL: baseURL, client: client}
}

func (c *httpClient) ListProducts(ctx context.Context, limit, skip int) (ProductsResponse, error) {
	var res ProductsResponse
	err := c.getJSON(ctx, "/products", pageParams(limit, skip), &res)
	return res, err
}

func (c *httpClient) SearchProducts(ctx context.Context, query string, limit, skip int) (ProductsResponse, error) {
	params := pageParams(limit, skip)
	params.Set("q", query)

	var res ProductsResponse
	err := c.getJSON(ctx, "/products/search", params, &res)
	return res, err
}

func (c *httpClient) ListProductsByCategory(ctx context.Context, category string, limit, skip int) (ProductsResponse, error) {
	var res ProductsResponse
	err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), pageParams(limit, skip), &res)
	return res, err
}

func (c *httpClient) GetProduct(ctx context.Context, id int) (Product, error) {
	var res Product
	err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), nil, &res)
	return res, err
}

func (c *httpClient) ListCategories(ctx context.Context) ([]string, error) {
	var raw []category
	if err := c.getJSON(ctx, "/products/categories", nil, &raw); err != nil {
		return nil, err
	}

	// Normalization happens once, here at the collaborator boundary.
	categories := make([]string, 0, len(raw))
	for _, c := range raw {
		categories = append(categories, c.normalize())
	}
	return categories, nil
}

func pageParams(limit, skip int) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("skip", strconv.Itoa(skip))
	return params
}

func (c *httpClient) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &FetchError{URL: fullURL, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &FetchError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: fullURL, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{URL: fullURL, Err: err}
	}
	return nil
}
