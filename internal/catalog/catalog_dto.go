package catalog

import (
	"encoding/json"
	"strings"
)

// Product is an immutable value from the remote catalog. It is never
// mutated locally; cart and favorites snapshot it by value.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// category absorbs both shapes the catalog returns for a category entry:
// a plain string or an object carrying slug/name.
type category struct {
	Slug string
	Name string
}

func (c *category) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		c.Slug = plain
		return nil
	}

	var structured struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}
	c.Slug = structured.Slug
	c.Name = structured.Name
	return nil
}

// normalize produces the canonical lowercase identifier for the entry.
func (c category) normalize() string {
	if c.Slug != "" {
		return strings.ToLower(c.Slug)
	}
	return strings.ToLower(c.Name)
}

// ListProductsRequest parameterizes a cached listing read. Search takes
// precedence over Category; only one is honored per request.
type ListProductsRequest struct {
	Limit       int
	Skip        int
	Search      string
	Category    string
	BypassCache bool
}
