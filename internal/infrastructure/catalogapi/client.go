package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stackshop/internal/config"
	"stackshop/internal/domain"
	"stackshop/internal/dto"
	apperrors "stackshop/internal/errors"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	categoriesPath    = "/api/categories"
	subCategoriesPath = "/api/subcategories"
	productsPath      = "/api/products"
)

// Client talks to the catalog API. Every request waits on the rate limiter.
type Client struct {
	rl                 ratelimit.Limiter
	baseURL            string
	httpClient         *resty.Client
	scopeSubcategories bool
	logger             *zap.Logger
}

func NewClient(cfg config.CatalogAPIConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.MaxRetries).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &Client{
		rl:                 rl,
		baseURL:            strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:         httpClient,
		scopeSubcategories: cfg.ScopeSubcategories,
		logger:             logger,
	}
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out dto.CategoriesResponse
	if err := c.getJSON(ctx, categoriesPath, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return out.Categories, nil
}

// SubCategories lists subcategories. The category is only sent upstream when
// scoping is enabled; otherwise the full list is returned.
func (c *Client) SubCategories(ctx context.Context, category string) ([]string, error) {
	var query url.Values
	if c.scopeSubcategories && category != "" {
		query = url.Values{"category": []string{category}}
	}

	var out dto.SubCategoriesResponse
	if err := c.getJSON(ctx, subCategoriesPath, query, &out); err != nil {
		return nil, fmt.Errorf("fetching subcategories: %w", err)
	}
	return out.SubCategories, nil
}

func (c *Client) Products(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
	var out dto.ProductsResponse
	if err := c.getJSON(ctx, productsPath, q.Values(), &out); err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*domain.ProductDetail, error) {
	var out dto.ProductDetailResponse
	path := productsPath + "/" + url.PathEscape(id)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("fetching product %s: %w", id, err)
	}
	return out.ToDomain(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	c.rl.Take()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("calling catalog api: %w", err)
	}

	c.logger.Debug("catalog api response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
	)

	if resp.StatusCode() == http.StatusNotFound {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", path))
	}
	if resp.IsError() {
		return apperrors.NewUpstreamError(resp.StatusCode(), fmt.Sprintf("catalog api error on %s", path))
	}

	if err := json.Unmarshal([]byte(resp.String()), out); err != nil {
		return apperrors.NewUpstreamError(resp.StatusCode(), fmt.Sprintf("invalid payload from %s: %v", path, err))
	}
	return nil
}
