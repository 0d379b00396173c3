package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/rohmon/backend/internal/errors"
	"github.com/rohmon/backend/internal/models"
)

// GlobalQuoteSource fetches a live quote from a keyed GLOBAL_QUOTE style API
// (Alpha Vantage shape). Construct it only when an API key is configured; an
// unconfigured deployment simply has no such source in the chain.
type GlobalQuoteSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGlobalQuoteSource(baseURL, apiKey string) *GlobalQuoteSource {
	return &GlobalQuoteSource{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *GlobalQuoteSource) Name() string { return "globalquote" }

type globalQuoteResponse struct {
	Note        string `json:"Note"`
	Information string `json:"Information"`
	GlobalQuote struct {
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

func (s *GlobalQuoteSource) FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error) {
	meta, ok := models.MetaByID(commodityID)
	if !ok {
		return nil, &apperrors.UnknownCommodityError{CommodityID: commodityID}
	}
	if meta.ChartSymbol == "" {
		return nil, fmt.Errorf("no quote symbol for %s", commodityID)
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", meta.ChartSymbol)
	q.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &apperrors.TransportError{Source: s.Name(), Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.TransportError{Source: s.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &apperrors.RateLimitedError{Source: s.Name()}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apperrors.TransportError{Source: s.Name(), Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &apperrors.MalformedPayloadError{Source: s.Name(), Detail: err.Error()}
	}
	// The API reports throttling as a 200 with a Note body.
	if payload.Note != "" || payload.Information != "" {
		return nil, &apperrors.RateLimitedError{Source: s.Name()}
	}
	if payload.GlobalQuote.Price == "" {
		return nil, &apperrors.MalformedPayloadError{Source: s.Name(), Detail: "empty global quote"}
	}

	return &RawQuote{
		CommodityID:   commodityID,
		Price:         payload.GlobalQuote.Price,
		Change:        payload.GlobalQuote.Change,
		ChangePercent: strings.TrimSuffix(payload.GlobalQuote.ChangePercent, "%"),
		Currency:      meta.Currency,
		Source:        s.Name(),
	}, nil
}
