package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/rohmon/backend/internal/errors"
	"github.com/rohmon/backend/internal/models"
)

// YahooChartSource fetches a live quote from the Yahoo Finance chart
// endpoint (time-series close shape) for commodities that have a futures
// symbol configured.
type YahooChartSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewYahooChartSource(baseURL string) *YahooChartSource {
	return &YahooChartSource{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *YahooChartSource) Name() string { return "yahoo" }

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"previousClose"`
				Currency           string  `json:"currency"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

func (s *YahooChartSource) FetchQuote(ctx context.Context, commodityID string) (*RawQuote, error) {
	meta, ok := models.MetaByID(commodityID)
	if !ok {
		return nil, &apperrors.UnknownCommodityError{CommodityID: commodityID}
	}
	if meta.ChartSymbol == "" {
		return nil, fmt.Errorf("no chart symbol for %s", commodityID)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, meta.ChartSymbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperrors.TransportError{Source: s.Name(), Err: err}
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

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

	var payload yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &apperrors.MalformedPayloadError{Source: s.Name(), Detail: err.Error()}
	}
	if len(payload.Chart.Result) == 0 {
		return nil, &apperrors.MalformedPayloadError{Source: s.Name(), Detail: "empty chart result"}
	}

	m := payload.Chart.Result[0].Meta
	if m.RegularMarketPrice == 0 {
		return nil, &apperrors.MalformedPayloadError{Source: s.Name(), Detail: "missing regular market price"}
	}

	change := m.RegularMarketPrice - m.PreviousClose
	changePercent := 0.0
	if m.PreviousClose != 0 {
		changePercent = change / m.PreviousClose * 100
	}

	raw := &RawQuote{
		CommodityID:   commodityID,
		Price:         strconv.FormatFloat(m.RegularMarketPrice, 'f', -1, 64),
		Change:        strconv.FormatFloat(change, 'f', -1, 64),
		ChangePercent: strconv.FormatFloat(changePercent, 'f', -1, 64),
		Currency:      m.Currency,
		Source:        s.Name(),
	}
	if m.RegularMarketTime > 0 {
		raw.Timestamp = time.Unix(m.RegularMarketTime, 0).UTC()
	}
	return raw, nil
}
