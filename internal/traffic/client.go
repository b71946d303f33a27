package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tetraedu/desempenho-backend/pkg/config"
	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	"github.com/tetraedu/desempenho-backend/pkg/normalize"
)

// Candidate header spellings per field. The upstream sheet export
// renames columns between PT and EN depending on who last touched it,
// so every field is looked up under all known keys.
var fieldKeys = map[string][]string{
	"date":        {"data", "date", "dia", "day"},
	"spend":       {"investimento", "spend", "valor gasto", "amount_spent", "custo"},
	"impressions": {"impressões", "impressoes", "impressions"},
	"reach":       {"alcance", "reach"},
	"clicks":      {"cliques", "clicks", "cliques no link", "link_clicks"},
	"page_views":  {"visualizações de página", "visualizacoes de pagina", "page_views", "lpv"},
	"leads":       {"leads", "cadastros", "registrations", "resultados"},
}

// Client fetches and normalizes the traffic webhook payload.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient builds a traffic client from config.
func NewClient(cfg config.TrafficConfig) (*Client, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		return nil, fmt.Errorf("traffic webhook url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        cfg.WebhookURL,
	}, nil
}

// Fetch downloads the webhook JSON and maps it to day rows sorted by
// date. Rows without a parseable date are dropped.
func (c *Client) Fetch(ctx context.Context) ([]DayRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build traffic request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch traffic webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("traffic webhook returned status %d", resp.StatusCode))
	}

	var payload []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode traffic payload")
	}

	rows := make([]DayRow, 0, len(payload))
	for _, raw := range payload {
		row := mapRow(raw)
		if row.Date == "" {
			continue
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

func mapRow(raw map[string]any) DayRow {
	folded := make(map[string]any, len(raw))
	for key, value := range raw {
		folded[foldKey(key)] = value
	}

	return DayRow{
		Date:        lookupDate(folded),
		Spend:       lookupNumber(folded, "spend"),
		Impressions: lookupNumber(folded, "impressions"),
		Reach:       lookupNumber(folded, "reach"),
		Clicks:      lookupNumber(folded, "clicks"),
		PageViews:   lookupNumber(folded, "page_views"),
		Leads:       lookupNumber(folded, "leads"),
	}
}

func lookupNumber(folded map[string]any, field string) decimal.Decimal {
	for _, key := range fieldKeys[field] {
		if value, ok := folded[foldKey(key)]; ok {
			return normalize.NumberFromAny(value)
		}
	}
	return decimal.Zero
}

func lookupDate(folded map[string]any) string {
	for _, key := range fieldKeys["date"] {
		value, ok := folded[foldKey(key)]
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if parsed := parseDate(strings.TrimSpace(s)); parsed != "" {
			return parsed
		}
	}
	return ""
}

func parseDate(raw string) string {
	for _, layout := range []string{"2006-01-02", "02/01/2006", "2006-01-02T15:04:05Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func foldKey(key string) string {
	return strings.ToLower(strings.TrimSpace(normalize.StripAccents(key)))
}
