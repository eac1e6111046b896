package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

const (
	yahooDefaultBaseURL = "https://query1.finance.yahoo.com"
	yahooUA             = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

	profileModules = "assetProfile,price"

	annualStatementModules    = "incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory"
	quarterlyStatementModules = "incomeStatementHistoryQuarterly,balanceSheetHistoryQuarterly,cashflowStatementHistoryQuarterly"
)

// YahooProvider fetches stock data from the Yahoo Finance JSON API.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewYahooProvider creates a new Yahoo Finance market data provider.
// An empty baseURL selects the public Yahoo endpoint.
func NewYahooProvider(httpClient *http.Client, baseURL string) *YahooProvider {
	if baseURL == "" {
		baseURL = yahooDefaultBaseURL
	}
	return &YahooProvider{httpClient: httpClient, baseURL: baseURL}
}

// Name returns the provider's display name.
func (p *YahooProvider) Name() string { return "Yahoo Finance" }

// yahooValue is Yahoo's {"raw": n, "fmt": "..."} numeric wrapper. Raw is
// absent for unreported metrics.
type yahooValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *json.RawMessage     `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	AssetProfile *struct {
		Industry string `json:"industry"`
		Sector   string `json:"sector"`
		Country  string `json:"country"`
		Website  string `json:"website"`
	} `json:"assetProfile"`
	Price *struct {
		Symbol       string     `json:"symbol"`
		LongName     string     `json:"longName"`
		ShortName    string     `json:"shortName"`
		Currency     string     `json:"currency"`
		ExchangeName string     `json:"exchangeName"`
		MarketCap    yahooValue `json:"marketCap"`
	} `json:"price"`

	IncomeStatementHistory *struct {
		Statements []incomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`
	IncomeStatementHistoryQuarterly *struct {
		Statements []incomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistoryQuarterly"`
	BalanceSheetHistory *struct {
		Statements []balanceSheet `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistory"`
	BalanceSheetHistoryQuarterly *struct {
		Statements []balanceSheet `json:"balanceSheetStatements"`
	} `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory *struct {
		Statements []cashflowStatement `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory"`
	CashflowStatementHistoryQuarterly *struct {
		Statements []cashflowStatement `json:"cashflowStatements"`
	} `json:"cashflowStatementHistoryQuarterly"`
}

type incomeStatement struct {
	EndDate         yahooValue `json:"endDate"`
	TotalRevenue    yahooValue `json:"totalRevenue"`
	CostOfRevenue   yahooValue `json:"costOfRevenue"`
	GrossProfit     yahooValue `json:"grossProfit"`
	OperatingIncome yahooValue `json:"operatingIncome"`
	NetIncome       yahooValue `json:"netIncome"`
}

type balanceSheet struct {
	EndDate                yahooValue `json:"endDate"`
	TotalAssets            yahooValue `json:"totalAssets"`
	TotalLiab              yahooValue `json:"totalLiab"`
	TotalStockholderEquity yahooValue `json:"totalStockholderEquity"`
}

type cashflowStatement struct {
	EndDate                          yahooValue `json:"endDate"`
	TotalCashFromOperatingActivities yahooValue `json:"totalCashFromOperatingActivities"`
	CapitalExpenditures              yahooValue `json:"capitalExpenditures"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
				Splits map[string]struct {
					Numerator   float64 `json:"numerator"`
					Denominator float64 `json:"denominator"`
					Date        int64   `json:"date"`
				} `json:"splits"`
			} `json:"events"`
		} `json:"result"`
		Error *json.RawMessage `json:"error"`
	} `json:"chart"`
}

// FetchProfile fetches company metadata from the quoteSummary endpoint.
func (p *YahooProvider) FetchProfile(ctx context.Context, symbol string) (*Profile, error) {
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s", p.baseURL, symbol, profileModules)

	var resp quoteSummaryResponse
	if err := p.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, ErrSymbolNotFound
	}

	result := resp.QuoteSummary.Result[0]
	if result.Price == nil || result.Price.Symbol == "" {
		return nil, ErrSymbolNotFound
	}

	profile := &Profile{
		Symbol:    result.Price.Symbol,
		Name:      result.Price.LongName,
		Currency:  result.Price.Currency,
		Exchange:  result.Price.ExchangeName,
		MarketCap: result.Price.MarketCap.Raw,
	}
	if profile.Name == "" {
		profile.Name = result.Price.ShortName
	}
	if profile.Name == "" {
		profile.Name = symbol
	}
	if result.AssetProfile != nil {
		profile.Industry = result.AssetProfile.Industry
		profile.Sector = result.AssetProfile.Sector
		profile.Country = result.AssetProfile.Country
		profile.Website = result.AssetProfile.Website
	}

	return profile, nil
}

// FetchDailyHistory fetches the full daily bar series from the chart endpoint.
func (p *YahooProvider) FetchDailyHistory(ctx context.Context, symbol string) ([]Bar, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=max&interval=1d&events=div%%2Csplit", p.baseURL, symbol)

	var resp chartResponse
	if err := p.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 {
		return nil, ErrSymbolNotFound
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	var adjClose []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adjClose = result.Indicators.AdjClose[0].AdjClose
	}

	// Index corporate actions by calendar date.
	dividends := make(map[time.Time]float64, len(result.Events.Dividends))
	for _, d := range result.Events.Dividends {
		dividends[dateOf(d.Date)] = d.Amount
	}
	splits := make(map[time.Time]float64, len(result.Events.Splits))
	for _, s := range result.Events.Splits {
		if s.Denominator != 0 {
			splits[dateOf(s.Date)] = s.Numerator / s.Denominator
		}
	}

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		date := dateOf(ts)
		bar := Bar{
			Date:        date,
			Open:        at(quote.Open, i),
			High:        at(quote.High, i),
			Low:         at(quote.Low, i),
			Close:       at(quote.Close, i),
			AdjClose:    at(adjClose, i),
			Volume:      at(quote.Volume, i),
			Dividends:   dividends[date],
			StockSplits: splits[date],
		}
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

// FetchStatements fetches annual or quarterly statement history from the
// quoteSummary endpoint, merging income, balance sheet, and cash flow
// modules into one row per period end date.
func (p *YahooProvider) FetchStatements(ctx context.Context, symbol string, period Period) ([]StatementRow, error) {
	modules := annualStatementModules
	if period == PeriodQuarterly {
		modules = quarterlyStatementModules
	}
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s", p.baseURL, symbol, modules)

	var resp quoteSummaryResponse
	if err := p.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, ErrSymbolNotFound
	}
	result := resp.QuoteSummary.Result[0]

	incomes, balances, cashflows := selectStatements(result, period)

	rows := make(map[time.Time]*StatementRow)
	rowFor := func(endDate yahooValue) *StatementRow {
		if endDate.Raw == nil {
			return nil
		}
		date := dateOf(int64(*endDate.Raw))
		row, ok := rows[date]
		if !ok {
			row = &StatementRow{PeriodEndDate: date, Metrics: make(map[string]*float64)}
			rows[date] = row
		}
		return row
	}

	for _, st := range incomes {
		row := rowFor(st.EndDate)
		if row == nil {
			continue
		}
		row.Metrics[MetricTotalRevenue] = st.TotalRevenue.Raw
		row.Metrics[MetricCostOfRevenue] = st.CostOfRevenue.Raw
		row.Metrics[MetricGrossProfit] = st.GrossProfit.Raw
		row.Metrics[MetricOperatingIncome] = st.OperatingIncome.Raw
		row.Metrics[MetricNetIncome] = st.NetIncome.Raw
	}
	for _, st := range balances {
		row := rowFor(st.EndDate)
		if row == nil {
			continue
		}
		row.Metrics[MetricTotalAssets] = st.TotalAssets.Raw
		row.Metrics[MetricTotalLiabilities] = st.TotalLiab.Raw
		row.Metrics[MetricShareholderEquity] = st.TotalStockholderEquity.Raw
	}
	for _, st := range cashflows {
		row := rowFor(st.EndDate)
		if row == nil {
			continue
		}
		row.Metrics[MetricFreeCashFlow] = freeCashFlow(st)
	}

	ordered := make([]StatementRow, 0, len(rows))
	for _, row := range rows {
		ordered = append(ordered, *row)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].PeriodEndDate.Before(ordered[j].PeriodEndDate)
	})
	return ordered, nil
}

// getJSON performs a GET request and decodes the JSON response body.
// A 404 status means Yahoo has no record of the symbol.
func (p *YahooProvider) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// selectStatements picks the module payloads matching the requested period.
func selectStatements(result quoteSummaryResult, period Period) ([]incomeStatement, []balanceSheet, []cashflowStatement) {
	var incomes []incomeStatement
	var balances []balanceSheet
	var cashflows []cashflowStatement

	if period == PeriodQuarterly {
		if result.IncomeStatementHistoryQuarterly != nil {
			incomes = result.IncomeStatementHistoryQuarterly.Statements
		}
		if result.BalanceSheetHistoryQuarterly != nil {
			balances = result.BalanceSheetHistoryQuarterly.Statements
		}
		if result.CashflowStatementHistoryQuarterly != nil {
			cashflows = result.CashflowStatementHistoryQuarterly.Statements
		}
		return incomes, balances, cashflows
	}

	if result.IncomeStatementHistory != nil {
		incomes = result.IncomeStatementHistory.Statements
	}
	if result.BalanceSheetHistory != nil {
		balances = result.BalanceSheetHistory.Statements
	}
	if result.CashflowStatementHistory != nil {
		cashflows = result.CashflowStatementHistory.Statements
	}
	return incomes, balances, cashflows
}

// freeCashFlow derives FCF as operating cash flow plus capital expenditures
// (Yahoo reports capex as a negative number). Nil when operating cash flow
// is unreported.
func freeCashFlow(st cashflowStatement) *float64 {
	if st.TotalCashFromOperatingActivities.Raw == nil {
		return nil
	}
	fcf := *st.TotalCashFromOperatingActivities.Raw
	if st.CapitalExpenditures.Raw != nil {
		fcf += *st.CapitalExpenditures.Raw
	}
	return &fcf
}

// at safely indexes a column that may be shorter than the timestamp series.
func at(col []*float64, i int) *float64 {
	if i >= len(col) {
		return nil
	}
	return col[i]
}

// dateOf converts a Unix timestamp to its UTC calendar date.
func dateOf(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
