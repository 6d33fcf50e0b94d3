package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/grana-app/grana_backend/internal/core/domain"
	portsrepo "github.com/grana-app/grana_backend/internal/core/ports/repositories"
	portssvc "github.com/grana-app/grana_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// StaleAfter is the advisory age threshold for the rate table. Rates older
// than this are still used for conversion; callers may surface a warning.
const StaleAfter = 48 * time.Hour

type pairKey struct {
	from string
	to   string
}

// fallbackRates is the static last-line table consulted when the store has no
// rate for a pair. Unknown pairs beyond this fall through to the identity
// rate: an unconvertible amount is displayed at face value rather than
// blocking presentation.
var fallbackRates = map[pairKey]decimal.Decimal{
	{"USD", "BRL"}: decimal.NewFromFloat(5.00),
	{"BRL", "USD"}: decimal.NewFromFloat(0.20),
	{"EUR", "BRL"}: decimal.NewFromFloat(6.10),
	{"BRL", "EUR"}: decimal.NewFromFloat(0.16),
	{"USD", "EUR"}: decimal.NewFromFloat(0.92),
	{"EUR", "USD"}: decimal.NewFromFloat(1.09),
}

// RateTable is the in-memory cache of pairwise exchange rates. It is owned
// explicitly: constructed once per process in main and passed by reference to
// every service that converts amounts. Refresh replaces the table wholesale
// (last-writer-wins, no merge).
type RateTable struct {
	BaseService

	rateRepo portsrepo.ExchangeRateRepositoryFacade
	source   portssvc.RateSource

	mu            sync.RWMutex
	rates         map[pairKey]domain.ExchangeRate
	lastRefreshed time.Time

	sf  singleflight.Group
	now func() time.Time

	listenersMu sync.Mutex
	listeners   map[int]func()
	nextListID  int
}

// RateTableOption is a functional option for configuring the rate table.
type RateTableOption func(*RateTable)

// WithClock overrides the time source, used by tests to control staleness.
func WithClock(now func() time.Time) RateTableOption {
	return func(t *RateTable) {
		t.now = now
	}
}

// NewRateTable creates an empty rate table backed by the given store and
// external FX source.
func NewRateTable(rateRepo portsrepo.ExchangeRateRepositoryFacade, source portssvc.RateSource, options ...RateTableOption) *RateTable {
	t := &RateTable{
		rateRepo:  rateRepo,
		source:    source,
		rates:     make(map[pairKey]domain.ExchangeRate),
		now:       time.Now,
		listeners: make(map[int]func()),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Ensure RateTable implements the RateProviderSvc interface
var _ portssvc.RateProviderSvc = (*RateTable)(nil)

// Bootstrap loads the latest stored rate per pair into memory. A load failure
// is logged and tolerated: the table serves fallback rates until the next
// successful refresh.
func (t *RateTable) Bootstrap(ctx context.Context) {
	rates, err := t.rateRepo.ListLatestRates(ctx)
	if err != nil {
		t.LogError(ctx, err, "Failed to bootstrap rate table from store, serving fallback rates")
		return
	}
	t.replace(rates, t.newestUpdate(rates))
	t.LogInfo(ctx, "Rate table bootstrapped", slog.Int("pairs", len(rates)))
}

// GetRate returns the directional rate for a pair. Identity when from == to,
// then the in-memory table, then the static fallback table, then identity as
// the last resort. Never an error: conversion fails open.
func (t *RateTable) GetRate(fromCurrencyCode, toCurrencyCode string) decimal.Decimal {
	from := strings.ToUpper(fromCurrencyCode)
	to := strings.ToUpper(toCurrencyCode)
	if from == to {
		return decimal.NewFromInt(1)
	}

	if rate, ok := t.resolveRate(from, to); ok {
		return rate
	}

	return decimal.NewFromInt(1)
}

// resolveRate looks a pair up in the in-memory table, then the static
// fallback table. Codes must already be uppercased.
func (t *RateTable) resolveRate(from, to string) (decimal.Decimal, bool) {
	t.mu.RLock()
	rate, ok := t.rates[pairKey{from, to}]
	t.mu.RUnlock()
	if ok {
		return rate.Rate, true
	}

	fallback, ok := fallbackRates[pairKey{from, to}]
	return fallback, ok
}

// Convert converts an amount between currencies, rounding to two decimal
// places exactly once, at the point of conversion. Intermediate sums over
// converted values are never re-rounded. Same-currency and unresolvable
// pairs return the amount unchanged so identity conversion is exact; a
// resolved rate still rounds even when it happens to be exactly 1, as for a
// pegged pair.
func (t *RateTable) Convert(amount decimal.Decimal, fromCurrencyCode, toCurrencyCode string) decimal.Decimal {
	from := strings.ToUpper(fromCurrencyCode)
	to := strings.ToUpper(toCurrencyCode)
	if from == to {
		return amount
	}

	rate, ok := t.resolveRate(from, to)
	if !ok {
		return amount
	}
	return amount.Mul(rate).Round(2)
}

// IsStale reports whether the newest rate data exceeds the StaleAfter
// threshold, or no rate data was ever loaded. Advisory only.
func (t *RateTable) IsStale() bool {
	t.mu.RLock()
	last := t.lastRefreshed
	t.mu.RUnlock()
	if last.IsZero() {
		return true
	}
	return t.now().Sub(last) > StaleAfter
}

// LastRefreshed returns the instant of the last successful refresh or
// bootstrap.
func (t *RateTable) LastRefreshed() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastRefreshed
}

// Refresh fetches fresh rates from the FX source, persists them and replaces
// the in-memory table wholesale. Concurrent callers coalesce into a single
// in-flight provider request.
func (t *RateTable) Refresh(ctx context.Context) error {
	_, err, _ := t.sf.Do("refresh", func() (interface{}, error) {
		rates, err := t.source.FetchRates(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch rates from source: %w", err)
		}

		if err := t.rateRepo.SaveExchangeRates(ctx, rates); err != nil {
			// The store is behind but the fresh rates are still good for
			// display; keep going with the in-memory replace.
			t.LogError(ctx, err, "Failed to persist refreshed rates")
		}

		t.replace(rates, t.now())
		t.LogInfo(ctx, "Rate table refreshed", slog.Int("pairs", len(rates)))
		t.notifyRefresh()
		return nil, nil
	})
	return err
}

// OnRefresh registers a callback fired after each successful refresh. The
// returned function unsubscribes it. The callback must not block.
func (t *RateTable) OnRefresh(fn func()) (unsubscribe func()) {
	t.listenersMu.Lock()
	id := t.nextListID
	t.nextListID++
	t.listeners[id] = fn
	t.listenersMu.Unlock()

	return func() {
		t.listenersMu.Lock()
		delete(t.listeners, id)
		t.listenersMu.Unlock()
	}
}

func (t *RateTable) notifyRefresh() {
	t.listenersMu.Lock()
	fns := make([]func(), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.listenersMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (t *RateTable) replace(rates []domain.ExchangeRate, refreshedAt time.Time) {
	table := make(map[pairKey]domain.ExchangeRate, len(rates))
	for _, rate := range rates {
		key := pairKey{strings.ToUpper(rate.FromCurrencyCode), strings.ToUpper(rate.ToCurrencyCode)}
		// At most one active rate per pair; keep the newest effective date.
		if existing, ok := table[key]; ok && existing.DateEffective.After(rate.DateEffective) {
			continue
		}
		table[key] = rate
	}

	t.mu.Lock()
	t.rates = table
	t.lastRefreshed = refreshedAt
	t.mu.Unlock()
}

// newestUpdate derives the freshness instant for bootstrapped data from the
// stored audit timestamps.
func (t *RateTable) newestUpdate(rates []domain.ExchangeRate) time.Time {
	var newest time.Time
	for _, rate := range rates {
		updated := rate.LastUpdatedAt
		if updated.IsZero() {
			updated = rate.DateEffective
		}
		if updated.After(newest) {
			newest = updated
		}
	}
	return newest
}
