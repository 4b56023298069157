// Command coupon-ingest imports promotional coupon codes published by
// partner feeds. Each feed is a gzip file with one code per line; a code is
// imported only when at least --min-feeds feeds list it.
package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"math/bits"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/storage/postgres"
)

const (
	bloomFPR      = 0.001
	progressEvery = 10_000_000
	minCodeLen    = 8
	maxCodeLen    = 10
	maxFeeds      = 32
)

// codeRule describes the discount granted by a known campaign code.
type codeRule struct {
	discountType coupon.DiscountType
	value        string
	minOrder     string
	maxDiscount  string
	description  string
}

var codeRules = map[string]codeRule{
	"BIRTHDAY": {discountType: coupon.DiscountFixedAmount, value: "250", minOrder: "1000", description: "Birthday: 250 off orders over 1000"},
	"FESTIVE5": {discountType: coupon.DiscountPercentage, value: "5", minOrder: "0", description: "Festive season: 5% off"},
	"FIFTYOFF": {discountType: coupon.DiscountPercentage, value: "50", minOrder: "2000", maxDiscount: "1500", description: "50% off orders over 2000, up to 1500"},
	"FREESHIP": {discountType: coupon.DiscountFixedAmount, value: "50", minOrder: "0", description: "Shipping on us: 50 off"},
	"HAPPYHRS": {discountType: coupon.DiscountPercentage, value: "18", minOrder: "500", maxDiscount: "300", description: "Happy Hours: 18% off, up to 300"},
}

var defaultRule = codeRule{
	discountType: coupon.DiscountPercentage,
	value:        "10",
	minOrder:     "500",
	maxDiscount:  "200",
	description:  "Partner promo: 10% off orders over 500, up to 200",
}

type ingestConfig struct {
	dataDir       string
	databaseURL   string
	minFeeds      int
	expectedCodes uint
	validDays     int
	usageLimit    int
}

// feedResult holds the codes of one feed that other feeds may also list.
type feedResult struct {
	candidates map[string]uint
}

func main() {
	var cfg ingestConfig

	flag.StringVar(&cfg.dataDir, "data-dir", "data", "directory containing the partner *.gz feeds")
	flag.StringVar(&cfg.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.IntVar(&cfg.minFeeds, "min-feeds", 2, "number of feeds that must list a code")
	flag.UintVar(&cfg.expectedCodes, "expected-codes", 120_000_000, "expected codes per feed, sizes the bloom filters")
	flag.IntVar(&cfg.validDays, "valid-days", 90, "days imported coupons stay valid")
	flag.IntVar(&cfg.usageLimit, "usage-limit", 0, "redemptions allowed per coupon, 0 for unlimited")
	flag.Parse()

	if cfg.databaseURL == "" {
		cfg.databaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("coupon ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("coupon ingest completed successfully")
}

func run(ctx context.Context, cfg ingestConfig) error {
	files, err := filepath.Glob(filepath.Join(cfg.dataDir, "*.gz"))
	if err != nil {
		return errors.Wrap(err, "list feeds")
	}
	slices.Sort(files)
	switch {
	case len(files) < cfg.minFeeds:
		return errors.Errorf("found %d feeds in %s, need at least %d", len(files), cfg.dataDir, cfg.minFeeds)
	case len(files) > maxFeeds:
		return errors.Errorf("found %d feeds in %s, at most %d are supported", len(files), cfg.dataDir, maxFeeds)
	}

	// Pass 1: Build bloom filters concurrently.
	slog.Info("pass 1: building bloom filters", slog.Int("feeds", len(files)))

	filters, err := buildBloomFilters(ctx, files, cfg.expectedCodes)
	if err != nil {
		return errors.Wrap(err, "build bloom filters")
	}

	// Pass 2: Find codes listed by enough feeds.
	slog.Info("pass 2: finding candidate codes")

	validCodes, err := findValidCodes(ctx, files, filters, cfg.minFeeds)
	if err != nil {
		return errors.Wrap(err, "find valid codes")
	}

	slog.Info("valid codes found", slog.Int("count", len(validCodes)))

	if len(validCodes) == 0 {
		slog.Info("no valid codes to insert")
		return nil
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, cfg.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	coupons, err := buildCoupons(validCodes, time.Now(), cfg)
	if err != nil {
		return err
	}
	if err := writeCoupons(ctx, postgres.NewCouponStore(pool), coupons); err != nil {
		return errors.Wrap(err, "write coupons to database")
	}

	return nil
}

// buildBloomFilters creates one bloom filter per feed, concurrently.
func buildBloomFilters(ctx context.Context, files []string, capacity uint) ([]*bloom.BloomFilter, error) {
	filters := make([]*bloom.BloomFilter, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(buildFilterForFile(ctx, i, f, capacity, filters))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return filters, nil
}

func buildFilterForFile(ctx context.Context, idx int, path string, capacity uint, filters []*bloom.BloomFilter) func() error {
	return func() error {
		filter := bloom.NewWithEstimates(capacity, bloomFPR)
		var count uint64

		if err := streamGzFile(ctx, path, func(code string) {
			if !plausibleCode(code) {
				return
			}
			filter.AddString(code)
			count++
			if count%progressEvery == 0 {
				slog.Info("pass 1 progress", slog.Int("feed", idx+1), slog.Uint64("codes", count))
			}
		}); err != nil {
			return errors.Wrapf(err, "build filter for feed %d", idx+1)
		}

		slog.Info("pass 1 complete", slog.Int("feed", idx+1), slog.Uint64("total_codes", count))

		filters[idx] = filter
		return nil
	}
}

// findValidCodes re-streams each feed and records which feeds hold each
// code that another feed's filter also reports. Bloom false positives are
// removed by requiring minFeeds exact sightings across the merged masks.
func findValidCodes(ctx context.Context, files []string, filters []*bloom.BloomFilter, minFeeds int) ([]string, error) {
	results := make([]feedResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(findCandidatesInFile(ctx, i, f, filters, results))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]uint)
	for _, r := range results {
		for code, mask := range r.candidates {
			merged[code] |= mask
		}
	}

	var valid []string
	for code, mask := range merged {
		if bits.OnesCount(mask) >= minFeeds {
			valid = append(valid, code)
		}
	}
	slices.Sort(valid)

	return valid, nil
}

func findCandidatesInFile(
	ctx context.Context,
	idx int,
	path string,
	filters []*bloom.BloomFilter,
	results []feedResult,
) func() error {
	return func() error {
		candidates := make(map[string]uint)
		feedBit := uint(1) << uint(idx)
		var count uint64

		if err := streamGzFile(ctx, path, func(code string) {
			if !plausibleCode(code) {
				return
			}

			count++
			if count%progressEvery == 0 {
				slog.Info("pass 2 progress", slog.Int("feed", idx+1), slog.Uint64("codes", count))
			}

			for j, f := range filters {
				if j != idx && f.TestString(code) {
					candidates[code] |= feedBit
					return
				}
			}
		}); err != nil {
			return errors.Wrapf(err, "scan feed %d for candidates", idx+1)
		}

		slog.Info("pass 2 complete",
			slog.Int("feed", idx+1),
			slog.Uint64("total_codes", count),
			slog.Int("candidates", len(candidates)),
		)

		results[idx] = feedResult{candidates: candidates}
		return nil
	}
}

func plausibleCode(code string) bool {
	return len(code) >= minCodeLen && len(code) <= maxCodeLen
}

// streamGzFile opens a gzip-compressed file and calls fn for each line.
func streamGzFile(ctx context.Context, path string, fn func(code string)) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}

	return nil
}

// buildCoupons turns accepted codes into coupon definitions valid from the
// start of today for cfg.validDays.
func buildCoupons(codes []string, now time.Time, cfg ingestConfig) ([]*coupon.Coupon, error) {
	from := now.UTC().Truncate(24 * time.Hour)
	until := from.AddDate(0, 0, cfg.validDays)

	var limit *int
	if cfg.usageLimit > 0 {
		n := cfg.usageLimit
		limit = &n
	}

	out := make([]*coupon.Coupon, 0, len(codes))
	for _, code := range codes {
		rule, ok := codeRules[code]
		if !ok {
			rule = defaultRule
		}

		c := &coupon.Coupon{
			Code:         coupon.NormalizeCode(code),
			Description:  rule.description,
			DiscountType: rule.discountType,
			UsageLimit:   limit,
			ValidFrom:    from,
			ValidUntil:   until,
			IsActive:     true,
		}
		var err error
		if c.Value, err = decimal.NewFromString(rule.value); err != nil {
			return nil, errors.Wrapf(err, "parse value for code %s", code)
		}
		if c.MinimumOrderAmount, err = decimal.NewFromString(rule.minOrder); err != nil {
			return nil, errors.Wrapf(err, "parse minimum order for code %s", code)
		}
		if rule.maxDiscount != "" {
			m, err := decimal.NewFromString(rule.maxDiscount)
			if err != nil {
				return nil, errors.Wrapf(err, "parse maximum discount for code %s", code)
			}
			c.MaximumDiscountAmount = &m
		}
		out = append(out, c)
	}
	return out, nil
}

// writeCoupons upserts the coupons, leaving redemption counts of codes
// imported earlier untouched.
func writeCoupons(ctx context.Context, store *postgres.CouponStore, coupons []*coupon.Coupon) error {
	slog.Info("writing coupons to database", slog.Int("count", len(coupons)))

	for i, c := range coupons {
		requested := 0
		if c.UsageLimit != nil {
			requested = *c.UsageLimit
		}
		if err := store.Upsert(ctx, c); err != nil {
			return err
		}
		if c.UsageLimit != nil && *c.UsageLimit != requested {
			slog.Warn("usage limit raised to current redemptions",
				slog.String("code", c.Code),
				slog.Int("requested", requested),
				slog.Int("stored", *c.UsageLimit),
			)
		}

		if (i+1)%100 == 0 || i+1 == len(coupons) {
			slog.Info("write progress", slog.Int("written", i+1), slog.Int("total", len(coupons)))
		}
	}

	return nil
}
