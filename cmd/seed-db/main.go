package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/user"
	"github.com/xenking/storefront/internal/storage/postgres"
)

type productJSON struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stockQuantity"`
	Image         struct {
		Thumbnail string `json:"thumbnail"`
		Mobile    string `json:"mobile"`
		Tablet    string `json:"tablet"`
		Desktop   string `json:"desktop"`
	} `json:"image"`
}

type seedConfig struct {
	databaseURL  string
	productsFile string
	apiKey       string
	adminAPIKey  string
	pepper       string
	email        string
}

func main() {
	var cfg seedConfig

	flag.StringVar(&cfg.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&cfg.productsFile, "products-file", "db/seed/products.json", "path to products JSON file")
	flag.StringVar(&cfg.apiKey, "api-key", "", "customer API key to seed (or STOREFRONT_SEED_API_KEY env)")
	flag.StringVar(&cfg.adminAPIKey, "admin-api-key", "", "admin API key to seed (or STOREFRONT_SEED_ADMIN_API_KEY env)")
	flag.StringVar(&cfg.pepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or STOREFRONT_API_KEY_PEPPER env)")
	flag.StringVar(&cfg.email, "customer-email", "customer@example.com", "email of the demo customer")
	flag.Parse()

	envDefault(&cfg.databaseURL, "DATABASE_URL")
	envDefault(&cfg.apiKey, "STOREFRONT_SEED_API_KEY")
	envDefault(&cfg.adminAPIKey, "STOREFRONT_SEED_ADMIN_API_KEY")
	envDefault(&cfg.pepper, "STOREFRONT_API_KEY_PEPPER")

	if cfg.databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if cfg.apiKey == "" {
		slog.Error("API key is required: set --api-key or STOREFRONT_SEED_API_KEY")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func envDefault(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func run(ctx context.Context, cfg seedConfig) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, cfg.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	if err := seedProducts(ctx, postgres.NewProductRepository(pool), cfg.productsFile); err != nil {
		return errors.Wrap(err, "seed products")
	}

	if err := seedCoupons(ctx, postgres.NewCouponStore(pool), time.Now()); err != nil {
		return errors.Wrap(err, "seed coupons")
	}

	customer := &user.User{Email: cfg.email, Name: "Demo Customer"}
	if err := postgres.NewUserRepository(pool).Upsert(ctx, customer); err != nil {
		return errors.Wrap(err, "seed customer")
	}
	slog.Info("upserted customer", slog.Int64("id", customer.ID), slog.String("email", customer.Email))

	keys := postgres.NewAPIKeyRepository(pool)
	pepper := []byte(cfg.pepper)
	if err := seedAPIKey(ctx, keys, auth.APIKeyInfo{
		ID:      "customer",
		KeyHash: auth.HashKey(pepper, cfg.apiKey),
		Name:    "Demo customer key",
		UserID:  &customer.ID,
		Scopes:  []string{auth.ScopeOrders},
	}); err != nil {
		return err
	}
	if cfg.adminAPIKey != "" {
		if err := seedAPIKey(ctx, keys, auth.APIKeyInfo{
			ID:      "admin",
			KeyHash: auth.HashKey(pepper, cfg.adminAPIKey),
			Name:    "Store admin key",
			Scopes:  []string{auth.ScopeAdmin},
		}); err != nil {
			return err
		}
	}

	return nil
}

func seedProducts(ctx context.Context, repo *postgres.ProductRepository, productsFile string) error {
	slog.Info("reading products file", slog.String("path", productsFile))

	data, err := os.ReadFile(productsFile)
	if err != nil {
		return errors.Wrap(err, "read products file")
	}

	var products []productJSON
	if err := json.Unmarshal(data, &products); err != nil {
		return errors.Wrap(err, "parse products JSON")
	}

	slog.Info("upserting products", slog.Int("count", len(products)))

	for _, pj := range products {
		p := &product.Product{
			Name:          pj.Name,
			Price:         pj.Price,
			Category:      pj.Category,
			StockQuantity: pj.StockQuantity,
			IsActive:      true,
			Image: product.Image{
				Thumbnail: pj.Image.Thumbnail,
				Mobile:    pj.Image.Mobile,
				Tablet:    pj.Image.Tablet,
				Desktop:   pj.Image.Desktop,
			},
		}
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}

		slog.Info("upserted product", slog.Int64("id", p.ID), slog.String("name", p.Name), slog.Int("stock", p.StockQuantity))
	}

	return nil
}

func seedCoupons(ctx context.Context, store *postgres.CouponStore, now time.Time) error {
	slog.Info("seeding demo coupons")

	maxDiscount := decimal.NewFromInt(100)
	flatLimit := 100
	from := now.Truncate(24 * time.Hour)
	until := from.AddDate(1, 0, 0)

	coupons := []*coupon.Coupon{
		{
			Code:                  "WELCOME10",
			Description:           "10% off orders over 500, up to 100",
			DiscountType:          coupon.DiscountPercentage,
			Value:                 decimal.NewFromInt(10),
			MinimumOrderAmount:    decimal.NewFromInt(500),
			MaximumDiscountAmount: &maxDiscount,
			ValidFrom:             from,
			ValidUntil:            until,
			IsActive:              true,
		},
		{
			Code:               "FLAT50",
			Description:        "50 off orders over 300, first 100 customers",
			DiscountType:       coupon.DiscountFixedAmount,
			Value:              decimal.NewFromInt(50),
			MinimumOrderAmount: decimal.NewFromInt(300),
			UsageLimit:         &flatLimit,
			ValidFrom:          from,
			ValidUntil:         until,
			IsActive:           true,
		},
	}

	for _, c := range coupons {
		if err := store.Upsert(ctx, c); err != nil {
			return err
		}

		slog.Info("upserted coupon", slog.String("code", c.Code), slog.String("description", c.Description))
	}

	return nil
}

func seedAPIKey(ctx context.Context, keys *postgres.APIKeyRepository, info auth.APIKeyInfo) error {
	if err := keys.Upsert(ctx, info); err != nil {
		return errors.Wrapf(err, "seed api key %s", info.ID)
	}
	slog.Info("upserted API key",
		slog.String("id", info.ID),
		slog.String("name", info.Name),
		slog.Any("scopes", info.Scopes),
	)
	return nil
}
