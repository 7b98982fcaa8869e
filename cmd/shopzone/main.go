package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"shopzone/internal/cart"
	"shopzone/internal/catalog"
	"shopzone/internal/config"
	"shopzone/internal/logger"
	"shopzone/internal/order"
	"shopzone/internal/storage"

	"go.uber.org/zap"
)

func main() {
	var (
		page         = flag.Int("page", 0, "catalog page (0 = restore saved state)")
		perPage      = flag.Int("per-page", 10, "items per page")
		sortOrder    = flag.String("sort", "", "sort order: rating_asc|rating_desc|price_asc|price_desc")
		query        = flag.String("query", "", "free-text search")
		category     = flag.String("category", "", "main category filter")
		minPrice     = flag.Float64("min-price", 0, "minimum effective price")
		maxPrice     = flag.Float64("max-price", 0, "maximum effective price")
		discountOnly = flag.Bool("discount-only", false, "only discounted goods")
		source       = flag.String("source", "auto", "source hint: auto|local|remote")
		showOrders   = flag.Bool("orders", false, "list orders instead of querying the catalog")
	)
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := storage.OpenFileStore(cfg.StateDir)
	if err != nil {
		logger.L().Fatal("failed to open state store", zap.Error(err))
	}

	remote := catalog.NewRemoteClient(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPTimeout)
	engine := catalog.NewEngine(remote, catalog.NewPhoneIndex())
	states := catalog.NewStateStore(store)
	cartStore := cart.NewStore(store)
	gateway := order.NewGateway(cfg.APIBaseURL, cfg.APIKey, cfg.HTTPTimeout)

	ctx := context.Background()

	if *showOrders {
		orders, err := gateway.List(ctx)
		if err != nil {
			logger.L().Fatal("failed to list orders", zap.Error(err))
		}
		printJSON(orders)
		return
	}

	state := states.Restore()
	if *page > 0 {
		state = catalog.QueryState{
			Sort: catalog.SortKey(*sortOrder),
			Filters: catalog.FilterSet{
				Category:     *category,
				DiscountOnly: *discountOnly,
				Query:        *query,
				SourceHint:   catalog.Source(*source),
			},
			Page: *page,
		}
		if *minPrice > 0 {
			state.Filters.MinPrice = minPrice
		}
		if *maxPrice > 0 {
			state.Filters.MaxPrice = maxPrice
		}
	}

	res := engine.Query(ctx, catalog.PageRequest{
		Page:    state.Page,
		PerPage: *perPage,
		Sort:    state.Sort,
		Filters: state.Filters,
	})

	if err := states.Save(state); err != nil {
		logger.L().Warn("failed to save query state", zap.Error(err))
	}

	printJSON(struct {
		*catalog.PageResult
		CartCount int `json:"cart_count"`
	}{res, cartStore.Count()})
}

func printJSON(v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.L().Fatal("failed to encode output", zap.Error(err))
	}
	fmt.Fprintln(os.Stdout, string(raw))
}
