package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
)

// trendingCount is how many companies the home screen lists as trending.
const trendingCount = 3

// Companies searches the catalog. Arguments that parse as transport lists
// ("air", "auto,rail") filter by transport, the rest form the query.
func (a *App) Companies(_ context.Context, args []string) error {
	var (
		words      []string
		transports []catalog.TransportType
	)
	for _, arg := range args {
		if tt, err := catalog.ParseTransports(arg); err == nil {
			transports = append(transports, tt...)
			continue
		}
		words = append(words, arg)
	}

	found := catalog.Search(strings.Join(words, " "), transports)
	if len(found) == 0 {
		a.println(a.t().NoCompanies)
		return nil
	}

	a.println(a.t().AllCompanies)
	for _, c := range found {
		a.printCompanyLine(c)
	}
	return nil
}

// Top lists the trending companies followed by the full rating table.
func (a *App) Top(_ context.Context, _ []string) error {
	t := a.t()

	a.println(t.Trending)
	for _, rc := range catalog.Trending(trendingCount) {
		a.printf("%2d. ", rc.Rank)
		a.printCompanyLine(rc.Company)
	}

	a.println(t.AllCompanies)
	for _, rc := range catalog.Ranked() {
		a.printf("%2d. ", rc.Rank)
		a.printCompanyLine(rc.Company)
	}
	return nil
}

// Company shows one company with its warehouses, rates and reviews and
// records the view in the history.
func (a *App) Company(ctx context.Context, args []string) error {
	t := a.t()
	if len(args) != 1 {
		a.usage("company <id>")
		return nil
	}

	c, ok := catalog.CompanyByID(args[0])
	if !ok {
		a.println(t.CompanyNotFound)
		return nil
	}
	if err := a.history.Add(ctx, c.ID, c.Name, c.Logo); err != nil {
		a.log.Warn(ctx, "view not recorded", "company", c.ID, "error", err)
	}

	a.printCompanyLine(c)
	a.printf("  %s: %.1f (%d %s)\n", t.Rating, c.Rating, c.ReviewCount, strings.ToLower(t.Reviews))
	a.printf("  %s: $%.2f\n", t.PricePerKg, c.PricePerKg)
	a.printf("  %s: %d\n", t.DeliveryDays, c.AvgDeliveryDays)
	a.printf("  %s: %d%%\n", t.Reliability, c.ReliabilityScore)
	if a.isLoggedIn() && a.favorites.IsFavorite(c.ID) {
		a.printf("  ♥ %s\n", t.Favorites)
	}

	if ws := catalog.WarehousesFor(c.ID); len(ws) > 0 {
		a.println(t.Warehouses)
		for _, w := range ws {
			a.printf("  %s, %s, %s\n", w.Name, w.City, w.Address)
			a.printf("    %s: %s | %s: %s\n", t.Phone, w.Phone, t.WorkingHours, w.WorkingHours)
			if w.ChineseAddress != "" {
				a.printf("    %s\n", w.ChineseAddress)
			}
		}
	}

	if rates := catalog.RatesFor(c.ID); len(rates) > 0 {
		a.println(t.Rates)
		for _, r := range rates {
			a.printf("  %s / %s: $%.2f/kg, %s", r.Category, a.transportName(r.TransportType), r.PricePerKg, r.EstimatedDays)
			if r.MinWeight > 0 {
				a.printf(", %s %g kg", t.MinWeight, r.MinWeight)
			}
			a.println()
		}
	}

	if reviews := catalog.ReviewsFor(c.ID); len(reviews) > 0 {
		a.println(t.Reviews)
		for _, r := range reviews {
			a.printf("  %s %s %s\n", r.UserName, strings.Repeat("★", r.Rating), r.Date)
			a.printf("    %s\n", r.Comment)
		}
	}
	return nil
}

func (a *App) ToggleFavorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.usage("fav <id>")
		return nil
	}
	c, ok := catalog.CompanyByID(args[0])
	if !ok {
		a.println(a.t().CompanyNotFound)
		return nil
	}

	added, err := a.favorites.Toggle(ctx, c.ID)
	if err != nil {
		return err
	}
	if added {
		a.println(a.t().AddedToFavorites)
	} else {
		a.println(a.t().RemovedFromFavorites)
	}
	return nil
}

func (a *App) Favorites(_ context.Context, _ []string) error {
	ids := a.favorites.Favorites()
	if len(ids) == 0 {
		a.println(a.t().NoFavorites)
		return nil
	}

	a.println(a.t().Favorites)
	for _, id := range ids {
		if c, ok := catalog.CompanyByID(id); ok {
			a.printCompanyLine(c)
		}
	}
	return nil
}

func (a *App) ClearFavorites(ctx context.Context, _ []string) error {
	if err := a.favorites.ClearAll(ctx); err != nil {
		return err
	}
	a.println(a.t().FavoritesCleared)
	return nil
}

// History lists viewed companies, newest first; "history n" shows the n
// most recent ones.
func (a *App) History(_ context.Context, args []string) error {
	entries := a.history.History()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			a.println(a.t().InvalidNumber)
			return nil
		}
		entries = a.history.RecentViews(n)
	}

	if len(entries) == 0 {
		a.println(a.t().NoHistory)
		return nil
	}

	a.println(a.t().History)
	for _, e := range entries {
		viewed := time.UnixMilli(e.ViewedAt).Format("2006-01-02 15:04")
		a.printf("  %s %s (%s)  %s\n", e.CompanyLogo, e.CompanyName, e.CompanyID, viewed)
	}
	return nil
}

func (a *App) RemoveFromHistory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.usage("unhistory <id>")
		return nil
	}
	if err := a.history.Remove(ctx, args[0]); err != nil {
		return err
	}
	a.println(a.t().RemovedFromHistory)
	return nil
}

func (a *App) ClearHistory(ctx context.Context, _ []string) error {
	if err := a.history.Clear(ctx); err != nil {
		return err
	}
	a.println(a.t().HistoryCleared)
	return nil
}

func (a *App) printCompanyLine(c catalog.Company) {
	names := make([]string, 0, len(c.TransportTypes))
	for _, tt := range c.TransportTypes {
		names = append(names, a.transportName(tt))
	}

	verified := ""
	if c.IsVerified {
		verified = " ✓ " + a.t().Verified
	}
	a.printf("%s %s [%s] ★%.1f (%d)  $%.2f/kg  %d d  %s%s\n",
		c.Logo, c.Name, c.ID, c.Rating, c.ReviewCount, c.PricePerKg, c.AvgDeliveryDays,
		strings.Join(names, ", "), verified)
}

func (a *App) transportName(tt catalog.TransportType) string {
	t := a.t()
	switch tt {
	case catalog.TransportAir:
		return t.Air
	case catalog.TransportAuto:
		return t.Auto
	case catalog.TransportRail:
		return t.Rail
	default:
		return string(tt)
	}
}
