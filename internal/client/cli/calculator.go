package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
)

// Calculate prices a parcel with every company. The optional arguments are
// a transport type and a cargo category, in any order.
func (a *App) Calculate(_ context.Context, args []string) error {
	t := a.t()
	if len(args) == 0 {
		a.usage("calc <kg> [air|auto|rail] [" + strings.Join(categoryNames(), "|") + "]")
		return nil
	}

	weight, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
	if err != nil || !(weight > 0) {
		a.println(t.InvalidNumber)
		return nil
	}

	var (
		transport catalog.TransportType
		category  = catalog.CategoryAll
	)
	for _, arg := range args[1:] {
		if tt, err := catalog.ParseTransport(arg); err == nil {
			transport = tt
			continue
		}
		cat, err := catalog.ParseCategory(arg)
		if err != nil {
			a.usage("calc <kg> [air|auto|rail] [" + strings.Join(categoryNames(), "|") + "]")
			return nil
		}
		category = cat
	}

	quotes := catalog.Calculate(weight, transport, category)
	a.printf("%s: %g kg\n", t.Calculator, weight)
	if len(quotes) == 0 {
		a.println(t.NoResults)
		return nil
	}

	for _, q := range quotes {
		a.printf("  %s %-24s $%8.2f  %10.2f TJS  %2d d  ★%.1f\n",
			q.Logo, q.Name, q.PriceUSD, q.PriceTJS, q.DeliveryDays, q.Rating)
	}
	if best, ok := catalog.Cheapest(quotes); ok {
		a.printf("%s: %s $%.2f\n", t.Cheapest, best.Name, best.PriceUSD)
	}
	if fast, ok := catalog.Fastest(quotes); ok {
		a.printf("%s: %s %d d\n", t.Fastest, fast.Name, fast.DeliveryDays)
	}
	return nil
}

// Convert converts between USD and TJS at the fixed exchange rate.
func (a *App) Convert(_ context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		a.usage("convert <amount> [usd|tjs]")
		return nil
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
	if err != nil || amount < 0 {
		a.println(a.t().InvalidNumber)
		return nil
	}

	from := catalog.USD
	if len(args) == 2 {
		if from, err = catalog.ParseCurrency(args[1]); err != nil {
			a.usage("convert <amount> [usd|tjs]")
			return nil
		}
	}

	converted, to := catalog.Convert(amount, from)
	a.printf("%.2f %s = %.2f %s\n", amount, strings.ToUpper(string(from)), converted, strings.ToUpper(string(to)))
	return nil
}

func categoryNames() []string {
	cats := catalog.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}
