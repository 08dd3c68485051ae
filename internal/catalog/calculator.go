package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// ExchangeRate is the number of Tajik somoni per US dollar.
const ExchangeRate = 11.25

type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHomeGoods   Category = "home_goods"
	CategoryFood        Category = "food"
)

var categoryMultipliers = map[Category]float64{
	CategoryAll:         1,
	CategoryElectronics: 1.2,
	CategoryClothing:    0.9,
	CategoryHomeGoods:   1.0,
	CategoryFood:        1.1,
}

func Categories() []Category {
	return []Category{CategoryAll, CategoryElectronics, CategoryClothing, CategoryHomeGoods, CategoryFood}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, nil
	}
	if _, ok := categoryMultipliers[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Multiplier is the price factor of c; unknown categories price as "all".
func (c Category) Multiplier() float64 {
	if m, ok := categoryMultipliers[c]; ok {
		return m
	}
	return 1
}

type Quote struct {
	CompanyID    string  `json:"companyId"`
	Name         string  `json:"name"`
	Logo         string  `json:"logo"`
	PriceUSD     float64 `json:"priceUsd"`
	PriceTJS     float64 `json:"priceTjs"`
	PricePerKg   float64 `json:"pricePerKg"`
	DeliveryDays int     `json:"deliveryDays"`
	Rating       float64 `json:"rating"`
	IsVerified   bool    `json:"isVerified"`
}

// Calculate prices weightKg with every company that offers transport (an
// empty transport means any). Quotes are ordered by USD price, cheapest
// first. A non-positive weight yields no quotes.
func Calculate(weightKg float64, transport TransportType, category Category) []Quote {
	if !(weightKg > 0) {
		return []Quote{}
	}
	mult := category.Multiplier()

	out := make([]Quote, 0, len(companies))
	for _, c := range companies {
		if transport != "" && !c.Supports(transport) {
			continue
		}
		usd := c.PricePerKg * weightKg * mult
		out = append(out, Quote{
			CompanyID:    c.ID,
			Name:         c.Name,
			Logo:         c.Logo,
			PriceUSD:     usd,
			PriceTJS:     usd * ExchangeRate,
			PricePerKg:   c.PricePerKg,
			DeliveryDays: c.AvgDeliveryDays,
			Rating:       c.Rating,
			IsVerified:   c.IsVerified,
		})
	}

	slices.SortStableFunc(out, func(a, b Quote) int {
		switch {
		case a.PriceUSD < b.PriceUSD:
			return -1
		case a.PriceUSD > b.PriceUSD:
			return 1
		}
		return 0
	})
	return out
}

// Cheapest is the first quote of a price-ordered list.
func Cheapest(quotes []Quote) (Quote, bool) {
	if len(quotes) == 0 {
		return Quote{}, false
	}
	return quotes[0], true
}

// Fastest is the quote with the fewest delivery days; ties go to the
// earlier (cheaper) quote. quotes is not reordered.
func Fastest(quotes []Quote) (Quote, bool) {
	if len(quotes) == 0 {
		return Quote{}, false
	}
	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.DeliveryDays < best.DeliveryDays {
			best = q
		}
	}
	return best, true
}

type Currency string

const (
	USD Currency = "usd"
	TJS Currency = "tjs"
)

func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToLower(strings.TrimSpace(s))); c {
	case "", USD:
		return USD, nil
	case TJS:
		return TJS, nil
	default:
		return "", fmt.Errorf("unknown currency %q", s)
	}
}

// Convert turns amount in from into the other currency.
func Convert(amount float64, from Currency) (float64, Currency) {
	if from == TJS {
		return amount / ExchangeRate, USD
	}
	return amount * ExchangeRate, TJS
}
