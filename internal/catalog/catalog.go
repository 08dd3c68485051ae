package catalog

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

func Companies() []Company {
	out := make([]Company, len(companies))
	for i, c := range companies {
		out[i] = c.clone()
	}
	return out
}

func CompanyByID(id string) (Company, bool) {
	for _, c := range companies {
		if c.ID == id {
			return c.clone(), true
		}
	}
	return Company{}, false
}

func (c Company) clone() Company {
	c.TransportTypes = slices.Clone(c.TransportTypes)
	return c
}

// Search matches query as a case-insensitive substring of the company name
// and keeps companies offering any of transports. Empty arguments match all.
func Search(query string, transports []TransportType) []Company {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Company
	for _, c := range companies {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		if len(transports) > 0 && !slices.ContainsFunc(transports, c.Supports) {
			continue
		}
		out = append(out, c.clone())
	}
	return out
}

// Ranked orders companies by rating, best first.
func Ranked() []RankedCompany {
	sorted := Companies()
	slices.SortStableFunc(sorted, func(a, b Company) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})

	out := make([]RankedCompany, len(sorted))
	for i, c := range sorted {
		out[i] = RankedCompany{Company: c, Rank: i + 1}
	}
	return out
}

// Trending returns the n best rated companies.
func Trending(n int) []RankedCompany {
	r := Ranked()
	if n < 0 {
		n = 0
	}
	if n < len(r) {
		r = r[:n]
	}
	return r
}

func WarehousesFor(companyID string) []Warehouse {
	return filterBy(warehouses, func(w Warehouse) bool { return w.CargoID == companyID })
}

func RatesFor(companyID string) []PriceRate {
	return filterBy(priceRates, func(r PriceRate) bool { return r.CargoID == companyID })
}

func ReviewsFor(companyID string) []Review {
	return filterBy(reviews, func(r Review) bool { return r.CargoID == companyID })
}

// Shipments returns the demo shipments.
func Shipments() []shipment.Shipment {
	return cloneShipments(shipments)
}

func ShipmentsFor(userID string) []shipment.Shipment {
	return cloneShipments(filterBy(shipments, func(s shipment.Shipment) bool { return s.UserID == userID }))
}

// FindShipment looks up a tracking number ignoring case and surrounding
// whitespace.
func FindShipment(trackingNumber string) (shipment.Shipment, bool) {
	tn := strings.TrimSpace(trackingNumber)
	if tn == "" {
		return shipment.Shipment{}, false
	}
	for _, s := range shipments {
		if strings.EqualFold(s.TrackingNumber, tn) {
			return cloneShipment(s), true
		}
	}
	return shipment.Shipment{}, false
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func cloneShipment(s shipment.Shipment) shipment.Shipment {
	if s.CodAmount != nil {
		s.CodAmount = ptr(*s.CodAmount)
	}
	return s
}

func cloneShipments(items []shipment.Shipment) []shipment.Shipment {
	out := make([]shipment.Shipment, len(items))
	for i, s := range items {
		out[i] = cloneShipment(s)
	}
	return out
}
