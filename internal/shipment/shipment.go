package shipment

// Shipment is an immutable tracking record. Dates are ISO yyyy-mm-dd strings.
type Shipment struct {
	ID                string   `json:"id"`
	UserID            string   `json:"userId"`
	CargoID           string   `json:"cargoId"`
	CargoName         string   `json:"cargoName"`
	TrackingNumber    string   `json:"trackingNumber"`
	Status            Status   `json:"status"`
	Weight            float64  `json:"weight"`
	Description       string   `json:"description"`
	EstimatedDelivery string   `json:"estimatedDelivery"`
	CreatedAt         string   `json:"createdAt"`
	WarehouseAddress  string   `json:"warehouseAddress"`
	PickupPoint       string   `json:"pickupPoint,omitempty"`
	CodAmount         *float64 `json:"codAmount,omitempty"`
}

// Filter selects shipments by lifecycle.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDelivered
)

func ParseFilter(s string) (Filter, bool) {
	switch s {
	case "", "all":
		return FilterAll, true
	case "active":
		return FilterActive, true
	case "delivered":
		return FilterDelivered, true
	}
	return FilterAll, false
}

// Apply returns the matching shipments in their original order.
func (f Filter) Apply(items []Shipment) []Shipment {
	out := make([]Shipment, 0, len(items))
	for _, s := range items {
		switch f {
		case FilterActive:
			if !s.Status.IsActive() {
				continue
			}
		case FilterDelivered:
			if s.Status != StatusDelivered {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

type Summary struct {
	Total     int
	Active    int
	Delivered int
}

func Summarize(items []Shipment) Summary {
	var s Summary
	for _, it := range items {
		s.Total++
		switch {
		case it.Status.IsTerminal():
			s.Delivered++
		case it.Status.IsActive():
			s.Active++
		}
	}
	return s
}
