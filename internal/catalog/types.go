// Package catalog is the read-only dataset of cargo companies, their
// warehouses, rates and reviews, plus the demo shipments. All accessors
// return copies so callers cannot mutate the shared data.
package catalog

import (
	"fmt"
	"strings"
)

type TransportType string

const (
	TransportAir  TransportType = "air"
	TransportAuto TransportType = "auto"
	TransportRail TransportType = "rail"
)

func TransportTypes() []TransportType {
	return []TransportType{TransportAir, TransportAuto, TransportRail}
}

func ParseTransport(s string) (TransportType, error) {
	t := TransportType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TransportAir, TransportAuto, TransportRail:
		return t, nil
	}
	return "", fmt.Errorf("unknown transport type %q", s)
}

// ParseTransports reads a comma separated list such as "air,rail".
func ParseTransports(s string) ([]TransportType, error) {
	var out []TransportType
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTransport(part)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type Company struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Logo             string          `json:"logo"`
	Rating           float64         `json:"rating"`
	ReviewCount      int             `json:"reviewCount"`
	PricePerKg       float64         `json:"pricePerKg"`
	AvgDeliveryDays  int             `json:"avgDeliveryDays"`
	ReliabilityScore int             `json:"reliabilityScore"`
	TransportTypes   []TransportType `json:"transportTypes"`
	IsVerified       bool            `json:"isVerified"`
	TotalShipments   int             `json:"totalShipments"`
}

func (c Company) Supports(t TransportType) bool {
	for _, tt := range c.TransportTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// RankedCompany is a company with its 1-based position in the rating table.
type RankedCompany struct {
	Company
	Rank int `json:"rank"`
}

type Warehouse struct {
	ID             string  `json:"id"`
	CargoID        string  `json:"cargoId"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Phone          string  `json:"phone"`
	WorkingHours   string  `json:"workingHours"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ChineseAddress string  `json:"chineseAddress,omitempty"`
}

type PriceRate struct {
	ID            string        `json:"id"`
	CargoID       string        `json:"cargoId"`
	Category      string        `json:"category"`
	PricePerKg    float64       `json:"pricePerKg"`
	TransportType TransportType `json:"transportType"`
	MinWeight     float64       `json:"minWeight,omitempty"`
	EstimatedDays string        `json:"estimatedDays"`
}

type Review struct {
	ID             string `json:"id"`
	CargoID        string `json:"cargoId"`
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	Date           string `json:"date"`
	IsVerified     bool   `json:"isVerified"`
	TrackingNumber string `json:"trackingNumber"`
}
