package api

import "github.com/dmitrijs2005/droplogistics/internal/shipment"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type TrackRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

type TrackResponse struct {
	Shipment shipment.Shipment `json:"shipment"`
}

// ListShipmentsRequest lists the shipments of the caller identified by
// the access token.
type ListShipmentsRequest struct{}

type ListShipmentsResponse struct {
	Shipments []shipment.Shipment `json:"shipments"`
}
