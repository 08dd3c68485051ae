// Package shipment holds the shipment record and its status progression.
package shipment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/i18n"
)

// Status is one of the five ordered delivery stages.
type Status string

const (
	StatusPending        Status = "pending"
	StatusInTransit      Status = "in_transit"
	StatusAtCustoms      Status = "at_customs"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusDelivered      Status = "delivered"
)

var ErrUnknownStatus = errors.New("unknown shipment status")

// order is the forward progression; index is the rank.
var order = []Status{
	StatusPending,
	StatusInTransit,
	StatusAtCustoms,
	StatusReadyForPickup,
	StatusDelivered,
}

var rank = func() map[Status]int {
	m := make(map[Status]int, len(order))
	for i, s := range order {
		m[s] = i
	}
	return m
}()

var labels = map[Status]map[i18n.Language]string{
	StatusPending:        {i18n.English: "Pending", i18n.Russian: "Ожидание", i18n.Tajik: "Интизорӣ"},
	StatusInTransit:      {i18n.English: "In Transit", i18n.Russian: "В пути", i18n.Tajik: "Дар роҳ"},
	StatusAtCustoms:      {i18n.English: "At Customs", i18n.Russian: "На таможне", i18n.Tajik: "Дар гумрук"},
	StatusReadyForPickup: {i18n.English: "Ready for Pickup", i18n.Russian: "Готово к выдаче", i18n.Tajik: "Омода барои гирифтан"},
	StatusDelivered:      {i18n.English: "Delivered", i18n.Russian: "Доставлено", i18n.Tajik: "Расонида шуд"},
}

// Statuses returns all stages in forward order.
func Statuses() []Status {
	return append([]Status(nil), order...)
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := rank[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	_, ok := rank[s]
	return ok
}

// Rank is the position of s in the progression, or -1 for unknown values.
func (s Status) Rank() int {
	r, ok := rank[s]
	if !ok {
		return -1
	}
	return r
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

func (s Status) IsActive() bool {
	return s.Valid() && !s.IsTerminal()
}

// Stage is one row of a rendered timeline.
type Stage struct {
	Status   Status
	Complete bool
}

// Timeline lists every stage, marking those at or before current as
// complete. An unknown status yields an all-incomplete timeline.
func Timeline(current Status) []Stage {
	r := current.Rank()
	stages := make([]Stage, len(order))
	for i, s := range order {
		stages[i] = Stage{Status: s, Complete: r >= 0 && i <= r}
	}
	return stages
}

// Label returns the localized stage name, "Unknown" when none exists.
func Label(s Status, lang i18n.Language) string {
	if l, ok := labels[s][lang]; ok {
		return l
	}
	return "Unknown"
}
