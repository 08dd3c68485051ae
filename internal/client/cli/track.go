package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/droplogistics/internal/client/client"
	"github.com/dmitrijs2005/droplogistics/internal/client/services"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

// Track looks a shipment up by tracking number, asking for one when it is
// not given on the command line.
func (a *App) Track(ctx context.Context, args []string) error {
	t := a.t()

	var number string
	if len(args) > 0 {
		number = args[0]
	} else {
		var err error
		if number, err = getSimpleText(a.reader, t.EnterTrackingNumber, a.out); err != nil {
			return err
		}
	}
	if number == "" {
		a.println(t.FillAllFields)
		return nil
	}

	s, src, err := a.tracking.Track(ctx, number)
	switch {
	case errors.Is(err, services.ErrShipmentNotFound):
		a.println(t.ShipmentNotFound)
		return nil
	case err != nil:
		return err
	}

	a.printShipment(s, src)
	return nil
}

// Shipments lists the shipments of the signed-in user with a summary.
// The optional argument narrows the list to active or delivered ones.
func (a *App) Shipments(ctx context.Context, args []string) error {
	t := a.t()

	f := shipment.FilterAll
	if len(args) > 0 {
		var ok bool
		if f, ok = shipment.ParseFilter(args[0]); !ok {
			a.usage("shipments [active|delivered]")
			return nil
		}
	}

	all, src, err := a.tracking.Shipments(ctx, a.session.Token(), shipment.FilterAll)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.println(t.NotLoggedIn)
		return nil
	case err != nil:
		return err
	}

	sum := shipment.Summarize(all)
	a.printf("%s%s\n", t.MyShipments, a.sourceSuffix(src))
	a.printf("  %s: %d | %s: %d | %s: %d\n", t.Total, sum.Total, t.Active, sum.Active, t.Delivered, sum.Delivered)

	items := f.Apply(all)
	if len(items) == 0 {
		a.println(t.NoShipments)
		return nil
	}
	lang := a.language.Language()
	for _, s := range items {
		a.printf("  %-14s %-20s %-24s %g kg\n", s.TrackingNumber, s.CargoName, shipment.Label(s.Status, lang), s.Weight)
	}
	return nil
}

func (a *App) printShipment(s shipment.Shipment, src services.Source) {
	t := a.t()
	lang := a.language.Language()

	a.printf("%s  %s%s\n", s.TrackingNumber, s.CargoName, a.sourceSuffix(src))
	a.printf("  %s\n", shipment.Label(s.Status, lang))
	a.printf("  %s: %g kg\n", t.Weight, s.Weight)
	if s.Description != "" {
		a.printf("  %s\n", s.Description)
	}
	a.printf("  %s: %s\n", t.EstimatedDelivery, s.EstimatedDelivery)
	a.printf("  %s: %s\n", t.Warehouse, s.WarehouseAddress)
	if s.PickupPoint != "" {
		a.printf("  %s: %s\n", t.PickupPoint, s.PickupPoint)
	}
	if s.CodAmount != nil {
		a.printf("  %s: %.2f TJS\n", t.CodAmount, *s.CodAmount)
	}

	for _, st := range shipment.Timeline(s.Status) {
		mark := "[ ]"
		if st.Complete {
			mark = "[x]"
		}
		a.printf("  %s %s\n", mark, shipment.Label(st.Status, lang))
	}
}

func (a *App) sourceSuffix(src services.Source) string {
	if src == services.SourceCatalog {
		return " (" + a.t().Offline + ")"
	}
	return ""
}
