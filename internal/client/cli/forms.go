package cli

import (
	"context"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/client/services"
	"github.com/dmitrijs2005/droplogistics/internal/common"
)

type question struct {
	label string
	dst   *string
}

// ask reads one line per question, in order.
func (a *App) ask(questions ...question) error {
	for _, p := range questions {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}
	return nil
}

// NewShipment collects a shipment request for one cargo company. The
// request is acknowledged locally; nothing is sent to the company.
func (a *App) NewShipment(ctx context.Context, args []string) error {
	t := a.t()
	if len(args) != 1 {
		a.usage("newshipment <company-id>")
		return nil
	}
	c, ok := catalog.CompanyByID(args[0])
	if !ok {
		a.println(t.CompanyNotFound)
		return nil
	}
	a.printf("%s: %s\n", t.NewShipment, c.Name)

	d := services.ShipmentDraft{CargoID: c.ID}
	if err := a.ask(
		question{t.PackageWeight, &d.Weight},
		question{t.PackageDescription, &d.Description},
		question{t.EstimatedValue, &d.EstimatedValue},
		question{t.RecipientName, &d.RecipientName},
		question{t.RecipientPhone, &d.RecipientPhone},
		question{t.DeliveryAddress, &d.DeliveryAddress},
		question{t.SpecialInstructions, &d.Instructions},
	); err != nil {
		return err
	}

	if err := d.Validate(); err != nil {
		a.println(a.validationMessage(err))
		return nil
	}

	id, err := common.MakeRandHexString(8)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "shipment requested", "request_id", id, "company", c.ID, "weight", d.Weight)
	a.println(t.ShipmentCreated)
	return nil
}

// RegisterCompany collects an application to list a cargo company.
func (a *App) RegisterCompany(ctx context.Context, _ []string) error {
	t := a.t()
	a.println(t.RegisterYourCompany)

	var app services.CompanyApplication
	if err := a.ask(
		question{t.CompanyName, &app.Name},
		question{t.CompanyAddress, &app.Address},
		question{t.CompanyPhone, &app.Phone},
		question{t.CompanyEmail, &app.Email},
		question{t.PricePerKg, &app.PricePerKg},
		question{t.DeliveryTime, &app.DeliveryDays},
		question{t.WarehouseAddressChina, &app.WarehouseAddress},
		question{t.WarehouseCity, &app.WarehouseCity},
		question{t.AdditionalInfo, &app.AdditionalInfo},
	); err != nil {
		return err
	}

	if err := app.Validate(); err != nil {
		a.println(a.validationMessage(err))
		return nil
	}

	id, err := common.MakeRandHexString(8)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "company application submitted", "application_id", id, "company", app.Name, "city", app.WarehouseCity)
	a.println(t.ApplicationSubmitted)
	a.println(t.ApplicationMessage)
	return nil
}
