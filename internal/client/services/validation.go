package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/common"
)

const MinPasswordLength = 6

// Reason says why a field was rejected.
type Reason string

const (
	ReasonRequired      Reason = "required"
	ReasonInvalidEmail  Reason = "invalid_email"
	ReasonTooShort      Reason = "too_short"
	ReasonMismatch      Reason = "mismatch"
	ReasonInvalidNumber Reason = "invalid_number"
)

// ValidationError reports the first invalid field of a form. It matches
// common.ErrorValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

type RegistrationForm struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Validate checks that every field is filled, the email looks like one,
// the password is long enough and was typed the same way twice.
func (f RegistrationForm) Validate() error {
	if err := requireAll(
		field{"fullName", f.FullName},
		field{"email", f.Email},
		field{"phone", f.Phone},
		field{"password", f.Password},
		field{"confirmPassword", f.ConfirmPassword},
	); err != nil {
		return err
	}
	if !strings.Contains(f.Email, "@") {
		return &ValidationError{Field: "email", Reason: ReasonInvalidEmail}
	}
	if len([]rune(f.Password)) < MinPasswordLength {
		return &ValidationError{Field: "password", Reason: ReasonTooShort}
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Reason: ReasonMismatch}
	}
	return nil
}

type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" {
		return &ValidationError{Field: "email", Reason: ReasonRequired}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Reason: ReasonRequired}
	}
	if !strings.Contains(f.Email, "@") {
		return &ValidationError{Field: "email", Reason: ReasonInvalidEmail}
	}
	return nil
}

type field struct{ name, value string }

// requireAll returns a ReasonRequired error for the first blank field.
func requireAll(fields ...field) error {
	for _, fld := range fields {
		if strings.TrimSpace(fld.value) == "" {
			return &ValidationError{Field: fld.name, Reason: ReasonRequired}
		}
	}
	return nil
}

// positiveNumber accepts decimals with either a dot or a comma.
func positiveNumber(name, value string) error {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
	if err != nil || v <= 0 {
		return &ValidationError{Field: name, Reason: ReasonInvalidNumber}
	}
	return nil
}

// ShipmentDraft is a shipment request addressed to one cargo company.
// EstimatedValue and Instructions are optional.
type ShipmentDraft struct {
	CargoID         string
	Weight          string
	Description     string
	EstimatedValue  string
	RecipientName   string
	RecipientPhone  string
	DeliveryAddress string
	Instructions    string
}

func (d ShipmentDraft) Validate() error {
	if err := requireAll(
		field{"cargo", d.CargoID},
		field{"weight", d.Weight},
		field{"description", d.Description},
		field{"recipientName", d.RecipientName},
		field{"recipientPhone", d.RecipientPhone},
		field{"deliveryAddress", d.DeliveryAddress},
	); err != nil {
		return err
	}
	if err := positiveNumber("weight", d.Weight); err != nil {
		return err
	}
	if strings.TrimSpace(d.EstimatedValue) != "" {
		return positiveNumber("estimatedValue", d.EstimatedValue)
	}
	return nil
}

// CompanyApplication is a request to list a new cargo company.
// AdditionalInfo is optional.
type CompanyApplication struct {
	Name             string
	Address          string
	Phone            string
	Email            string
	PricePerKg       string
	DeliveryDays     string
	WarehouseAddress string
	WarehouseCity    string
	AdditionalInfo   string
}

func (c CompanyApplication) Validate() error {
	if err := requireAll(
		field{"companyName", c.Name},
		field{"companyAddress", c.Address},
		field{"companyPhone", c.Phone},
		field{"companyEmail", c.Email},
		field{"pricePerKg", c.PricePerKg},
		field{"deliveryTime", c.DeliveryDays},
		field{"warehouseAddress", c.WarehouseAddress},
		field{"warehouseCity", c.WarehouseCity},
	); err != nil {
		return err
	}
	if !strings.Contains(c.Email, "@") {
		return &ValidationError{Field: "companyEmail", Reason: ReasonInvalidEmail}
	}
	return positiveNumber("pricePerKg", c.PricePerKg)
}
