package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/droplogistics/internal/common"
)

func TestRegistrationForm_Validate(t *testing.T) {
	ok := RegistrationForm{FullName: "A", Email: "a@b.com", Phone: "1", Password: "secret", ConfirmPassword: "secret"}

	tests := []struct {
		name   string
		mutate func(f *RegistrationForm)
		field  string
		reason Reason
	}{
		{"valid", func(*RegistrationForm) {}, "", ""},
		{"missing name", func(f *RegistrationForm) { f.FullName = "" }, "fullName", ReasonRequired},
		{"blank phone", func(f *RegistrationForm) { f.Phone = "  " }, "phone", ReasonRequired},
		{"bad email", func(f *RegistrationForm) { f.Email = "ab.com" }, "email", ReasonInvalidEmail},
		{"short password", func(f *RegistrationForm) { f.Password, f.ConfirmPassword = "12345", "12345" }, "password", ReasonTooShort},
		{"mismatch", func(f *RegistrationForm) { f.ConfirmPassword = "secreT" }, "confirmPassword", ReasonMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ok
			tt.mutate(&f)
			err := f.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, common.ErrorValidation)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestLoginForm_Validate(t *testing.T) {
	require.NoError(t, LoginForm{Email: "a@b.com", Password: "x"}.Validate())

	var ve *ValidationError
	require.ErrorAs(t, LoginForm{Email: "a@b.com"}.Validate(), &ve)
	assert.Equal(t, ReasonRequired, ve.Reason)

	require.ErrorAs(t, LoginForm{Email: "ab.com", Password: "x"}.Validate(), &ve)
	assert.Equal(t, ReasonInvalidEmail, ve.Reason)
}

func assertValidation(t *testing.T, err error, field string, reason Reason) {
	t.Helper()
	if field == "" {
		require.NoError(t, err)
		return
	}
	require.ErrorIs(t, err, common.ErrorValidation)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
	assert.Equal(t, reason, ve.Reason)
}

func TestShipmentDraft_Validate(t *testing.T) {
	ok := ShipmentDraft{
		CargoID:         "1",
		Weight:          "2.5",
		Description:     "Clothes",
		RecipientName:   "Ali",
		RecipientPhone:  "+992900000000",
		DeliveryAddress: "Dushanbe, Rudaki 10",
	}

	tests := []struct {
		name   string
		mutate func(d *ShipmentDraft)
		field  string
		reason Reason
	}{
		{"valid without optional fields", func(*ShipmentDraft) {}, "", ""},
		{"valid with optional fields", func(d *ShipmentDraft) { d.EstimatedValue, d.Instructions = "120", "fragile" }, "", ""},
		{"comma decimal weight", func(d *ShipmentDraft) { d.Weight = "2,5" }, "", ""},
		{"missing cargo", func(d *ShipmentDraft) { d.CargoID = "" }, "cargo", ReasonRequired},
		{"missing weight", func(d *ShipmentDraft) { d.Weight = "" }, "weight", ReasonRequired},
		{"blank description", func(d *ShipmentDraft) { d.Description = "   " }, "description", ReasonRequired},
		{"missing recipient name", func(d *ShipmentDraft) { d.RecipientName = "" }, "recipientName", ReasonRequired},
		{"missing recipient phone", func(d *ShipmentDraft) { d.RecipientPhone = "" }, "recipientPhone", ReasonRequired},
		{"missing delivery address", func(d *ShipmentDraft) { d.DeliveryAddress = "" }, "deliveryAddress", ReasonRequired},
		{"first missing field wins", func(d *ShipmentDraft) { d.Description, d.DeliveryAddress = "", "" }, "description", ReasonRequired},
		{"weight not a number", func(d *ShipmentDraft) { d.Weight = "heavy" }, "weight", ReasonInvalidNumber},
		{"zero weight", func(d *ShipmentDraft) { d.Weight = "0" }, "weight", ReasonInvalidNumber},
		{"bad estimated value", func(d *ShipmentDraft) { d.EstimatedValue = "-5" }, "estimatedValue", ReasonInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ok
			tt.mutate(&d)
			assertValidation(t, d.Validate(), tt.field, tt.reason)
		})
	}
}

func TestCompanyApplication_Validate(t *testing.T) {
	ok := CompanyApplication{
		Name:             "Silk Road Cargo",
		Address:          "Dushanbe, Somoni 5",
		Phone:            "+992900000001",
		Email:            "info@silkroad.tj",
		PricePerKg:       "3.5",
		DeliveryDays:     "10-14",
		WarehouseAddress: "Guangzhou, Baiyun district",
		WarehouseCity:    "Guangzhou",
	}

	tests := []struct {
		name   string
		mutate func(c *CompanyApplication)
		field  string
		reason Reason
	}{
		{"valid", func(*CompanyApplication) {}, "", ""},
		{"valid with additional info", func(c *CompanyApplication) { c.AdditionalInfo = "air only" }, "", ""},
		{"missing name", func(c *CompanyApplication) { c.Name = "" }, "companyName", ReasonRequired},
		{"missing address", func(c *CompanyApplication) { c.Address = "" }, "companyAddress", ReasonRequired},
		{"missing phone", func(c *CompanyApplication) { c.Phone = " " }, "companyPhone", ReasonRequired},
		{"missing email", func(c *CompanyApplication) { c.Email = "" }, "companyEmail", ReasonRequired},
		{"missing price", func(c *CompanyApplication) { c.PricePerKg = "" }, "pricePerKg", ReasonRequired},
		{"missing delivery time", func(c *CompanyApplication) { c.DeliveryDays = "" }, "deliveryTime", ReasonRequired},
		{"missing warehouse address", func(c *CompanyApplication) { c.WarehouseAddress = "" }, "warehouseAddress", ReasonRequired},
		{"missing warehouse city", func(c *CompanyApplication) { c.WarehouseCity = "" }, "warehouseCity", ReasonRequired},
		{"email without at sign", func(c *CompanyApplication) { c.Email = "info.silkroad.tj" }, "companyEmail", ReasonInvalidEmail},
		{"missing fields before bad email", func(c *CompanyApplication) { c.Email, c.WarehouseCity = "nope", "" }, "warehouseCity", ReasonRequired},
		{"price not a number", func(c *CompanyApplication) { c.PricePerKg = "cheap" }, "pricePerKg", ReasonInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mutate(&c)
			assertValidation(t, c.Validate(), tt.field, tt.reason)
		})
	}
}
