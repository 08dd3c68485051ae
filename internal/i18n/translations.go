package i18n

// Translations is the per-language string table used by the CLI.
type Translations struct {
	Welcome        string `yaml:"welcome"`
	HelpLoggedOut  string `yaml:"help_logged_out"`
	HelpLoggedIn   string `yaml:"help_logged_in"`
	Error          string `yaml:"error"`
	Success        string `yaml:"success"`
	UnknownCommand string `yaml:"unknown_command"`
	Usage          string `yaml:"usage"`
	Bye            string `yaml:"bye"`
	Online         string `yaml:"online"`
	Offline        string `yaml:"offline"`

	FillAllFields       string `yaml:"fill_all_fields"`
	InvalidEmail        string `yaml:"invalid_email"`
	PasswordTooShort    string `yaml:"password_too_short"`
	PasswordsDoNotMatch string `yaml:"passwords_do_not_match"`
	InvalidNumber       string `yaml:"invalid_number"`

	Register        string `yaml:"register"`
	RegisterSuccess string `yaml:"register_success"`
	RegisterFailed  string `yaml:"register_failed"`
	LoginSuccess    string `yaml:"login_success"`
	LoginFailed     string `yaml:"login_failed"`
	LogoutSuccess   string `yaml:"logout_success"`
	NotLoggedIn     string `yaml:"not_logged_in"`
	Password        string `yaml:"password"`
	ConfirmPassword string `yaml:"confirm_password"`

	Profile        string `yaml:"profile"`
	ProfileUpdated string `yaml:"profile_updated"`
	KeepCurrent    string `yaml:"keep_current"`
	FullName       string `yaml:"full_name"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	Address        string `yaml:"address"`
	MemberSince    string `yaml:"member_since"`

	AllCompanies    string `yaml:"all_companies"`
	Trending        string `yaml:"trending"`
	NoCompanies     string `yaml:"no_companies"`
	CompanyNotFound string `yaml:"company_not_found"`
	Rating          string `yaml:"rating"`
	Reviews         string `yaml:"reviews"`
	PricePerKg      string `yaml:"price_per_kg"`
	DeliveryDays    string `yaml:"delivery_days"`
	Reliability     string `yaml:"reliability"`
	Verified        string `yaml:"verified"`
	Warehouses      string `yaml:"warehouses"`
	Rates           string `yaml:"rates"`
	WorkingHours    string `yaml:"working_hours"`
	MinWeight       string `yaml:"min_weight"`
	Air             string `yaml:"air"`
	Auto            string `yaml:"auto"`
	Rail            string `yaml:"rail"`

	AddedToFavorites     string `yaml:"added_to_favorites"`
	RemovedFromFavorites string `yaml:"removed_from_favorites"`
	Favorites            string `yaml:"favorites"`
	NoFavorites          string `yaml:"no_favorites"`
	FavoritesCleared     string `yaml:"favorites_cleared"`

	History            string `yaml:"history"`
	NoHistory          string `yaml:"no_history"`
	HistoryCleared     string `yaml:"history_cleared"`
	RemovedFromHistory string `yaml:"removed_from_history"`

	Calculator string `yaml:"calculator"`
	Cheapest   string `yaml:"cheapest"`
	Fastest    string `yaml:"fastest"`
	NoResults  string `yaml:"no_results"`

	EnterTrackingNumber string `yaml:"enter_tracking_number"`
	ShipmentNotFound    string `yaml:"shipment_not_found"`
	EstimatedDelivery   string `yaml:"estimated_delivery"`
	Weight              string `yaml:"weight"`
	Warehouse           string `yaml:"warehouse"`
	PickupPoint         string `yaml:"pickup_point"`
	CodAmount           string `yaml:"cod_amount"`

	MyShipments string `yaml:"my_shipments"`
	NoShipments string `yaml:"no_shipments"`
	Total       string `yaml:"total"`
	Active      string `yaml:"active"`
	Delivered   string `yaml:"delivered"`

	EnterRating        string `yaml:"enter_rating"`
	EnterComment       string `yaml:"enter_comment"`
	PleaseSelectRating string `yaml:"please_select_rating"`
	PleaseWriteComment string `yaml:"please_write_comment"`
	Photos             string `yaml:"photos"`
	MaxPhotosReached   string `yaml:"max_photos_reached"`
	ReviewSubmitted    string `yaml:"review_submitted"`

	NewShipment         string `yaml:"new_shipment"`
	PackageWeight       string `yaml:"package_weight"`
	PackageDescription  string `yaml:"package_description"`
	EstimatedValue      string `yaml:"estimated_value"`
	RecipientName       string `yaml:"recipient_name"`
	RecipientPhone      string `yaml:"recipient_phone"`
	DeliveryAddress     string `yaml:"delivery_address"`
	SpecialInstructions string `yaml:"special_instructions"`
	ShipmentCreated     string `yaml:"shipment_created"`

	RegisterYourCompany   string `yaml:"register_your_company"`
	CompanyName           string `yaml:"company_name"`
	CompanyAddress        string `yaml:"company_address"`
	CompanyPhone          string `yaml:"company_phone"`
	CompanyEmail          string `yaml:"company_email"`
	DeliveryTime          string `yaml:"delivery_time"`
	WarehouseAddressChina string `yaml:"warehouse_address_china"`
	WarehouseCity         string `yaml:"warehouse_city"`
	AdditionalInfo        string `yaml:"additional_info"`
	ApplicationSubmitted  string `yaml:"application_submitted"`
	ApplicationMessage    string `yaml:"application_message"`

	Language         string `yaml:"language"`
	LanguageChanged  string `yaml:"language_changed"`
	CacheCleared     string `yaml:"cache_cleared"`
	CacheClearFailed string `yaml:"cache_clear_failed"`
	AllDataCleared   string `yaml:"all_data_cleared"`
	ClearDataFailed  string `yaml:"clear_data_failed"`
}
