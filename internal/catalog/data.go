package catalog

import "github.com/dmitrijs2005/droplogistics/internal/shipment"

// DemoOwnerID owns the demo shipments.
const DemoOwnerID = "current_user"

func ptr(v float64) *float64 { return &v }

var companies = []Company{
	{
		ID:               "1",
		Name:             "ExpressAsia Cargo",
		Logo:             "🚀",
		Rating:           4.8,
		ReviewCount:      2847,
		PricePerKg:       3.5,
		AvgDeliveryDays:  12,
		ReliabilityScore: 98,
		TransportTypes:   []TransportType{TransportAir, TransportAuto},
		IsVerified:       true,
		TotalShipments:   15420,
	},
	{
		ID:               "2",
		Name:             "Silk Road Logistics",
		Logo:             "🛣️",
		Rating:           4.6,
		ReviewCount:      1923,
		PricePerKg:       2.8,
		AvgDeliveryDays:  18,
		ReliabilityScore: 95,
		TransportTypes:   []TransportType{TransportAuto, TransportRail},
		IsVerified:       true,
		TotalShipments:   12350,
	},
	{
		ID:               "3",
		Name:             "Dragon Express",
		Logo:             "🐉",
		Rating:           4.9,
		ReviewCount:      3521,
		PricePerKg:       4.2,
		AvgDeliveryDays:  10,
		ReliabilityScore: 99,
		TransportTypes:   []TransportType{TransportAir},
		IsVerified:       true,
		TotalShipments:   18750,
	},
	{
		ID:               "4",
		Name:             "China-CIS Bridge",
		Logo:             "🌉",
		Rating:           4.5,
		ReviewCount:      1456,
		PricePerKg:       2.5,
		AvgDeliveryDays:  22,
		ReliabilityScore: 92,
		TransportTypes:   []TransportType{TransportRail, TransportAuto},
		IsVerified:       true,
		TotalShipments:   9840,
	},
	{
		ID:               "5",
		Name:             "FastTrack Cargo",
		Logo:             "⚡",
		Rating:           4.7,
		ReviewCount:      2103,
		PricePerKg:       3.8,
		AvgDeliveryDays:  14,
		ReliabilityScore: 96,
		TransportTypes:   []TransportType{TransportAir, TransportAuto},
		IsVerified:       true,
		TotalShipments:   13200,
	},
	{
		ID:               "6",
		Name:             "EconoShip TJ",
		Logo:             "📦",
		Rating:           4.3,
		ReviewCount:      987,
		PricePerKg:       2.2,
		AvgDeliveryDays:  25,
		ReliabilityScore: 89,
		TransportTypes:   []TransportType{TransportAuto},
		IsVerified:       false,
		TotalShipments:   6420,
	},
}

var warehouses = []Warehouse{
	{
		ID:             "w1",
		CargoID:        "1",
		Name:           "Guangzhou Tianhe Hub",
		Address:        "Building 15, Tianhe Software Park, 520 Tianhe Bei Road, Tianhe District",
		City:           "Guangzhou",
		Phone:          "+86 20 3878 5566",
		WorkingHours:   "09:00 - 18:00 (Mon-Sat)",
		Latitude:       23.1291,
		Longitude:      113.2644,
		ChineseAddress: "广东省广州市天河区天河北路520号天河软件园15栋 ExpressAsia仓库",
	},
	{
		ID:             "w2",
		CargoID:        "1",
		Name:           "Yiwu Trade Center",
		Address:        "Gate 3, Building H1-2, Yiwu International Trade City, Chouzhou North Road",
		City:           "Yiwu",
		Phone:          "+86 579 8520 1688",
		WorkingHours:   "08:30 - 19:00 (Daily)",
		Latitude:       29.3069,
		Longitude:      120.0752,
		ChineseAddress: "浙江省义乌市稠州北路国际商贸城H1-2区3号门 ExpressAsia仓库",
	},
	{
		ID:             "w3",
		CargoID:        "2",
		Name:           "Urumqi Logistics Base",
		Address:        "Warehouse Complex A7, Midong Industrial Park, Urumqi Economic Zone",
		City:           "Urumqi",
		Phone:          "+86 991 3856 7890",
		WorkingHours:   "09:00 - 17:00 (Mon-Fri)",
		Latitude:       43.8256,
		Longitude:      87.6168,
		ChineseAddress: "新疆乌鲁木齐市米东工业园区物流园A7号仓库 丝绸之路物流",
	},
	{
		ID:             "w4",
		CargoID:        "3",
		Name:           "Shenzhen Air Cargo Hub",
		Address:        "International Cargo Terminal, Gate 5, Shenzhen Bao'an International Airport",
		City:           "Shenzhen",
		Phone:          "+86 755 2345 8888",
		WorkingHours:   "24/7",
		Latitude:       22.6393,
		Longitude:      113.8108,
		ChineseAddress: "广东省深圳市宝安国际机场国际货运站5号门 Dragon Express",
	},
	{
		ID:             "w5",
		CargoID:        "2",
		Name:           "Guangzhou Baiyun Warehouse",
		Address:        "Zone C, Baiyun District Logistics Park, 1258 Guanghua Road",
		City:           "Guangzhou",
		Phone:          "+86 20 8666 1234",
		WorkingHours:   "08:00 - 20:00 (Daily)",
		Latitude:       23.1867,
		Longitude:      113.2989,
		ChineseAddress: "广东省广州市白云区光华路1258号物流园C区 丝绸之路物流",
	},
	{
		ID:             "w6",
		CargoID:        "5",
		Name:           "Yiwu Futian Market Hub",
		Address:        "District 2, Floor 1, Yiwu Futian Market, Chengzhong Road",
		City:           "Yiwu",
		Phone:          "+86 579 8539 9999",
		WorkingHours:   "08:00 - 18:00 (Mon-Sat)",
		Latitude:       29.3141,
		Longitude:      120.0689,
		ChineseAddress: "浙江省义乌市城中路福田市场2区1楼 FastTrack仓库",
	},
}

var priceRates = []PriceRate{
	{
		ID:            "r1",
		CargoID:       "1",
		Category:      "Электроника (таможенная очистка включена)",
		PricePerKg:    4.0,
		TransportType: TransportAir,
		MinWeight:     0.5,
		EstimatedDays: "10-12 дней",
	},
	{
		ID:            "r2",
		CargoID:       "1",
		Category:      "Одежда и текстиль (бесплатная упаковка)",
		PricePerKg:    3.2,
		TransportType: TransportAir,
		EstimatedDays: "10-12 дней",
	},
	{
		ID:            "r3",
		CargoID:       "1",
		Category:      "Общие товары (страховка груза 2%)",
		PricePerKg:    3.5,
		TransportType: TransportAuto,
		EstimatedDays: "15-18 дней",
	},
	{
		ID:            "r4",
		CargoID:       "2",
		Category:      "Электроника (дополнительная защита)",
		PricePerKg:    3.2,
		TransportType: TransportAuto,
		EstimatedDays: "18-22 дня",
	},
	{
		ID:            "r5",
		CargoID:       "2",
		Category:      "Мебель и крупногабарит (от 10 кг)",
		PricePerKg:    2.5,
		TransportType: TransportRail,
		MinWeight:     10.0,
		EstimatedDays: "25-30 дней",
	},
	{
		ID:            "r6",
		CargoID:       "3",
		Category:      "Электроника экспресс (приоритет)",
		PricePerKg:    4.5,
		TransportType: TransportAir,
		EstimatedDays: "8-10 дней",
	},
	{
		ID:            "r7",
		CargoID:       "3",
		Category:      "Документы (срочная доставка)",
		PricePerKg:    5.0,
		TransportType: TransportAir,
		EstimatedDays: "7-9 дней",
	},
	{
		ID:            "r8",
		CargoID:       "4",
		Category:      "Строительные материалы (контейнер)",
		PricePerKg:    2.0,
		TransportType: TransportRail,
		MinWeight:     50.0,
		EstimatedDays: "30-35 дней",
	},
	{
		ID:            "r9",
		CargoID:       "5",
		Category:      "Косметика и парфюмерия",
		PricePerKg:    3.8,
		TransportType: TransportAir,
		MinWeight:     1.0,
		EstimatedDays: "12-14 дней",
	},
	{
		ID:            "r10",
		CargoID:       "5",
		Category:      "Игрушки и товары для детей",
		PricePerKg:    3.3,
		TransportType: TransportAuto,
		EstimatedDays: "16-20 дней",
	},
}

var reviews = []Review{
	{
		ID:             "rev1",
		CargoID:        "1",
		UserID:         "u1",
		UserName:       "Фаррух М.",
		Rating:         5,
		Comment:        "Отличный сервис! Посылка прибыла за 11 дней, хорошо упакована, никаких проблем на таможне. Буду пользоваться ещё!",
		Date:           "2024-01-15",
		IsVerified:     true,
		TrackingNumber: "EA1234567890TJ",
	},
	{
		ID:             "rev2",
		CargoID:        "1",
		UserID:         "u2",
		UserName:       "Зарина К.",
		Rating:         4,
		Comment:        "Хорошее время доставки, цены адекватные. Служба поддержки могла бы отвечать быстрее, но в целом доволен.",
		Date:           "2024-01-10",
		IsVerified:     true,
		TrackingNumber: "EA9876543210TJ",
	},
	{
		ID:             "rev3",
		CargoID:        "3",
		UserID:         "u3",
		UserName:       "Алишер С.",
		Rating:         5,
		Comment:        "Лучшая карго компания! Быстрая, надёжная и профессиональная. Отслеживание работает отлично. Очень рекомендую!",
		Date:           "2024-01-20",
		IsVerified:     true,
		TrackingNumber: "DE5555666677TJ",
	},
	{
		ID:             "rev4",
		CargoID:        "2",
		UserID:         "u4",
		UserName:       "Дилшод Р.",
		Rating:         4,
		Comment:        "Недорого и качественно. Доставка заняла 19 дней, что в пределах обещанного срока. Упаковка надёжная.",
		Date:           "2024-01-18",
		IsVerified:     true,
		TrackingNumber: "SR2024010088TJ",
	},
	{
		ID:             "rev5",
		CargoID:        "5",
		UserID:         "u5",
		UserName:       "Нигина Х.",
		Rating:         5,
		Comment:        "Заказывала косметику, всё пришло в целости. Менеджеры помогли с оформлением на складе в Иу. Спасибо!",
		Date:           "2024-01-22",
		IsVerified:     true,
		TrackingNumber: "FT2024010120TJ",
	},
	{
		ID:             "rev6",
		CargoID:        "3",
		UserID:         "u6",
		UserName:       "Рустам Т.",
		Rating:         5,
		Comment:        "Экспресс доставка оправдала ожидания - 9 дней! Дорого, но когда срочно нужно - это лучший вариант.",
		Date:           "2024-01-12",
		IsVerified:     true,
		TrackingNumber: "DE2024010055TJ",
	},
}

var shipments = []shipment.Shipment{
	{
		ID:                "s1",
		UserID:            DemoOwnerID,
		CargoID:           "1",
		CargoName:         "ExpressAsia Cargo",
		TrackingNumber:    "EA2024010001TJ",
		Status:            shipment.StatusInTransit,
		Weight:            5.2,
		Description:       "Электроника - смартфон и аксессуары",
		EstimatedDelivery: "2024-02-10",
		CreatedAt:         "2024-01-28",
		WarehouseAddress:  "Guangzhou Tianhe Hub",
		CodAmount:         ptr(204.75),
	},
	{
		ID:                "s2",
		UserID:            DemoOwnerID,
		CargoID:           "3",
		CargoName:         "Dragon Express",
		TrackingNumber:    "DE2024010015TJ",
		Status:            shipment.StatusReadyForPickup,
		Weight:            2.8,
		Description:       "Одежда и обувь",
		EstimatedDelivery: "2024-02-05",
		CreatedAt:         "2024-01-25",
		WarehouseAddress:  "Офис в Душанбе",
		PickupPoint:       "ул. Рудаки 45, здание 12, офис Drop Logistics",
		CodAmount:         ptr(110.25),
	},
	{
		ID:                "s3",
		UserID:            DemoOwnerID,
		CargoID:           "2",
		CargoName:         "Silk Road Logistics",
		TrackingNumber:    "SR2023120050TJ",
		Status:            shipment.StatusDelivered,
		Weight:            12.5,
		Description:       "Бытовая техника",
		EstimatedDelivery: "2024-01-15",
		CreatedAt:         "2023-12-20",
		WarehouseAddress:  "Urumqi Logistics Base",
		PickupPoint:       "г. Худжанд, проспект Ленина 108, склад №3",
		CodAmount:         ptr(492.19),
	},
}
