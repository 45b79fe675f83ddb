package database

import "dealer-app/models"

func strPtr(s string) *string { return &s }

// SeedCustomers returns the default customer dataset used when the
// customers record is missing or unreadable.
func SeedCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:             "C001",
			Name:           "Taro Yamada",
			Furigana:       "YAMADA TARO",
			Phone:          "090-1234-5678",
			Email:          "yamada@example.com",
			PostalCode:     "460-0008",
			Address1:       "Sakae, Naka-ku, Nagoya, Aichi",
			Address2:       "1-2-3 Sample Bldg 4F",
			SalesRep:       "Takahashi",
			AddedDate:      "2025-01-10",
			Store:          "Main Store",
			ContractDate:   "2025-01-15",
			DeliveryStatus: models.DeliveryAwaiting,
			CarType:        "new",
			Address:        "Sakae, Naka-ku, Nagoya, Aichi 1-2-3 Sample Bldg 4F",
			Memo:           "First meeting done",
			CarModel:       "Prius",
			VinNumber:      "12345678901234567",
			DealInfo: models.DealInfo{
				VinNumber:     "12345678901234567",
				CarModel:      "Prius",
				Maker:         "Toyota",
				Color:         "White",
				Grade:         "G",
				Year:          "2023",
				Mileage:       "15000",
				ModelType:     "DAA-ZVW51",
				SalesPrice:    2980000,
				Discount:      50000,
				PaymentMethod: models.PaymentLoan,
				AuctionHouse:  "Auction House A",
				ShippingFee:   "¥30,000",
				Options: []models.DealOption{
					{Category: "exterior", Name: "Floor mats", Amount: 25000},
				},
				DealMemos: []models.DealMemo{
					{ID: "1", Date: "2025-01-10", Content: "Walk-in, initial hearing"},
					{ID: "2", Date: "2025-01-12", Content: "Quote presented, wants to discuss with family"},
				},
				Statuses: models.DealStatuses{
					LineContact: models.DealStatus{Checked: true, Date: "2025-01-10"},
					Contract:    models.DealStatus{Checked: true, Date: "2025-01-15"},
				},
			},
		},
		{
			ID:             "C002",
			Name:           "Hanako Sato",
			Furigana:       "SATO HANAKO",
			Phone:          "080-9876-5432",
			Phone2:         "052-123-4567",
			Email:          "sato.hanako@example.com",
			PostalCode:     "464-0850",
			Address1:       "Imaike, Chikusa-ku, Nagoya, Aichi",
			Address2:       "5-6-7",
			SalesRep:       "Suzuki",
			AddedDate:      "2025-01-05",
			Store:          "Branch A",
			ContractDate:   "2025-01-20",
			DeliveryStatus: models.DeliveryDelivered,
			CarType:        "used",
			Address:        "Imaike, Chikusa-ku, Nagoya, Aichi 5-6-7",
			Memo:           "Referral",
			CarModel:       "Aqua",
			VinNumber:      "98765432109876543",
			DealInfo: models.DealInfo{
				VinNumber:      "98765432109876543",
				CarModel:       "Aqua",
				Maker:          "Toyota",
				Color:          "Blue",
				Grade:          "S",
				Year:           "2021",
				Mileage:        "32000",
				ModelType:      "DAA-NHP10",
				SalesPrice:     1580000,
				IsInstantClose: true,
				PaymentMethod:  models.PaymentCash,
				HasTradeIn:     true,
				AuctionHouse:   "Auction House B",
				ShippingFee:    "¥25,000",
				Options: []models.DealOption{
					{Category: "electronics", Name: "Drive recorder", Amount: 45000},
					{Category: "coating", Name: "Body coating", Amount: 80000},
				},
				DealMemos: []models.DealMemo{
					{ID: "3", Date: "2025-01-05", Content: "Phone inquiry"},
					{ID: "4", Date: "2025-01-08", Content: "Visited, closed on the spot"},
				},
				Statuses: models.DealStatuses{
					LineContact: models.DealStatus{Checked: true, Date: "2025-01-05"},
					Contract:    models.DealStatus{Checked: true, Date: "2025-01-08"},
					FollowUp1:   models.DealStatus{Checked: true, Date: "2025-01-12"},
					Documents:   models.DealStatus{Checked: true, Date: "2025-01-15"},
					Payment:     models.DealStatus{Checked: true, Date: "2025-01-18"},
					Delivered:   models.DealStatus{Checked: true, Date: "2025-01-20"},
				},
			},
		},
		{
			ID:             "C003",
			Name:           "Ichiro Tanaka",
			Furigana:       "TANAKA ICHIRO",
			Phone:          "070-1111-2222",
			Email:          "tanaka@example.com",
			Email2:         "tanaka.sub@example.com",
			PostalCode:     "450-0002",
			Address1:       "Meieki, Nakamura-ku, Nagoya, Aichi",
			Address2:       "3-4-5 ABC Bldg 10F",
			SalesRep:       "Sato",
			AddedDate:      "2025-01-12",
			Store:          "Main Store",
			ContractDate:   "2025-01-18",
			DeliveryStatus: models.DeliveryAwaiting,
			CarType:        "used",
			Address:        "Meieki, Nakamura-ku, Nagoya, Aichi 3-4-5 ABC Bldg 10F",
			Memo:           "Corporate contract",
			CarModel:       "Corolla",
			VinNumber:      "11122233344455566",
			DealInfo: models.DealInfo{
				VinNumber:     "11122233344455566",
				CarModel:      "Corolla",
				Maker:         "Toyota",
				Color:         "Silver",
				Grade:         "W×B",
				Year:          "2022",
				Mileage:       "21000",
				ModelType:     "3BA-ZRE212",
				SalesPrice:    2180000,
				PaymentMethod: models.PaymentLoan,
				DealMemos: []models.DealMemo{
					{ID: "5", Date: "2025-01-12", Content: "Online meeting"},
				},
				Statuses: models.DealStatuses{
					LineContact: models.DealStatus{Checked: true, Date: "2025-01-12"},
					Contract:    models.DealStatus{Checked: true, Date: "2025-01-18"},
				},
			},
		},
		{
			ID:             "C004",
			Name:           "Jiro Suzuki",
			Furigana:       "SUZUKI JIRO",
			Phone:          "090-3333-4444",
			PostalCode:     "468-0073",
			Address1:       "Shiogamaguchi, Tempaku-ku, Nagoya, Aichi",
			Address2:       "2-1-1",
			SalesRep:       "Takahashi",
			AddedDate:      "2025-01-08",
			Store:          "Branch B",
			ContractDate:   "2025-01-22",
			DeliveryStatus: models.DeliveryAwaiting,
			CarType:        "used",
			Address:        "Shiogamaguchi, Tempaku-ku, Nagoya, Aichi 2-1-1",
			Memo:           "Wants trade-in",
			CarModel:       "Fit",
			VinNumber:      "77788899900011122",
			DealInfo: models.DealInfo{
				VinNumber:     "77788899900011122",
				CarModel:      "Fit",
				Maker:         "Honda",
				Color:         "Red",
				Grade:         "Home",
				Year:          "2020",
				Mileage:       "41000",
				ModelType:     "6BA-GR1",
				SalesPrice:    1280000,
				PaymentMethod: models.PaymentCash,
				HasTradeIn:    true,
				AuctionHouse:  "Auction House C",
				ShippingFee:   "¥35,000",
				Statuses: models.DealStatuses{
					LineContact: models.DealStatus{Checked: true, Date: "2025-01-08"},
				},
				NoFollowUp: true,
			},
		},
		{
			ID:             "C005",
			Name:           "Misaki Ito",
			Furigana:       "ITO MISAKI",
			Phone:          "080-5555-6666",
			Phone2:         "052-987-6543",
			Email:          "ito.misaki@example.com",
			PostalCode:     "461-0001",
			Address1:       "Izumi, Higashi-ku, Nagoya, Aichi",
			Address2:       "1-23-45",
			SalesRep:       "Tanaka",
			AddedDate:      "2025-01-14",
			Store:          "Main Store",
			DeliveryStatus: models.DeliveryNegotiating,
			CarType:        "new",
			Address:        "Izumi, Higashi-ku, Nagoya, Aichi 1-23-45",
			Memo:           "Budget to be confirmed",
			DealInfo: models.DealInfo{
				DealMemos: []models.DealMemo{
					{ID: "6", Date: "2025-01-14", Content: "First consultation, comparing several models"},
				},
				Statuses: models.DealStatuses{
					LineContact: models.DealStatus{Checked: true, Date: "2025-01-14"},
				},
			},
		},
	}
}

// SeedInventory returns the default inventory dataset. Binding fields are
// consistent with the seed customers above.
func SeedInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID: "INV001",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "12345678901234567", CarModel: "Prius", Maker: "Toyota",
				Color: "White", Grade: "G", Year: "2023", Mileage: "15000",
				ModelType: "DAA-ZVW51", ReferencePrice: 2850000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2024-12-20", PurchaseType: models.PurchaseAuction,
				Supplier: "USS Nagoya", ExpectedArrivalDate: "2025-01-05",
				ArrivalDate: "2025-01-04", PurchaseManager: "Takahashi",
				Store: "Main Store", DepositStatus: "paid", DepositAmount: 100000,
				PurchasePrice: 2450000,
				LegalFees: []models.CostItem{
					{Name: "Registration", Amount: 35000},
				},
				AutoTax: 36000, WeightTax: 24600, CompulsoryInsurance: 17650,
				TotalAmount: 2563250,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Main Store Lot A", SalesPrice: 2980000,
				OnlinePosted: true,
			},
			Status:       models.StatusSold,
			CustomerID:   strPtr("C001"),
			ReservedDate: "2025-01-15",
			SoldDate:     "2025-01-15",
		},
		{
			ID: "INV002",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "98765432109876543", CarModel: "Aqua", Maker: "Toyota",
				Color: "Blue", Grade: "S", Year: "2021", Mileage: "32000",
				ModelType: "DAA-NHP10", ReferencePrice: 1500000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2024-12-10", PurchaseType: models.PurchaseTradeIn,
				Supplier: "Trade-in (Branch A)", ArrivalDate: "2024-12-10",
				PurchaseManager: "Suzuki", Store: "Branch A",
				DepositStatus: "not_required", PurchasePrice: 1180000,
				AutoTax: 30500, WeightTax: 16400, CompulsoryInsurance: 17650,
				TotalAmount: 1244550,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Branch A Showroom", SalesPrice: 1580000,
				OnlinePosted: true,
			},
			Status:       models.StatusSold,
			CustomerID:   strPtr("C002"),
			ReservedDate: "2025-01-20",
			SoldDate:     "2025-01-20",
		},
		{
			ID: "INV003",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "11122233344455566", CarModel: "Corolla", Maker: "Toyota",
				Color: "Silver", Grade: "W×B", Year: "2022", Mileage: "21000",
				ModelType: "3BA-ZRE212", ReferencePrice: 2050000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2024-12-28", PurchaseType: models.PurchaseAuction,
				Supplier: "TAA Chubu", ExpectedArrivalDate: "2025-01-10",
				ArrivalDate: "2025-01-09", PurchaseManager: "Sato",
				Store: "Main Store", DepositStatus: "paid", DepositAmount: 50000,
				PurchasePrice: 1780000,
				Options: []models.CostItem{
					{Name: "Navigation unit", Amount: 120000},
				},
				AutoTax: 36000, WeightTax: 24600, CompulsoryInsurance: 17650,
				TotalAmount: 1978250,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Main Store Lot B", SalesPrice: 2180000,
			},
			Status:       models.StatusSold,
			CustomerID:   strPtr("C003"),
			ReservedDate: "2025-01-18",
			SoldDate:     "2025-01-18",
		},
		{
			ID: "INV004",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "77788899900011122", CarModel: "Fit", Maker: "Honda",
				Color: "Red", Grade: "Home", Year: "2020", Mileage: "41000",
				ModelType: "6BA-GR1", ReferencePrice: 1200000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2025-01-06", PurchaseType: models.PurchaseAuction,
				Supplier: "USS Nagoya", ExpectedArrivalDate: "2025-01-15",
				ArrivalDate: "", NotifyOnDelay: true, PurchaseManager: "Takahashi",
				Store: "Branch B", DepositStatus: "paid", DepositAmount: 50000,
				PurchasePrice: 980000,
				AutoTax: 30500, WeightTax: 16400, CompulsoryInsurance: 17650,
				TotalAmount: 1044550,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Branch B Lot", SalesPrice: 1280000,
			},
			Status:       models.StatusSold,
			CustomerID:   strPtr("C004"),
			ReservedDate: "2025-01-22",
			SoldDate:     "2025-01-22",
		},
		{
			ID: "INV005",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "22233344455566677", CarModel: "Yaris", Maker: "Toyota",
				Color: "Black", Grade: "X", Year: "2023", Mileage: "9000",
				ModelType: "5BA-KSP210", ReferencePrice: 1650000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2025-01-10", PurchaseType: models.PurchaseAuction,
				Supplier: "TAA Chubu", ExpectedArrivalDate: "2025-01-20",
				ArrivalDate: "2025-01-19", PurchaseManager: "Tanaka",
				Store: "Main Store", DepositStatus: "not_required",
				PurchasePrice: 1380000,
				AutoTax: 25000, WeightTax: 16400, CompulsoryInsurance: 17650,
				TotalAmount: 1439050,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Main Store Lot A", SalesPrice: 1680000,
				OnlinePosted: true,
			},
			Status: models.StatusAvailable,
		},
		{
			ID: "INV006",
			VehicleInfo: models.VehicleInfo{
				VinNumber: "33344455566677788", CarModel: "N-BOX", Maker: "Honda",
				Color: "White", Grade: "Custom L", Year: "2022", Mileage: "18000",
				ModelType: "6BA-JF3", ReferencePrice: 1450000,
			},
			PurchaseInfo: models.PurchaseInfo{
				PurchaseDate: "2024-12-15", PurchaseType: models.PurchaseOther,
				Supplier: "Direct purchase", ArrivalDate: "2024-12-18",
				PurchaseManager: "Suzuki", Store: "Branch A",
				DepositStatus: "not_required", PurchasePrice: 1150000,
				AutoTax: 10800, WeightTax: 9900, CompulsoryInsurance: 17650,
				TotalAmount: 1188350,
			},
			SalesInfo: models.SalesInfo{
				DisplayLocation: "Branch A Showroom", SalesPrice: 1480000,
				Notes:           "Purchase cancelled by previous buyer",
			},
			Status: models.StatusCancelled,
		},
	}
}
