package models

// Inventory item statuses. Only the sync service writes these while a
// binding exists.
const (
	StatusAvailable   = "available"
	StatusNegotiating = "negotiating"
	StatusSold        = "sold"
	StatusCancelled   = "cancelled"
)

const (
	PurchaseAuction = "auction"
	PurchaseTradeIn = "trade_in"
	PurchaseOther   = "other"
)

type VehicleInfo struct {
	VinNumber      string `json:"vinNumber" validate:"required"`
	CarModel       string `json:"carModel"`
	Maker          string `json:"maker"`
	Color          string `json:"color"`
	Grade          string `json:"grade"`
	Year           string `json:"year"`
	Mileage        string `json:"mileage"`
	ModelType      string `json:"modelType"`
	ReferencePrice int    `json:"referencePrice"`
}

// CostItem is one itemized fee or installed option on the purchase side.
type CostItem struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type PurchaseInfo struct {
	PurchaseDate        string     `json:"purchaseDate" validate:"required"`
	PurchaseType        string     `json:"purchaseType"`
	Supplier            string     `json:"supplier"`
	ExpectedArrivalDate string     `json:"expectedArrivalDate"`
	ArrivalDate         string     `json:"arrivalDate"`
	NotifyOnDelay       bool       `json:"notifyOnDelay"`
	PurchaseManager     string     `json:"purchaseManager"`
	Store               string     `json:"store"`
	DepositStatus       string     `json:"depositStatus"`
	DepositAmount       int        `json:"depositAmount"`
	PurchasePrice       int        `json:"purchasePrice"`
	LegalFees           []CostItem `json:"legalFees"`
	Options             []CostItem `json:"options"`
	AutoTax             int        `json:"autoTax"`
	AutoTaxEnv          int        `json:"autoTaxEnv"`
	WeightTax           int        `json:"weightTax"`
	CompulsoryInsurance int        `json:"compulsoryInsurance"`
	VoluntaryInsurance  int        `json:"voluntaryInsurance"`
	TotalAmount         int        `json:"totalAmount"`
}

type SalesInfo struct {
	DisplayLocation string `json:"displayLocation"`
	SalesPrice      int    `json:"salesPrice" validate:"required"`
	OnlinePosted    bool   `json:"onlinePosted"`
	Notes           string `json:"notes"`
}

type InventoryItem struct {
	ID           string       `json:"id"`
	VehicleInfo  VehicleInfo  `json:"vehicleInfo"`
	PurchaseInfo PurchaseInfo `json:"purchaseInfo"`
	SalesInfo    SalesInfo    `json:"salesInfo"`
	Status       string       `json:"status"`
	CustomerID   *string      `json:"customerId"`
	ReservedDate string       `json:"reservedDate"`
	SoldDate     string       `json:"soldDate"`
}
