package models

// Delivery statuses a customer can be in. The inventory status of a bound
// vehicle is derived from this value, never set directly.
const (
	DeliveryNegotiating = "negotiating"
	DeliveryAwaiting    = "awaiting_delivery"
	DeliveryDelivered   = "delivered"
)

const (
	PaymentCash = "cash"
	PaymentLoan = "loan"
)

type DealMemo struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

type DealStatus struct {
	Checked bool   `json:"checked"`
	Date    string `json:"date"`
}

// DealStatuses is the fixed set of milestone flags on a deal.
type DealStatuses struct {
	LineContact DealStatus `json:"lineContact"`
	Contract    DealStatus `json:"contract"`
	FollowUp1   DealStatus `json:"followUp1"`
	FollowUp2   DealStatus `json:"followUp2"`
	Documents   DealStatus `json:"documents"`
	Payment     DealStatus `json:"payment"`
	Delivered   DealStatus `json:"delivered"`
}

// Get returns a pointer to the milestone named by key, or nil for an
// unknown key.
func (s *DealStatuses) Get(key string) *DealStatus {
	switch key {
	case "lineContact":
		return &s.LineContact
	case "contract":
		return &s.Contract
	case "followUp1":
		return &s.FollowUp1
	case "followUp2":
		return &s.FollowUp2
	case "documents":
		return &s.Documents
	case "payment":
		return &s.Payment
	case "delivered":
		return &s.Delivered
	}
	return nil
}

type DealOption struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
}

type DealInfo struct {
	VinNumber      string       `json:"vinNumber"`
	CarModel       string       `json:"carModel"`
	Maker          string       `json:"maker"`
	Color          string       `json:"color"`
	Grade          string       `json:"grade"`
	Year           string       `json:"year"`
	Mileage        string       `json:"mileage"`
	ModelType      string       `json:"modelType"`
	SalesPrice     int          `json:"salesPrice"`
	Discount       int          `json:"discount"`
	Options        []DealOption `json:"options"`
	IsInstantClose bool         `json:"isInstantClose"`
	PaymentMethod  string       `json:"paymentMethod"`
	HasTradeIn     bool         `json:"hasTradeIn"`
	AuctionHouse   string       `json:"auctionHouse"`
	ShippingFee    string       `json:"shippingFee"`
	DealMemos      []DealMemo   `json:"dealMemos"`
	Statuses       DealStatuses `json:"statuses"`
	NoFollowUp     bool         `json:"noFollowUp"`
}

type Customer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	Furigana       string   `json:"furigana" validate:"required"`
	Phone          string   `json:"phone"`
	Phone2         string   `json:"phone2"`
	Email          string   `json:"email"`
	Email2         string   `json:"email2"`
	PostalCode     string   `json:"postalCode"`
	Address1       string   `json:"address1"`
	Address2       string   `json:"address2"`
	SalesRep       string   `json:"salesRep"`
	AddedDate      string   `json:"addedDate"`
	Store          string   `json:"store"`
	ContractDate   string   `json:"contractDate"`
	DeliveryStatus string   `json:"deliveryStatus"`
	CarType        string   `json:"carType"`
	Address        string   `json:"address"`
	Memo           string   `json:"memo"`
	CarModel       string   `json:"carModel"`
	VinNumber      string   `json:"vinNumber"`
	DealInfo       DealInfo `json:"dealInfo"`
}

// ShippingFees maps an auction house to its fixed shipping fee. The fee on a
// deal is always re-derived from this table when the auction house is set.
var ShippingFees = map[string]string{
	"Auction House A": "¥30,000",
	"Auction House B": "¥25,000",
	"Auction House C": "¥35,000",
}
