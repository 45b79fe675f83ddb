package services_test

import (
	"encoding/json"
	"testing"

	"dealer-app/database"
	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/services"
	"dealer-app/utils"
)

type memStore struct {
	records map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]byte{}}
}

func (m *memStore) Load(key string) ([]byte, bool) {
	data, ok := m.records[key]
	return data, ok
}

func (m *memStore) Save(key string, data []byte) error {
	m.records[key] = data
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.records, key)
	return nil
}

func putJSON(t *testing.T, store *memStore, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", key, err)
	}
	store.records[key] = data
}

type fixture struct {
	customers *repositories.CustomerRepository
	inventory *repositories.InventoryRepository
	sync      *services.SyncService
}

func newFixture(t *testing.T, customers []models.Customer, items []models.InventoryItem) *fixture {
	t.Helper()
	store := newMemStore()
	putJSON(t, store, database.KeyCustomers, customers)
	putJSON(t, store, database.KeyInventory, items)

	customerRepo := repositories.NewCustomerRepository(store)
	inventoryRepo := repositories.NewInventoryRepository(store)
	return &fixture{
		customers: customerRepo,
		inventory: inventoryRepo,
		sync:      services.NewSyncService(customerRepo, inventoryRepo),
	}
}

func testItem(id, vin string) models.InventoryItem {
	return models.InventoryItem{
		ID: id,
		VehicleInfo: models.VehicleInfo{
			VinNumber: vin, CarModel: "Prius", Maker: "Toyota", Color: "White",
			Grade: "G", Year: "2023", Mileage: "15000", ModelType: "DAA-ZVW51",
		},
		SalesInfo: models.SalesInfo{SalesPrice: 2980000},
		Status:    models.StatusAvailable,
	}
}

func TestDeriveInventoryStatus_Total(t *testing.T) {
	tests := []struct {
		deliveryStatus string
		want           string
	}{
		{models.DeliveryNegotiating, models.StatusNegotiating},
		{models.DeliveryAwaiting, models.StatusSold},
		{models.DeliveryDelivered, models.StatusSold},
		{"", models.StatusAvailable},
		{"something_else", models.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.deliveryStatus, func(t *testing.T) {
			if got := services.DeriveInventoryStatus(tt.deliveryStatus); got != tt.want {
				t.Errorf("DeriveInventoryStatus(%q) = %q, want %q", tt.deliveryStatus, got, tt.want)
			}
		})
	}
}

func TestApplyCustomerBinding_NegotiatingThenDelivered(t *testing.T) {
	const vin = "12345678901234567"
	f := newFixture(t, []models.Customer{}, []models.InventoryItem{testItem("INV001", vin)})

	customer := models.Customer{
		ID:             "C010",
		VinNumber:      vin,
		DeliveryStatus: models.DeliveryNegotiating,
	}
	f.sync.ApplyCustomerBinding(customer, "")

	item, _ := f.inventory.GetByID("INV001")
	if item.Status != models.StatusNegotiating {
		t.Errorf("expected negotiating, got %s", item.Status)
	}
	if item.CustomerID == nil || *item.CustomerID != "C010" {
		t.Error("customerId not set by binding")
	}
	if item.ReservedDate != utils.Today() {
		t.Errorf("expected reservedDate stamped today, got %q", item.ReservedDate)
	}

	// Delivery moves the derived status to sold, stamped with contractDate.
	customer.DeliveryStatus = models.DeliveryDelivered
	customer.ContractDate = "2025-02-01"
	f.sync.ApplyCustomerBinding(customer, vin)

	item, _ = f.inventory.GetByID("INV001")
	if item.Status != models.StatusSold {
		t.Errorf("expected sold, got %s", item.Status)
	}
	if item.SoldDate != "2025-02-01" {
		t.Errorf("expected soldDate from contractDate, got %q", item.SoldDate)
	}
	if item.ReservedDate != "2025-02-01" {
		t.Errorf("expected reservedDate from contractDate, got %q", item.ReservedDate)
	}
}

func TestApplyCustomerBinding_UnknownVinTolerated(t *testing.T) {
	f := newFixture(t, []models.Customer{}, []models.InventoryItem{testItem("INV001", "12345678901234567")})

	customer := models.Customer{
		ID:             "C010",
		VinNumber:      "00000000000000000",
		DeliveryStatus: models.DeliveryNegotiating,
	}
	f.sync.ApplyCustomerBinding(customer, "")

	item, _ := f.inventory.GetByID("INV001")
	if item.Status != models.StatusAvailable || item.CustomerID != nil {
		t.Error("binding with unknown VIN must not touch inventory")
	}
}

func TestApplyCustomerBinding_VinChangeReleasesOldItem(t *testing.T) {
	const vinA = "12345678901234567"
	const vinB = "98765432109876543"
	f := newFixture(t, []models.Customer{}, []models.InventoryItem{
		testItem("INV001", vinA),
		testItem("INV002", vinB),
	})

	customer := models.Customer{ID: "C010", VinNumber: vinA, DeliveryStatus: models.DeliveryNegotiating}
	f.sync.ApplyCustomerBinding(customer, "")

	customer.VinNumber = vinB
	f.sync.ApplyCustomerBinding(customer, vinA)

	oldItem, _ := f.inventory.GetByID("INV001")
	if oldItem.Status != models.StatusAvailable || oldItem.CustomerID != nil ||
		oldItem.ReservedDate != "" || oldItem.SoldDate != "" {
		t.Errorf("old item not released on VIN change: %+v", oldItem)
	}

	newItem, _ := f.inventory.GetByID("INV002")
	if newItem.Status != models.StatusNegotiating || newItem.CustomerID == nil || *newItem.CustomerID != "C010" {
		t.Errorf("new item not bound on VIN change: %+v", newItem)
	}
}

func TestReleaseInventory_RoundTrip(t *testing.T) {
	const vin = "12345678901234567"
	f := newFixture(t, []models.Customer{}, []models.InventoryItem{testItem("INV001", vin)})

	customer := models.Customer{
		ID:             "C010",
		VinNumber:      vin,
		ContractDate:   "2025-02-01",
		DeliveryStatus: models.DeliveryAwaiting,
	}
	f.sync.ApplyCustomerBinding(customer, "")
	f.sync.ReleaseInventory(vin)

	item, _ := f.inventory.GetByID("INV001")
	if item.Status != models.StatusAvailable || item.CustomerID != nil ||
		item.ReservedDate != "" || item.SoldDate != "" {
		t.Errorf("release did not restore pre-binding state: %+v", item)
	}
}

func TestReleaseCustomerBinding_ClearsVinOnly(t *testing.T) {
	const vin = "12345678901234567"
	customerID := "C010"
	customer := models.Customer{
		ID:        customerID,
		Name:      "Kenta Mori",
		Furigana:  "MORI KENTA",
		VinNumber: vin,
		SalesRep:  "Takahashi",
		DealInfo: models.DealInfo{
			VinNumber:  vin,
			CarModel:   "Prius",
			Maker:      "Toyota",
			SalesPrice: 2980000,
		},
	}
	item := testItem("INV001", vin)
	item.Status = models.StatusSold
	item.CustomerID = &customerID

	f := newFixture(t, []models.Customer{customer}, []models.InventoryItem{item})

	f.sync.ReleaseCustomerBinding(item)

	got, err := f.customers.GetByID(customerID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.VinNumber != "" || got.DealInfo.VinNumber != "" {
		t.Errorf("VIN fields not cleared: %q / %q", got.VinNumber, got.DealInfo.VinNumber)
	}
	if got.DealInfo.CarModel != "Prius" || got.DealInfo.SalesPrice != 2980000 {
		t.Error("other deal fields must stay as entered")
	}
}

func TestVehicleSnapshot(t *testing.T) {
	item := testItem("INV001", "12345678901234567")
	deal := models.DealInfo{AuctionHouse: "Auction House A", ShippingFee: "¥30,000"}

	got := services.VehicleSnapshot(deal, item)

	if got.VinNumber != "12345678901234567" || got.CarModel != "Prius" ||
		got.Maker != "Toyota" || got.Year != "2023" || got.SalesPrice != 2980000 {
		t.Errorf("snapshot fields not copied: %+v", got)
	}
	if got.AuctionHouse != "Auction House A" || got.ShippingFee != "¥30,000" {
		t.Error("snapshot must not touch non-vehicle deal fields")
	}
}
