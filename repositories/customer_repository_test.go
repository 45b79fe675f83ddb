package repositories_test

import (
	"errors"
	"testing"

	"dealer-app/database"
	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/utils"
)

func TestCustomerAll_SeedsOnMissingStorage(t *testing.T) {
	store := newMemStore()
	repo := repositories.NewCustomerRepository(store)

	customers := repo.All()
	if len(customers) == 0 {
		t.Fatal("expected seed customers on empty storage, got none")
	}
	if _, ok := store.records[database.KeyCustomers]; !ok {
		t.Error("load on empty storage should persist the seed data")
	}
}

func TestCustomerAll_SeedsOnCorruptStorage(t *testing.T) {
	store := newMemStore()
	store.records[database.KeyCustomers] = []byte("{not json")
	repo := repositories.NewCustomerRepository(store)

	customers := repo.All()
	if len(customers) != len(database.SeedCustomers()) {
		t.Errorf("expected seed dataset after corrupt load, got %d customers", len(customers))
	}
}

func TestCustomerCreate_AssignsIDAndDerivedFields(t *testing.T) {
	store := newMemStore()
	putJSON(t, store, database.KeyCustomers, []models.Customer{
		{ID: "C001"}, {ID: "C003"},
	})
	repo := repositories.NewCustomerRepository(store)

	created, err := repo.Create(models.Customer{
		Name:     "Kenta Mori",
		Furigana: "MORI KENTA",
		Address1: "1-2-3 Sakae",
		Address2: "Bldg 5F",
		DealInfo: models.DealInfo{
			VinNumber:    "22233344455566677",
			CarModel:     "Yaris",
			AuctionHouse: "Auction House B",
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID != "C004" {
		t.Errorf("expected id C004 (max existing + 1), got %s", created.ID)
	}
	if created.AddedDate != utils.Today() {
		t.Errorf("expected addedDate defaulted to today, got %q", created.AddedDate)
	}
	if created.Address != "1-2-3 Sakae Bldg 5F" {
		t.Errorf("unexpected concatenated address %q", created.Address)
	}
	if created.VinNumber != "22233344455566677" || created.CarModel != "Yaris" {
		t.Errorf("dealInfo mirrors not applied: vin=%q model=%q", created.VinNumber, created.CarModel)
	}
	if created.DealInfo.ShippingFee != "¥25,000" {
		t.Errorf("expected shipping fee from auction house table, got %q", created.DealInfo.ShippingFee)
	}
}

func TestCustomerUpdate_NotFound(t *testing.T) {
	store := newMemStore()
	putJSON(t, store, database.KeyCustomers, []models.Customer{{ID: "C001"}})
	repo := repositories.NewCustomerRepository(store)

	_, err := repo.Update("C099", models.Customer{Name: "X", Furigana: "X"})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// The no-op must not change the collection.
	if got := len(repo.All()); got != 1 {
		t.Errorf("collection changed by failed update, len=%d", got)
	}
}

func TestCustomerDelete(t *testing.T) {
	store := newMemStore()
	putJSON(t, store, database.KeyCustomers, []models.Customer{{ID: "C001"}, {ID: "C002"}})
	repo := repositories.NewCustomerRepository(store)

	if err := repo.Delete("C001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID("C001"); !errors.Is(err, repositories.ErrNotFound) {
		t.Error("deleted customer still present")
	}
	if err := repo.Delete("C001"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
