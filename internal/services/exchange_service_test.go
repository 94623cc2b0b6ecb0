package services

import (
	"context"
	"errors"
	"testing"

	"barterBack/internal/fsm"
	"barterBack/internal/models"
)

type exchangeFixture struct {
	service   *ExchangeService
	exchanges *adBackedExchangeStore
	notifier  *fakeNotifier
	aliceAd   models.Ad
	bobAd     models.Ad
}

func newExchangeFixture(t *testing.T) *exchangeFixture {
	t.Helper()

	ads := newFakeAdStore()
	aliceAd, _ := ads.CreateAd(context.Background(), models.Ad{UserID: 1, Username: "alice", Title: "Телефон"})
	bobAd, _ := ads.CreateAd(context.Background(), models.Ad{UserID: 2, Username: "bob", Title: "Куртка"})

	exchanges := &adBackedExchangeStore{fakeExchangeStore: newFakeExchangeStore(), ads: ads}
	notifier := &fakeNotifier{}
	service := &ExchangeService{
		UserRepo: newFakeUserStore(
			models.User{ID: 1, Username: "alice"},
			models.User{ID: 2, Username: "bob"},
		),
		AdRepo:       ads,
		ExchangeRepo: exchanges,
		Policy:       fsm.PolicyPermissive,
		Notifier:     notifier,
	}
	return &exchangeFixture{
		service:   service,
		exchanges: exchanges,
		notifier:  notifier,
		aliceAd:   aliceAd,
		bobAd:     bobAd,
	}
}

func (f *exchangeFixture) createPending(t *testing.T) models.ExchangeProposal {
	t.Helper()
	result := f.service.CreateExchange(context.Background(), models.ExchangeCreateRequest{
		AdSenderID:   f.aliceAd.ID,
		AdReceiverID: f.bobAd.ID,
		Comment:      "Обменяю на куртку",
	})
	if !result.IsCreated {
		t.Fatalf("seeding exchange failed: %s", result.Message)
	}
	return f.exchanges.exchanges[1]
}

func TestCreateExchange(t *testing.T) {
	f := newExchangeFixture(t)

	result := f.service.CreateExchange(context.Background(), models.ExchangeCreateRequest{
		AdSenderID:   f.aliceAd.ID,
		AdReceiverID: f.bobAd.ID,
		Comment:      "Обменяю на куртку",
	})

	if !result.IsCreated {
		t.Fatalf("want created, got failure: %s", result.Message)
	}
	exchange := f.exchanges.exchanges[1]
	if exchange.Status != fsm.StatusPending {
		t.Errorf("status = %q, want pending", exchange.Status)
	}
	if exchange.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if len(f.notifier.userIDs) != 1 || f.notifier.userIDs[0] != 2 {
		t.Errorf("notified users = %v, want [2]", f.notifier.userIDs)
	}
}

func TestCreateExchangeIgnoresSuppliedStatus(t *testing.T) {
	f := newExchangeFixture(t)

	result := f.service.CreateExchange(context.Background(), models.ExchangeCreateRequest{
		AdSenderID:   f.aliceAd.ID,
		AdReceiverID: f.bobAd.ID,
		Status:       fsm.StatusAccepted,
	})

	if !result.IsCreated {
		t.Fatalf("want created, got failure: %s", result.Message)
	}
	if got := f.exchanges.exchanges[1].Status; got != fsm.StatusPending {
		t.Errorf("status = %q, want pending regardless of supplied status", got)
	}
}

func TestCreateExchangeSameAd(t *testing.T) {
	f := newExchangeFixture(t)

	result := f.service.CreateExchange(context.Background(), models.ExchangeCreateRequest{
		AdSenderID:   f.aliceAd.ID,
		AdReceiverID: f.aliceAd.ID,
	})

	if result.IsCreated {
		t.Fatal("want failure for a self exchange")
	}
	if result.Kind != models.FailureInvariantViolation {
		t.Errorf("kind = %v, want FailureInvariantViolation", result.Kind)
	}
	if len(f.exchanges.exchanges) != 0 {
		t.Errorf("want nothing persisted, got %d exchanges", len(f.exchanges.exchanges))
	}
}

func TestCreateExchangeUnknownSenderAd(t *testing.T) {
	f := newExchangeFixture(t)

	result := f.service.CreateExchange(context.Background(), models.ExchangeCreateRequest{
		AdSenderID:   99,
		AdReceiverID: f.bobAd.ID,
	})

	if result.IsCreated {
		t.Fatal("want failure for an unknown sender ad")
	}
	if result.Message != "Invalid ad_sender_id (99)" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestEditExchange(t *testing.T) {
	f := newExchangeFixture(t)
	exchange := f.createPending(t)
	f.notifier.userIDs = nil

	result := f.service.EditExchange(context.Background(), "bob", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     fsm.StatusAccepted,
	})

	if !result.IsEdited {
		t.Fatalf("want edited, got failure: %s", result.Message)
	}
	if got := f.exchanges.exchanges[exchange.ID].Status; got != fsm.StatusAccepted {
		t.Errorf("status = %q, want accepted", got)
	}
	// The sender side is the counterparty when the receiver acts.
	if len(f.notifier.userIDs) != 1 || f.notifier.userIDs[0] != 1 {
		t.Errorf("notified users = %v, want [1]", f.notifier.userIDs)
	}
}

func TestEditExchangeBySender(t *testing.T) {
	f := newExchangeFixture(t)
	exchange := f.createPending(t)

	result := f.service.EditExchange(context.Background(), "alice", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     fsm.StatusDeclined,
	})

	if !result.IsEdited {
		t.Fatalf("sender-side edit failed: %s", result.Message)
	}
	if got := f.exchanges.exchanges[exchange.ID].Status; got != fsm.StatusDeclined {
		t.Errorf("status = %q, want declined", got)
	}
}

func TestEditExchangeLocalizedStatus(t *testing.T) {
	f := newExchangeFixture(t)
	exchange := f.createPending(t)

	result := f.service.EditExchange(context.Background(), "bob", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     "Принято",
	})

	if !result.IsEdited {
		t.Fatalf("localized status rejected: %s", result.Message)
	}
	if got := f.exchanges.exchanges[exchange.ID].Status; got != fsm.StatusAccepted {
		t.Errorf("status = %q, want accepted", got)
	}
}

func TestEditExchangeUnknownStatus(t *testing.T) {
	f := newExchangeFixture(t)
	exchange := f.createPending(t)

	result := f.service.EditExchange(context.Background(), "bob", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     "maybe",
	})

	if result.IsEdited {
		t.Fatal("want failure for an unknown status")
	}
	if result.Message != "Invalid status: maybe" {
		t.Errorf("message = %q", result.Message)
	}
	if got := f.exchanges.exchanges[exchange.ID].Status; got != fsm.StatusPending {
		t.Errorf("status changed to %q on a failed edit", got)
	}
}

func TestEditExchangeUnauthorized(t *testing.T) {
	f := newExchangeFixture(t)
	exchange := f.createPending(t)

	result := f.service.EditExchange(context.Background(), "charlie", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     fsm.StatusAccepted,
	})

	if result.IsEdited {
		t.Fatal("want failure for a non-counterparty edit")
	}
	want := "Exchange with ID:1 does not belong to the user"
	if result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
	if got := f.exchanges.exchanges[exchange.ID].Status; got != fsm.StatusPending {
		t.Errorf("status changed to %q by an unauthorized edit", got)
	}
}

func TestEditExchangeUnknownID(t *testing.T) {
	f := newExchangeFixture(t)

	result := f.service.EditExchange(context.Background(), "alice", models.ExchangeEditRequest{
		ExchangeID: 42,
		Status:     fsm.StatusAccepted,
	})

	if result.IsEdited {
		t.Fatal("want failure for an unknown exchange")
	}
	if result.Message != "Invalid exchange_id (42)" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestEditExchangeStrictPolicy(t *testing.T) {
	f := newExchangeFixture(t)
	f.service.Policy = fsm.PolicyStrict
	exchange := f.createPending(t)

	accept := f.service.EditExchange(context.Background(), "bob", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     fsm.StatusAccepted,
	})
	if !accept.IsEdited {
		t.Fatalf("pending -> accepted rejected under strict policy: %s", accept.Message)
	}

	revert := f.service.EditExchange(context.Background(), "bob", models.ExchangeEditRequest{
		ExchangeID: exchange.ID,
		Status:     fsm.StatusPending,
	})
	if revert.IsEdited {
		t.Fatal("accepted -> pending allowed under strict policy")
	}
	if revert.Kind != models.FailureInvariantViolation {
		t.Errorf("kind = %v, want FailureInvariantViolation", revert.Kind)
	}
}

func TestListExchangesBySender(t *testing.T) {
	f := newExchangeFixture(t)
	f.createPending(t)

	exchanges, err := f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		SenderUsername: "alice",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 1 {
		t.Fatalf("want 1 exchange for sender alice, got %d", len(exchanges))
	}

	exchanges, err = f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		SenderUsername: "bob",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 0 {
		t.Errorf("want no exchanges for sender bob, got %d", len(exchanges))
	}
}

func TestListExchangesUnknownUsername(t *testing.T) {
	f := newExchangeFixture(t)
	f.createPending(t)

	_, err := f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		SenderUsername: "charlie",
	})
	if !errors.Is(err, models.ErrInvalidFilter) {
		t.Fatalf("err = %v, want ErrInvalidFilter", err)
	}
}

func TestListExchangesStatusFilter(t *testing.T) {
	f := newExchangeFixture(t)
	f.createPending(t)

	exchanges, err := f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		Statuses: []string{fsm.StatusAccepted},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 0 {
		t.Errorf("want no accepted exchanges, got %d", len(exchanges))
	}

	exchanges, err = f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		Statuses: []string{"Ожидает"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 1 {
		t.Errorf("want 1 pending exchange via the localized label, got %d", len(exchanges))
	}
}

func TestListExchangesUnknownStatusLabel(t *testing.T) {
	f := newExchangeFixture(t)
	f.createPending(t)

	exchanges, err := f.service.ListExchanges(context.Background(), models.ExchangeFilterRequest{
		Statuses: []string{"cancelled"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(exchanges) != 0 {
		t.Errorf("unknown status label matched %d exchanges, want 0", len(exchanges))
	}
}
