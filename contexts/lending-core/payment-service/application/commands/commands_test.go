package commands

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"bookcourier/contexts/lending-core/payment-service/adapters/memory"
	domainerrors "bookcourier/contexts/lending-core/payment-service/domain/errors"
	"bookcourier/contexts/lending-core/payment-service/ports"
)

type recordingReconciler struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingReconciler) MarkPaid(_ context.Context, orderID, trackingID string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, orderID+"/"+trackingID)
	return nil
}

func (r *recordingReconciler) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newConfirmUseCase(store *memory.Store, gateway *memory.FakeGateway, orders *recordingReconciler) ConfirmPaymentUseCase {
	return ConfirmPaymentUseCase{
		Repository:  store,
		Gateway:     gateway,
		Orders:      orders,
		TrackingIDs: store,
		Clock:       store,
		IDGenerator: store,
	}
}

func TestConfirmPaymentUnsettledSessionWritesNothing(t *testing.T) {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	orders := &recordingReconciler{}
	gateway.RegisterSession("cs_1", ports.SessionStatus{
		PaymentStatus: "unpaid",
		OrderID:       "order-1",
	})

	result, err := newConfirmUseCase(store, gateway, orders).Execute(context.Background(), ConfirmPaymentCommand{
		SessionID:      "cs_1",
		RequesterEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("unsettled session must not be an error: %v", err)
	}
	if result.Paid {
		t.Fatal("expected unpaid result")
	}
	if _, found, _ := store.GetBySessionID(context.Background(), "cs_1"); found {
		t.Fatal("unsettled session must not be recorded")
	}
	if orders.callCount() != 0 {
		t.Fatal("unsettled session must not touch the order")
	}
}

func TestConfirmPaymentWinnerMarksOrderPaid(t *testing.T) {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	orders := &recordingReconciler{}
	gateway.RegisterSession("cs_2", ports.SessionStatus{
		PaymentStatus: "paid",
		OrderID:       "order-2",
		BookName:      "Paid Book",
		AmountTotal:   3550,
		Currency:      "usd",
		CustomerEmail: "Buyer@Example.com",
		TransactionID: "pi_123",
	})

	result, err := newConfirmUseCase(store, gateway, orders).Execute(context.Background(), ConfirmPaymentCommand{
		SessionID:      "cs_2",
		RequesterEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if !result.Paid || result.AlreadyProcessed {
		t.Fatalf("expected fresh paid result, got %+v", result)
	}
	if result.Payment.BuyerEmail != "buyer@example.com" {
		t.Fatalf("expected lowercased buyer email, got %q", result.Payment.BuyerEmail)
	}
	if !strings.HasPrefix(result.Payment.TrackingID, "TRK-") {
		t.Fatalf("unexpected tracking id %q", result.Payment.TrackingID)
	}
	if orders.callCount() != 1 {
		t.Fatalf("expected exactly one reconciliation, got %d", orders.callCount())
	}
}

func TestConfirmPaymentReplayDoesNotTouchOrderAgain(t *testing.T) {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	orders := &recordingReconciler{}
	gateway.RegisterSession("cs_3", ports.SessionStatus{
		PaymentStatus: "paid",
		OrderID:       "order-3",
		CustomerEmail: "buyer@example.com",
	})

	confirm := newConfirmUseCase(store, gateway, orders)
	first, err := confirm.Execute(context.Background(), ConfirmPaymentCommand{SessionID: "cs_3"})
	if err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	second, err := confirm.Execute(context.Background(), ConfirmPaymentCommand{SessionID: "cs_3"})
	if err != nil {
		t.Fatalf("replayed confirm failed: %v", err)
	}
	if !second.AlreadyProcessed {
		t.Fatal("expected replay to report already processed")
	}
	if first.Payment.PaymentID != second.Payment.PaymentID {
		t.Fatalf("replay must return the recorded payment, got %s and %s",
			first.Payment.PaymentID, second.Payment.PaymentID)
	}
	if orders.callCount() != 1 {
		t.Fatalf("expected exactly one reconciliation across replays, got %d", orders.callCount())
	}
}

func TestConfirmPaymentConcurrentSingleWinner(t *testing.T) {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	orders := &recordingReconciler{}
	gateway.RegisterSession("cs_4", ports.SessionStatus{
		PaymentStatus: "paid",
		OrderID:       "order-4",
		CustomerEmail: "buyer@example.com",
	})

	confirm := newConfirmUseCase(store, gateway, orders)
	const callers = 8
	var wg sync.WaitGroup
	results := make([]ConfirmPaymentResult, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = confirm.Execute(context.Background(), ConfirmPaymentCommand{SessionID: "cs_4"})
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d failed: %v", i, errs[i])
		}
		if !results[i].AlreadyProcessed {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	if orders.callCount() != 1 {
		t.Fatalf("expected exactly one reconciliation, got %d", orders.callCount())
	}
}

func TestConfirmPaymentGatewayOutage(t *testing.T) {
	store := memory.NewStore()
	gateway := memory.NewFakeGateway()
	gateway.Down = true
	orders := &recordingReconciler{}

	_, err := newConfirmUseCase(store, gateway, orders).Execute(context.Background(), ConfirmPaymentCommand{SessionID: "cs_5"})
	if !errors.Is(err, domainerrors.ErrGatewayUnavailable) {
		t.Fatalf("expected gateway unavailable, got %v", err)
	}
}

func TestCreateCheckoutSessionBuildsRedirectURLs(t *testing.T) {
	gateway := memory.NewFakeGateway()
	create := CreateCheckoutSessionUseCase{
		Gateway:    gateway,
		SiteOrigin: "https://bookcourier.example/",
	}

	result, err := create.Execute(context.Background(), CreateCheckoutSessionCommand{
		OrderID:    "order-9",
		BookName:   "Checkout Book",
		Price:      19.99,
		BuyerEmail: "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if result.SessionID == "" || result.URL == "" {
		t.Fatalf("expected session id and url, got %+v", result)
	}

	status, err := gateway.RetrieveSession(context.Background(), result.SessionID)
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if status.AmountTotal != 1999 {
		t.Fatalf("expected minor-unit amount 1999, got %d", status.AmountTotal)
	}
	if status.OrderID != "order-9" {
		t.Fatalf("expected order id in metadata, got %q", status.OrderID)
	}
}

func TestCreateCheckoutSessionRejectsInvalidInput(t *testing.T) {
	create := CreateCheckoutSessionUseCase{
		Gateway:    memory.NewFakeGateway(),
		SiteOrigin: "https://bookcourier.example",
	}
	_, err := create.Execute(context.Background(), CreateCheckoutSessionCommand{
		OrderID:    "",
		Price:      10,
		BuyerEmail: "buyer@example.com",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPayment) {
		t.Fatalf("expected invalid payment, got %v", err)
	}
}
