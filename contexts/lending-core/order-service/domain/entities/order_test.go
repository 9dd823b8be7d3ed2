package entities

import "testing"

func allDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryPending,
		DeliveryAwaitingPickup,
		DeliveryDelivered,
		DeliveryCancelledSelf,
		DeliveryCancelledByProvider,
		DeliveryCancelledRefund,
	}
}

func TestCanTransitionTableIsExhaustive(t *testing.T) {
	allowed := map[DeliveryStatus]map[DeliveryStatus]bool{
		DeliveryPending: {
			DeliveryAwaitingPickup:      true,
			DeliveryCancelledSelf:       true,
			DeliveryCancelledByProvider: true,
		},
		DeliveryAwaitingPickup: {
			DeliveryDelivered:           true,
			DeliveryCancelledSelf:       true,
			DeliveryCancelledByProvider: true,
		},
	}

	for _, from := range allDeliveryStatuses() {
		for _, to := range allDeliveryStatuses() {
			got := CanTransition(from, to)
			want := allowed[from][to]
			if got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCancelledRefundIsNeverReachableByCallers(t *testing.T) {
	for _, from := range allDeliveryStatuses() {
		if CanTransition(from, DeliveryCancelledRefund) {
			t.Fatalf("cancelled_refund must not be caller-reachable from %s", from)
		}
	}
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	for _, from := range allDeliveryStatuses() {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range allDeliveryStatuses() {
			if CanTransition(from, to) {
				t.Fatalf("terminal status %s must not transition to %s", from, to)
			}
		}
	}
}

func TestDeliveryStatusValidity(t *testing.T) {
	for _, status := range allDeliveryStatuses() {
		if !status.IsValid() {
			t.Fatalf("status %s should be valid", status)
		}
	}
	if DeliveryStatus("returned").IsValid() {
		t.Fatal("unknown status should be invalid")
	}
}
