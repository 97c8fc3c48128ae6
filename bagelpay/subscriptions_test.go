package bagelpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCancelSubscription_EndOfPeriodSemantics(t *testing.T) {
	periodEnd := time.Now().Add(20 * 24 * time.Hour).UTC().Truncate(time.Second)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasPrefix(r.URL.Path, "/api/subscriptions/cancel/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(Subscription{
			SubscriptionID:   "sub_1",
			Status:           SubscriptionActive,
			BillingPeriodEnd: &periodEnd,
			CancelAt:         &periodEnd,
		})
	})

	sub, err := client.CancelSubscription(context.Background(), "sub_1")
	if err != nil {
		t.Fatalf("cancel subscription: %v", err)
	}
	if sub.Status != SubscriptionActive {
		t.Fatalf("status must stay unchanged until period end, got %s", sub.Status)
	}
	if sub.CancelAt == nil || !sub.CancelAt.After(time.Now()) {
		t.Fatalf("cancel_at must be populated with a future timestamp, got %v", sub.CancelAt)
	}
}

func TestGetSubscription_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"no such subscription","code":40402}`))
	})

	_, err := client.GetSubscription(context.Background(), "sub_missing")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfErr.Message != "no such subscription" {
		t.Fatalf("envelope message not applied: %q", nfErr.Message)
	}
}

func TestGetSubscription_OptionalFieldsAbsent(t *testing.T) {
	// The provider omits optional fields freely; decoding must not require
	// them.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"subscription_id":"sub_2","status":"active"}`))
	})

	sub, err := client.GetSubscription(context.Background(), "sub_2")
	if err != nil {
		t.Fatalf("get subscription: %v", err)
	}
	if sub.TrialStart != nil || sub.TrialEnd != nil || sub.CancelAt != nil || sub.Customer != nil {
		t.Fatalf("absent optionals must stay nil: %+v", sub)
	}
}
