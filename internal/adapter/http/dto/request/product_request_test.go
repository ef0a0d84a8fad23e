package request

import "testing"

func TestProductRequest_ResolveActive(t *testing.T) {
	r := ProductRequest{Name: "Pizza", Price: 25}
	if !r.ResolveActive() {
		t.Fatalf("expected missing active flag to default to true")
	}

	f := false
	r2 := ProductRequest{Name: "Pizza", Price: 25, Active: &f}
	if r2.ResolveActive() {
		t.Fatalf("expected explicit false to be kept")
	}

	tr := true
	r3 := ProductRequest{Name: "Pizza", Price: 25, Active: &tr}
	if !r3.ResolveActive() {
		t.Fatalf("expected explicit true to be kept")
	}
}

func TestInboundMessageRequest_ResolvePhone(t *testing.T) {
	r := InboundMessageRequest{Phone: " 5511999990000 "}
	if got := r.ResolvePhone(); got != "5511999990000" {
		t.Fatalf("expected trimmed phone, got %q", got)
	}

	r2 := InboundMessageRequest{Phone: "   "}
	if got := r2.ResolvePhone(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
