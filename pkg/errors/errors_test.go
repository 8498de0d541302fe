package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataFor(t *testing.T) {
	if got := MetadataFor(CodeInsufficientStock).HTTPStatus; got != http.StatusConflict {
		t.Fatalf("expected 409 for insufficient stock, got %d", got)
	}
	if got := MetadataFor(CodeEmptyCart).HTTPStatus; got != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", got)
	}
	if got := MetadataFor(Code("UNKNOWN")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("unknown codes should fall back to internal, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeDependency, cause, "appending sale records")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if typed := As(fmt.Errorf("finalize: %w", err)); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected typed error through wrapping, got %v", typed)
	}
}

func TestHasCode(t *testing.T) {
	err := New(CodeStockExceeded, "only 1 unit left").WithDetails(map[string]any{"product_id": int64(7)})
	wrapped := fmt.Errorf("increment: %w", err)

	if !HasCode(wrapped, CodeStockExceeded) {
		t.Fatal("expected HasCode to find STOCK_EXCEEDED")
	}
	if HasCode(wrapped, CodeEmptyCart) {
		t.Fatal("HasCode matched the wrong code")
	}
	if HasCode(nil, CodeInternal) {
		t.Fatal("nil error should not match any code")
	}
}

func TestDump(t *testing.T) {
	cause := stdErrors.New("constraint failed")
	err := Wrap(CodeInsufficientStock, cause, "stock went negative")

	d := Dump(err)
	if d.Code != CodeInsufficientStock {
		t.Fatalf("unexpected code: %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
