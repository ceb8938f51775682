package errors

import (
	"strings"
	"testing"
)

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("Model.Sums", 4, 3)

	var de *DimensionError
	if !As(err, &de) {
		t.Fatalf("expected DimensionError, got %T", err)
	}
	if de.Expected != 4 || de.Got != 3 {
		t.Errorf("unexpected fields: %+v", de)
	}
	if !strings.Contains(err.Error(), "Expected 4, got 3") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValueError(t *testing.T) {
	err := NewValueError("Model.Fit", "no data or length mismatch")

	var ve *ValueError
	if !As(err, &ve) {
		t.Fatalf("expected ValueError, got %T", err)
	}
	if !strings.Contains(err.Error(), "no data or length mismatch") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDegenerateFitError(t *testing.T) {
	err := NewDegenerateFitError("Model.Fit", "x values all equal; slope undefined")

	var dfe *DegenerateFitError
	if !As(err, &dfe) {
		t.Fatalf("expected DegenerateFitError, got %T", err)
	}
	if dfe.Op != "Model.Fit" {
		t.Errorf("unexpected op: %s", dfe.Op)
	}
	if !strings.Contains(err.Error(), "degenerate fit") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewDegenerateFitError("Model.Fit", "x values all equal; slope undefined")
	wrapped := Wrap(base, "computing influence")

	var dfe *DegenerateFitError
	if !As(wrapped, &dfe) {
		t.Error("wrapped error lost its DegenerateFitError type")
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "test operation")
		panic("boom")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}

	panicErr, ok := err.(*PanicError)
	if !ok {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "test operation" {
		t.Errorf("unexpected operation: %s", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("expected non-empty stack trace")
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("divide", func() error {
		var xs []float64
		_ = xs[3] // out of range
		return nil
	})
	if err == nil {
		t.Fatal("expected error from panicking function")
	}

	err = SafeExecute("noop", func() error { return nil })
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
