package uow_test

import (
	"context"
	"testing"

	"boxes/infras/otel/mocks"
	"boxes/shared/uow"
)

func TestInMemory_Commit(t *testing.T) {
	unit := uow.NewInMemory(mocks.NewOtel())

	affected, err := unit.Commit(context.Background())
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if affected != 1 {
		t.Errorf("expected 1 affected, got %d", affected)
	}
}

func TestInMemory_CloseIsIdempotent(t *testing.T) {
	unit := uow.NewInMemory(mocks.NewOtel())

	for i := 0; i < 3; i++ {
		if err := unit.Close(); err != nil {
			t.Errorf("close %d: expected no error, got %v", i, err)
		}
	}
}
