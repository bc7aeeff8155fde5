package db

import (
	"context"
	"testing"
)

func TestTxFromContext_Empty(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Error("expected nil tx from empty context")
	}
}

func TestTxFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not-a-tx")
	if tx := TxFromContext(ctx); tx != nil {
		t.Error("expected nil when context value is wrong type")
	}
}

func TestConnFromContext_Empty(t *testing.T) {
	if conn := ConnFromContext(context.Background()); conn != nil {
		t.Error("expected nil conn from empty context")
	}
}

func TestCreateSchema_RejectsInvalidName(t *testing.T) {
	err := CreateSchema(context.Background(), nil, "bad-name; DROP SCHEMA public")
	if err == nil {
		t.Error("expected error for invalid schema name")
	}
}

func TestDropSchema_RejectsInvalidName(t *testing.T) {
	err := DropSchema(context.Background(), nil, "smoke'; --")
	if err == nil {
		t.Error("expected error for invalid schema name")
	}
}
