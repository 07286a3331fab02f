package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeUnauthorized, status: http.StatusUnauthorized, publicMsg: "authentication required", detailsOK: true},
		{code: CodeForbidden, status: http.StatusForbidden, publicMsg: "access denied"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "dependency unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	base.WithDetails(map[string]any{"field": "foo"})
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeConflict {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("product")
	if err.Code() != CodeNotFound || err.Message() != "product not found" {
		t.Fatalf("unexpected not found error %v", err)
	}
}

func TestAsAndIsCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeForbidden, "no entry"))
	if got := As(err); got == nil || got.Code() != CodeForbidden {
		t.Fatalf("As failed to return typed error")
	}
	if !IsCode(err, CodeForbidden) {
		t.Fatalf("expected IsCode to match forbidden")
	}
	if IsCode(stdErrors.New("plain"), CodeForbidden) {
		t.Fatalf("plain errors carry no code")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestDumpExtractsPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_shop_products_shop_product", TableName: "shop_products", Message: "duplicate key value"}
	dump := Dump(Wrap(CodeConflict, pgErr, "insert"))
	if dump.Code != CodeConflict {
		t.Fatalf("expected conflict code, got %s", dump.Code)
	}
	if dump.Store != StorePostgres || dump.DBCode != "23505" || dump.DBConstraint != "uq_shop_products_shop_product" || dump.DBTable != "shop_products" {
		t.Fatalf("unexpected pgx dump %+v", dump)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %v", dump.Chain)
	}

	pqErr := &pq.Error{Code: "23503", Constraint: "orders_customer_id_fkey", Table: "orders"}
	dump = Dump(pqErr)
	if dump.DBCode != "23503" || dump.DBConstraint != "orders_customer_id_fkey" {
		t.Fatalf("unexpected pq dump %+v", dump)
	}

	if Dump(nil).TopMessage != "" {
		t.Fatalf("expected empty dump for nil")
	}
}

func TestDumpParsesSQLiteConstraintMessages(t *testing.T) {
	cases := []struct {
		name       string
		msg        string
		code       string
		table      string
		column     string
		constraint string
	}{
		{"unique pair", "UNIQUE constraint failed: shop_products.shop_id, shop_products.product_id", "UNIQUE", "shop_products", "shop_id,product_id", ""},
		{"not null", "NOT NULL constraint failed: products.name", "NOT NULL", "products", "name", ""},
		{"check", "CHECK constraint failed: stock >= 0", "CHECK", "", "", "stock >= 0"},
		{"foreign key", "FOREIGN KEY constraint failed", "FOREIGN KEY", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dump := Dump(Wrap(CodeConflict, stdErrors.New(tc.msg), "store"))
			if dump.Store != StoreSQLite || dump.DBCode != tc.code {
				t.Fatalf("unexpected store fields %+v", dump)
			}
			if dump.DBTable != tc.table || dump.DBColumn != tc.column || dump.DBConstraint != tc.constraint {
				t.Fatalf("unexpected target fields %+v", dump)
			}
		})
	}

	if dump := Dump(stdErrors.New("connection refused")); dump.Store != "" {
		t.Fatalf("expected no store for plain error, got %+v", dump)
	}
}
