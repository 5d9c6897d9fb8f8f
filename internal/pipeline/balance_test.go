package pipeline

import (
	"testing"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

func TestReconcileZeroFillsMissingSide(t *testing.T) {
	exports := []models.PeriodRow{
		{Year: 2022, Value: 500, Weight: 1000},
		{Year: 2023, Value: 700, Weight: 1400},
	}
	imports := []models.PeriodRow{
		{Year: 2023, Value: 200, Weight: 300},
		{Year: 2024, Value: 100, Weight: 150},
	}

	rows := Reconcile(exports, imports)
	if len(rows) != 3 {
		t.Fatalf("Reconcile returned %d rows, want 3", len(rows))
	}

	// 2022: export only, import zero-filled
	if rows[0].Year != 2022 || rows[0].ImportValue != 0 || rows[0].Balance != 500 || rows[0].GrossFlow != 500 {
		t.Errorf("2022 row = %+v", rows[0])
	}
	// 2023: both sides present
	if rows[1].Balance != 500 || rows[1].GrossFlow != 900 {
		t.Errorf("2023 row = %+v", rows[1])
	}
	// 2024: import only, negative balance
	if rows[2].Year != 2024 || rows[2].ExportValue != 0 || rows[2].Balance != -100 || rows[2].GrossFlow != 100 {
		t.Errorf("2024 row = %+v", rows[2])
	}
}

func TestReconcileMonthly(t *testing.T) {
	exports := []models.PeriodRow{{Year: 2023, Month: 1, Value: 10}}
	imports := []models.PeriodRow{{Year: 2023, Month: 2, Value: 5}}

	rows := Reconcile(exports, imports)
	if len(rows) != 2 {
		t.Fatalf("Reconcile returned %d rows, want 2", len(rows))
	}
	if rows[0].Month != 1 || rows[1].Month != 2 {
		t.Errorf("monthly order = %+v", rows)
	}
	if rows[1].Balance != -5 {
		t.Errorf("february balance = %.0f, want -5", rows[1].Balance)
	}
}

func TestReconcileEmptySides(t *testing.T) {
	if rows := Reconcile(nil, nil); len(rows) != 0 {
		t.Errorf("Reconcile(nil, nil) = %d rows", len(rows))
	}
	rows := Reconcile([]models.PeriodRow{{Year: 2023, Value: 7}}, nil)
	if len(rows) != 1 || rows[0].Balance != 7 {
		t.Errorf("export-only reconcile = %+v", rows)
	}
}

func TestReconcileChains(t *testing.T) {
	exports := []models.ChainPeriodRow{
		{Year: 2023, Chain: "Sojicultura", Value: 800, Weight: 1600},
	}
	imports := []models.ChainPeriodRow{
		{Year: 2023, Chain: "Fertilizantes", Value: 300, Weight: 900},
		{Year: 2023, Chain: "Sojicultura", Value: 50, Weight: 80},
	}

	rows := ReconcileChains(exports, imports)
	if len(rows) != 2 {
		t.Fatalf("ReconcileChains returned %d rows, want 2", len(rows))
	}
	if rows[0].Chain != "Fertilizantes" || rows[0].ExportValue != 0 || rows[0].ImportValue != 300 {
		t.Errorf("fertilizer row = %+v", rows[0])
	}
	if rows[1].Chain != "Sojicultura" || rows[1].ExportValue != 800 || rows[1].ImportValue != 50 {
		t.Errorf("soy row = %+v", rows[1])
	}
}
