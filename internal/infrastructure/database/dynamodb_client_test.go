package database

import "testing"

func TestWorkflowTableNames(t *testing.T) {
	t.Run("defaults when the environment is empty", func(t *testing.T) {
		t.Setenv("APPOINTMENTS_TABLE", "")
		t.Setenv("PAYMENTS_TABLE", "")

		names := WorkflowTableNames()
		if len(names) != 2 {
			t.Fatalf("expected 2 table names, got %d", len(names))
		}
		if names[0] != "appointments" || names[1] != "payments" {
			t.Errorf("unexpected defaults: %v", names)
		}
	})

	t.Run("environment overrides win", func(t *testing.T) {
		t.Setenv("APPOINTMENTS_TABLE", "clinic-appointments")
		t.Setenv("PAYMENTS_TABLE", "clinic-payments")

		names := WorkflowTableNames()
		if names[0] != "clinic-appointments" || names[1] != "clinic-payments" {
			t.Errorf("unexpected overrides: %v", names)
		}
	})
}
