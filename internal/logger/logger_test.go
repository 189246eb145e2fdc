package logger

import "testing"

func TestNew(t *testing.T) {
	for _, mode := range []string{"development", "prod", "production", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) error = %v", mode, err)
		}
		if log == nil {
			t.Fatalf("New(%q) returned nil", mode)
		}
	}
}

func TestRedactKVs(t *testing.T) {
	kv := []any{
		"api_key", "sk-secret",
		"port", 5004,
		"authorization", "Bearer abc",
		"path", "output/documentation.pdf",
	}

	got := redactKVs(kv)

	if got[1] != "[REDACTED]" {
		t.Errorf("api_key value = %v, want redacted", got[1])
	}
	if got[3] != 5004 {
		t.Errorf("port value = %v, want 5004", got[3])
	}
	if got[5] != "[REDACTED]" {
		t.Errorf("authorization value = %v, want redacted", got[5])
	}
	if got[7] != "output/documentation.pdf" {
		t.Errorf("path value = %v, want unchanged", got[7])
	}

	// Input slice must not be mutated.
	if kv[1] != "sk-secret" {
		t.Error("redactKVs mutated its input")
	}
}
