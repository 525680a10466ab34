package models

import (
	"strings"
	"testing"
)

func TestAlumniMasked(t *testing.T) {
	a := Alumni{
		Name:     "Priya Sharma",
		Company:  "BigCorp",
		Email:    "priya.sharma@example.com",
		Phone:    "9876543210",
		LinkedIn: "https://linkedin.com/in/priya",
	}

	masked := a.Masked()

	if masked.Name != a.Name || masked.Company != a.Company {
		t.Fatalf("masking must not touch public fields")
	}
	if strings.Contains(masked.Email, "sharma") || strings.Contains(masked.Email, "example.com") {
		t.Fatalf("masked email leaks the original: %q", masked.Email)
	}
	if !strings.HasPrefix(masked.Email, "p") {
		t.Fatalf("masked email should keep the first character, got %q", masked.Email)
	}
	if masked.Phone != "********10" {
		t.Fatalf("masked phone = %q, want %q", masked.Phone, "********10")
	}
	if masked.LinkedIn != "" {
		t.Fatalf("masked record must not expose the LinkedIn URL")
	}

	// Masking returns a copy; the original stays intact.
	if a.Email != "priya.sharma@example.com" {
		t.Fatalf("original record was mutated")
	}
}

func TestAlumniMasked_DegenerateValues(t *testing.T) {
	a := Alumni{Email: "not-an-email", Phone: "123"}
	masked := a.Masked()
	if masked.Email != "" {
		t.Fatalf("malformed email should mask to empty, got %q", masked.Email)
	}
	if masked.Phone != "" {
		t.Fatalf("short phone should mask to empty, got %q", masked.Phone)
	}
}

func TestQuestionValidate(t *testing.T) {
	q := Question{ID: "q1", Question: "What is a goroutine?", Difficulty: DifficultyEasy}
	if err := q.Validate(); err != nil {
		t.Fatalf("expected valid question, got %v", err)
	}

	q.Difficulty = "brutal"
	if err := q.Validate(); err == nil {
		t.Fatalf("expected unknown difficulty to fail validation")
	}

	q = Question{ID: "q2", Difficulty: DifficultyHard}
	if err := q.Validate(); err == nil {
		t.Fatalf("expected empty question text to fail validation")
	}
}

func TestNewTopic(t *testing.T) {
	topic, err := NewTopic("Operating Systems", "Scheduling, memory, concurrency")
	if err != nil {
		t.Fatalf("NewTopic: %v", err)
	}
	if topic.ID == "" {
		t.Fatalf("expected a generated id")
	}

	if _, err := NewTopic("", "no name"); err == nil {
		t.Fatalf("expected empty name to fail")
	}
}
