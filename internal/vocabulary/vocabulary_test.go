package vocabulary

import "testing"

func TestLoadWithoutOverrides(t *testing.T) {
	vocab, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vocab.Skills) == 0 || len(vocab.SectionHeaders) == 0 {
		t.Fatalf("expected the default vocabulary, got %+v", vocab)
	}
}

func TestLoadOverridesReplaceOnlyGivenKeys(t *testing.T) {
	vocab, err := Load(map[string]any{
		"skills":     []string{"Go", "Rust"},
		"stop-words": []string{"the"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vocab.Skills) != 2 || vocab.Skills[0] != "Go" {
		t.Fatalf("expected overridden skills, got %v", vocab.Skills)
	}

	if len(vocab.StopWords) != 1 {
		t.Fatalf("expected overridden stop words, got %v", vocab.StopWords)
	}

	// Keys absent from the override keep their defaults.
	if len(vocab.StrongVerbs) == 0 {
		t.Fatalf("expected default strong verbs to survive, got none")
	}
}

func TestLoadRejectsMalformedOverrides(t *testing.T) {
	if _, err := Load(map[string]any{"skills": 42}); err == nil {
		t.Fatal("expected an error for a non-list override")
	}
}

func TestStopWordSet(t *testing.T) {
	set := Default().StopWordSet()

	if !set["the"] || set["python"] {
		t.Fatalf("unexpected stop word set: %v", set)
	}
}
