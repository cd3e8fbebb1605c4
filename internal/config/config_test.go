package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Quiz.Size != 10 || cfg.Quiz.PassThreshold != 70 {
		t.Errorf("quiz defaults = %+v", cfg.Quiz)
	}
	if cfg.Gaps.WrongIncrement != 15 || cfg.Gaps.CorrectDecrement != 5 {
		t.Errorf("gap defaults = %+v", cfg.Gaps)
	}
	if cfg.Access.TrialLengthDays != 30 {
		t.Errorf("trial default = %d", cfg.Access.TrialLengthDays)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SMBSHIELD_QUIZ_SIZE", "5")
	t.Setenv("SMBSHIELD_DB", "/tmp/test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.Size != 5 {
		t.Errorf("Quiz.Size = %d, want env override 5", cfg.Quiz.Size)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{
		Access: Access{TrialLengthDays: 30},
		Gaps:   Gaps{WrongIncrement: 15, CorrectDecrement: 5, MaxScore: 100},
		Quiz:   Quiz{Size: 10, GapShare: 1.7, PassThreshold: 70},
	}
	if err := cfg.validate(); err == nil {
		t.Error("gap_share above 1 accepted")
	}

	cfg.Quiz.GapShare = 0.6
	cfg.Quiz.PassThreshold = 140
	if err := cfg.validate(); err == nil {
		t.Error("pass_threshold above 100 accepted")
	}
}
