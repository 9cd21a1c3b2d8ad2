package game

import "testing"

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvHeight, "")
	t.Setenv(EnvSight, "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvWidth, "40")
	t.Setenv(EnvHeight, "-3")
	t.Setenv(EnvSight, "far")

	cfg, err := ConfigFromEnv()
	if err == nil {
		t.Fatal("expected an error for invalid values")
	}
	if cfg.Seed != 99 || cfg.Width != 40 {
		t.Errorf("valid values should apply, got %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height || cfg.SightRadius != DefaultSightRadius {
		t.Errorf("invalid values should keep defaults, got %+v", cfg)
	}
}

func TestSeededRandIsReproducible(t *testing.T) {
	cfg := Config{Seed: 12345}
	a, b := cfg.NewRand(), cfg.NewRand()
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d mismatch: %d != %d", i, x, y)
		}
	}
}
