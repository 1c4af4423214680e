package genconfig

import "testing"

func TestLoadConfigFromBytes_Valid(t *testing.T) {
	doc := `
seed: "moss-1"
difficulty: Gorlek
tricks: [sword-sentry-jump]
hard: false
goals: [Trees]
spawn: Random
worldCount: 2
perWorld:
  - difficulty: Unsafe
    hard: true
    spawn: Named
    spawnName: MarshSpawn.Main
  - {}
`
	cfg, err := LoadConfigFromBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	if cfg.Seed != "moss-1" {
		t.Errorf("Seed = %q, want moss-1", cfg.Seed)
	}
	if cfg.WorldCount != 2 {
		t.Errorf("WorldCount = %d, want 2", cfg.WorldCount)
	}
	if len(cfg.PerWorld) != 2 {
		t.Fatalf("len(PerWorld) = %d, want 2", len(cfg.PerWorld))
	}
	if cfg.PerWorld[0].SpawnName != "MarshSpawn.Main" {
		t.Errorf("PerWorld[0].SpawnName = %q, want MarshSpawn.Main", cfg.PerWorld[0].SpawnName)
	}
}

func TestLoadConfigFromBytes_RejectsUnknownDifficulty(t *testing.T) {
	doc := `
seed: "moss-1"
difficulty: Impossible
worldCount: 1
`
	if _, err := LoadConfigFromBytes([]byte(doc)); err == nil {
		t.Fatal("expected an error for an unknown difficulty name")
	}
}

func TestLoadConfigFromBytes_RejectsEmptySeed(t *testing.T) {
	doc := `
difficulty: Moki
worldCount: 1
`
	if _, err := LoadConfigFromBytes([]byte(doc)); err == nil {
		t.Fatal("expected an error for an empty seed")
	}
}

func TestLoadConfigFromBytes_RejectsMismatchedPerWorldLength(t *testing.T) {
	doc := `
seed: "moss-1"
difficulty: Moki
worldCount: 2
perWorld:
  - {}
`
	if _, err := LoadConfigFromBytes([]byte(doc)); err == nil {
		t.Fatal("expected an error when perWorld length doesn't match worldCount")
	}
}

func TestToSettings_AppliesPerWorldOverrides(t *testing.T) {
	doc := `
seed: "moss-1"
difficulty: Gorlek
goals: [Trees]
worldCount: 2
perWorld:
  - difficulty: Unsafe
    hard: true
  - {}
`
	cfg, err := LoadConfigFromBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	s, err := cfg.ToSettings()
	if err != nil {
		t.Fatalf("ToSettings() failed: %v", err)
	}

	w0 := s.ForWorld(0)
	if w0.Difficulty.String() != "Unsafe" || !w0.Hard {
		t.Errorf("world 0 = %+v, want Unsafe/hard", w0)
	}

	w1 := s.ForWorld(1)
	if w1.Difficulty.String() != "Gorlek" || w1.Hard {
		t.Errorf("world 1 = %+v, want Gorlek/non-hard (inherits defaults)", w1)
	}
	if len(w1.Goals) != 1 || w1.Goals[0].String() != "Trees" {
		t.Errorf("world 1 goals = %+v, want [Trees] inherited from defaults", w1.Goals)
	}
}

func TestHashIsDeterministicAndSensitiveToContent(t *testing.T) {
	a, err := LoadConfigFromBytes([]byte("seed: \"s1\"\ndifficulty: Moki\nworldCount: 1\n"))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	b, err := LoadConfigFromBytes([]byte("seed: \"s1\"\ndifficulty: Moki\nworldCount: 1\n"))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}
	c, err := LoadConfigFromBytes([]byte("seed: \"s1\"\ndifficulty: Gorlek\nworldCount: 1\n"))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() failed: %v", err)
	}

	ha, hb, hc := a.Hash(), b.Hash(), c.Hash()
	if string(ha) != string(hb) {
		t.Error("identical configs hashed to different values")
	}
	if string(ha) == string(hc) {
		t.Error("configs differing in difficulty hashed to the same value")
	}
	if a.MasterSeed() != b.MasterSeed() {
		t.Error("identical seed strings derived different master seeds")
	}
}
