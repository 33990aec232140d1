package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadPolicyEmptyPath(t *testing.T) {
	p, err := LoadPolicy("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Detection.RapidSwitchSeconds != 5 || len(p.Domains.Productive) != 3 {
		t.Fatalf("expected default policy, got %+v", p)
	}
}

func TestLoadPolicyYAML(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
domains:
  productive: [github.com, go.dev]
  distracting: [youtube.com, reddit.com]
detection:
  rapid_switch_seconds: 3
  idle_spike_seconds: 300
`)

	p, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Detection.RapidSwitchSeconds != 3 || p.Detection.IdleSpikeSeconds != 300 {
		t.Fatalf("thresholds not loaded: %+v", p.Detection)
	}
	if p.Detection.ContextSwitchCount != 5 {
		t.Fatalf("missing threshold should default, got %d", p.Detection.ContextSwitchCount)
	}
	if len(p.Domains.Distracting) != 2 || p.Domains.Distracting[1] != "reddit.com" {
		t.Fatalf("domains not loaded: %+v", p.Domains)
	}
}

func TestLoadPolicyJSON(t *testing.T) {
	path := writeFile(t, "policy.json", `{"detection": {"loop_length": 6, "loop_max_distinct": 3}}`)

	p, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Detection.LoopLength != 6 || p.Detection.LoopMaxDistinct != 3 {
		t.Fatalf("json thresholds not loaded: %+v", p.Detection)
	}
	if len(p.Domains.Productive) == 0 {
		t.Fatal("domains should fall back to defaults")
	}
}

func TestLoadPolicyErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "   \n"},
		{"conflicting domain", "domains:\n  productive: [a.com]\n  distracting: [a.com]\n"},
		{"conflicting after normalizing", "domains:\n  productive: [www.A.com]\n  distracting: [https://a.com/]\n"},
		{"invalid threshold", "detection:\n  idle_spike_seconds: -1\n"},
		{"bad yaml", "detection: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "policy.yaml", tt.content)
			if _, err := LoadPolicy(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDatabaseConfigURLs(t *testing.T) {
	db := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		DBName:   "flow",
		SSLMode:  "disable",
		Path:     "/tmp/flow.db",
	}

	if got := db.DSN(); got != "host=db port=5432 user=u password=p dbname=flow sslmode=disable" {
		t.Fatalf("postgres dsn = %q", got)
	}
	url, dir := db.MigrationURL()
	if url != "postgres://u:p@db:5432/flow?sslmode=disable" || dir != "postgres" {
		t.Fatalf("postgres migration = %q %q", url, dir)
	}

	db.Driver = "pgx"
	if got := db.DSN(); got != "postgres://u:p@db:5432/flow?sslmode=disable" {
		t.Fatalf("pgx dsn = %q", got)
	}
	if url, _ := db.MigrationURL(); url != "pgx5://u:p@db:5432/flow?sslmode=disable" {
		t.Fatalf("pgx migration url = %q", url)
	}

	db.Driver = "sqlite"
	url, dir = db.MigrationURL()
	if db.DSN() != "/tmp/flow.db" || url != "sqlite:///tmp/flow.db" || dir != "sqlite" {
		t.Fatalf("sqlite urls = %q %q %q", db.DSN(), url, dir)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadConfig()
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Redis.RateLimitPerMinute != 30 || cfg.Redis.DB != 0 {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
}
