package config

import "testing"

func TestLoadDBConfig_Defaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "DB_ECHO", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME_MIN"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadDBConfig()
	if err != nil {
		t.Fatalf("LoadDBConfig: %v", err)
	}
	if cfg.Driver != DriverPostgres {
		t.Fatalf("driver = %q, want %q", cfg.Driver, DriverPostgres)
	}
	if cfg.DSN != DefaultDSN {
		t.Fatalf("dsn = %q, want %q", cfg.DSN, DefaultDSN)
	}
	if !cfg.Echo {
		t.Fatalf("echo should be on by default")
	}
	if cfg.MaxOpenConns != 10 || cfg.MaxIdleConns != 5 || cfg.ConnMaxLifeTime != 30 {
		t.Fatalf("unexpected pool defaults: %+v", cfg)
	}
}

func TestLoadDBConfig_ReadsEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "file:dininghero.db")
	t.Setenv("DB_ECHO", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "1")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg, err := LoadDBConfig()
	if err != nil {
		t.Fatalf("LoadDBConfig: %v", err)
	}
	if cfg.Driver != DriverSQLite {
		t.Fatalf("driver = %q, want %q", cfg.Driver, DriverSQLite)
	}
	if cfg.DSN != "file:dininghero.db" {
		t.Fatalf("dsn = %q", cfg.DSN)
	}
	if cfg.Echo {
		t.Fatalf("echo should be off")
	}
	if cfg.MaxOpenConns != 1 {
		t.Fatalf("max open = %d, want 1", cfg.MaxOpenConns)
	}
	// некорректное значение -> дефолт
	if cfg.MaxIdleConns != 5 {
		t.Fatalf("max idle = %d, want 5", cfg.MaxIdleConns)
	}
}

func TestLoadDBConfig_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := LoadDBConfig(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := &DBConfig{Driver: DriverSQLite, DSN: "  "}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
