package cliconfig

import "os"

// ApplyEnvConfig applies RECIPEBOX_* environment variables to cfg,
// skipping values whose flag was set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("data-dir", os.Getenv("RECIPEBOX_DATA_DIR"), &cfg.DataDir)
	s.setString("backend", os.Getenv("RECIPEBOX_BACKEND"), &cfg.Backend)
	s.setString("db-path", os.Getenv("RECIPEBOX_DB_PATH"), &cfg.DBPath)
	s.setString("storage-key", os.Getenv("RECIPEBOX_STORAGE_KEY"), &cfg.StorageKey)
	s.setString("id-scheme", os.Getenv("RECIPEBOX_ID_SCHEME"), &cfg.IDScheme)
	s.setString("log-level", os.Getenv("RECIPEBOX_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("max-blob-bytes", os.Getenv("RECIPEBOX_MAX_BLOB_BYTES"), &cfg.MaxBlobBytes); err != nil {
		return err
	}
	if err := s.setIntFromString("quota-bytes", os.Getenv("RECIPEBOX_QUOTA_BYTES"), &cfg.QuotaBytes); err != nil {
		return err
	}
	if err := s.setDuration("redirect-delay", os.Getenv("RECIPEBOX_REDIRECT_DELAY"), &cfg.RedirectDelay); err != nil {
		return err
	}

	s.setBoolFromString("seed", os.Getenv("RECIPEBOX_SEED"), &cfg.Seed)

	return nil
}
