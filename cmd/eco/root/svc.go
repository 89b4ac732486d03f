package root

import (
	"context"

	"ecobuddy/internal/config"
	"ecobuddy/internal/engine"
	"ecobuddy/internal/storage"
)

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.ResolveDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	policy, err := engine.ParseCurvePolicy(cfg.Pet.Curve)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	curve := engine.Curve{
		Policy: policy,
		Base:   cfg.Pet.BaseExpPerLevel,
		Step:   cfg.Pet.CurveStep,
	}

	svc, err := engine.Open(ctx, db,
		engine.WithLogger(logger),
		engine.WithCurve(curve),
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
