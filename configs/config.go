package configs

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v6"
)

var ErrInvalidThreshold = errors.New("approval threshold must be a positive integer")

type FundingBotConfig struct {
	App         App
	Bot         Bot
	DB          DB
	Logger      Logger
	HealthCheck HealthCheck
}

type DisplaySyncServiceConfig struct {
	App    App
	Bot    Bot
	DB     DB
	Logger Logger
	Sync   Sync
}

func LoadFundingBotConfig() (FundingBotConfig, error) {
	var config FundingBotConfig

	if err := env.Parse(&config); err != nil {
		return FundingBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateApp(config.App); err != nil {
		return FundingBotConfig{}, err
	}

	return config, nil
}

func LoadDisplaySyncServiceConfig() (DisplaySyncServiceConfig, error) {
	var config DisplaySyncServiceConfig

	if err := env.Parse(&config); err != nil {
		return DisplaySyncServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateApp(config.App); err != nil {
		return DisplaySyncServiceConfig{}, err
	}

	return config, nil
}

func validateApp(app App) error {
	if app.ApprovalThreshold <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, app.ApprovalThreshold)
	}
	return nil
}
