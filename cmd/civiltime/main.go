package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/k-yomo/civiltime/pkg/clock"
	"github.com/k0kubun/pp/v3"
	"go.uber.org/zap"
)

func main() {
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}

func realMain() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initialize zap: %w", err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	configFilePath := mustEnv("CONFIG_FILE_PATH")
	var debug bool
	if debugStr := os.Getenv("DEBUG"); debugStr != "" {
		debug, err = strconv.ParseBool(debugStr)
		if err != nil {
			return fmt.Errorf("parse DEBUG env var: %w", err)
		}
	}
	if localTimezone := os.Getenv("LOCAL_TIMEZONE"); localTimezone != "" {
		if err := clock.SetTimeZone(localTimezone); err != nil {
			return fmt.Errorf("set local timezone: %w", err)
		}
	}

	config, err := loadConfig(configFilePath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if datetime := os.Getenv("DATETIME"); datetime != "" {
		config.Datetime = datetime
		config.Schedule = ""
	}
	if err := validateConfig(config); err != nil {
		return err
	}

	datetime, err := targetDatetime(config)
	if err != nil {
		return fmt.Errorf("decide datetime: %w", err)
	}
	conversions, err := convertAll(context.Background(), datetime, config.Timezones, config.Layout)
	if err != nil {
		return fmt.Errorf("convert datetime '%s': %w", datetime, err)
	}

	for _, conversion := range conversions {
		logger.Info("datetime is converted",
			zap.String("utc", datetime),
			zap.String("timezone", conversion.Zone.Timezone()),
			zap.String("layout", string(config.Layout)),
			zap.String("output", conversion.Output),
		)
		fmt.Printf("%s\t%s\n", conversion.Zone.Timezone(), conversion.Output)
		if debug {
			pp.Println(conversion.Zone)
		}
	}
	return nil
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Panicf("env variable '%s' must be set", key)
	}
	return v
}
