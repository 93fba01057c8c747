package main

import (
	"context"
	"fmt"
	"time"

	"github.com/k-yomo/civiltime/pkg/clock"
	"github.com/k-yomo/civiltime/pkg/timeutil"
	"github.com/k-yomo/civiltime/zone"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

type Conversion struct {
	Zone   *zone.Zone
	Output string
}

// targetDatetime decides the UTC datetime to convert.
func targetDatetime(config *Config) (string, error) {
	if config.Datetime != "" {
		return config.Datetime, nil
	}
	now := clock.Now()
	if config.Schedule == "" {
		return timeutil.FormatInstant(now), nil
	}
	schedule, err := cron.ParseStandard(config.Schedule)
	if err != nil {
		return "", fmt.Errorf("parse cron schedule: %w", err)
	}
	next := schedule.Next(now)
	if next.IsZero() {
		return "", fmt.Errorf("cron schedule '%s' never occurs after %s", config.Schedule, now.Format(time.RFC3339))
	}
	return timeutil.FormatInstant(next), nil
}

// convertAll reads datetime in every timezone, keeping the order of timezones.
func convertAll(ctx context.Context, datetime string, timezones []string, layout Layout) ([]*Conversion, error) {
	conversions := make([]*Conversion, len(timezones))
	eg, ctx := errgroup.WithContext(ctx)
	for i, timezone := range timezones {
		i, timezone := i, timezone
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			z, err := zone.New(datetime, timezone)
			if err != nil {
				return fmt.Errorf("convert to '%s': %w", timezone, err)
			}
			conversions[i] = &Conversion{
				Zone:   z,
				Output: render(z, layout),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return conversions, nil
}

func render(z *zone.Zone, layout Layout) string {
	switch layout {
	case LayoutDate:
		return z.DateString()
	case LayoutTime:
		return z.TimeString()
	case LayoutAMPM:
		return z.Format(func(year, month, day, hour, minute, second int) (string, error) {
			return fmt.Sprintf("%s %s", timeutil.FormatDate(year, month, day), z.AMPM()), nil
		})
	case LayoutDiff:
		return z.Diff()
	default:
		return z.Format(nil)
	}
}
