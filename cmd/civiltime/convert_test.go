package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/k-yomo/civiltime/pkg/clock"
	"github.com/k-yomo/civiltime/zone"
)

func Test_targetDatetime(t *testing.T) {
	// Thursday
	now := time.Date(2024, 6, 6, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		config  *Config
		want    string
		wantErr bool
	}{
		{
			name:   "datetime is used as is",
			config: &Config{Datetime: "2020-01-02 03:04:05"},
			want:   "2020-01-02 03:04:05",
		},
		{
			name:   "current time",
			config: &Config{},
			want:   "2024-06-06 09:30:00",
		},
		{
			name:   "next occurrence of the schedule",
			config: &Config{Schedule: "TZ=UTC 0 9 * * *"},
			want:   "2024-06-07 09:00:00",
		},
		{
			name:   "schedule in another timezone is converted to UTC",
			config: &Config{Schedule: "TZ=Asia/Tokyo 0 9 * * 1-5"},
			want:   "2024-06-07 00:00:00",
		},
		{
			name:    "invalid schedule",
			config:  &Config{Schedule: "invalid"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.MockTime(t, now)
			got, err := targetDatetime(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("targetDatetime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("targetDatetime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_convertAll(t *testing.T) {
	t.Parallel()

	type args struct {
		datetime  string
		timezones []string
		layout    Layout
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr error
	}{
		{
			name: "datetime",
			args: args{
				datetime:  "2024-06-06 09:00:00",
				timezones: []string{"America/New_York", "Pacific/Honolulu", "Asia/Tokyo"},
				layout:    LayoutDatetime,
			},
			want: []string{"2024-06-06 05:00:00", "2024-06-05 23:00:00", "2024-06-06 18:00:00"},
		},
		{
			name: "date",
			args: args{
				datetime:  "2024-06-06 09:00:00",
				timezones: []string{"Pacific/Honolulu"},
				layout:    LayoutDate,
			},
			want: []string{"2024-06-05"},
		},
		{
			name: "time",
			args: args{
				datetime:  "2024-06-06 09:00:00",
				timezones: []string{"Asia/Kolkata"},
				layout:    LayoutTime,
			},
			want: []string{"14:30:00"},
		},
		{
			name: "ampm",
			args: args{
				datetime:  "2024-06-06 09:00:00",
				timezones: []string{"UTC", "America/Los_Angeles"},
				layout:    LayoutAMPM,
			},
			want: []string{"2024-06-06 9:00 AM", "2024-06-06 2:00 AM"},
		},
		{
			name: "unknown timezone",
			args: args{
				datetime:  "2024-06-06 09:00:00",
				timezones: []string{"UTC", "Invalid/Timezone"},
				layout:    LayoutDatetime,
			},
			wantErr: zone.ErrResolutionFailure,
		},
		{
			name: "invalid datetime",
			args: args{
				datetime:  "2024-06-06",
				timezones: []string{"UTC"},
				layout:    LayoutDatetime,
			},
			wantErr: zone.ErrInvalidDatetime,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := convertAll(context.Background(), tt.args.datetime, tt.args.timezones, tt.args.layout)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("convertAll() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("convertAll() unexpected error = %v", err)
			}
			outputs := make([]string, 0, len(got))
			for i, conversion := range got {
				if conversion.Zone.Timezone() != tt.args.timezones[i] {
					t.Errorf("convertAll()[%d] timezone = %v, want %v", i, conversion.Zone.Timezone(), tt.args.timezones[i])
				}
				outputs = append(outputs, conversion.Output)
			}
			if diff := cmp.Diff(tt.want, outputs); diff != "" {
				t.Errorf("convertAll() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_render_Diff(t *testing.T) {
	clock.MockTime(t, time.Date(2024, 6, 6, 9, 0, 0, 0, time.UTC))

	z, err := zone.New("2024-06-06 06:00:00", "Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if got := render(z, LayoutDiff); got != "3 hours ago" {
		t.Errorf("render() = %v, want %v", got, "3 hours ago")
	}
}
