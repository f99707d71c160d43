package marketdata

import (
	"testing"
	"time"

	"github.com/guttosm/tickercast/internal/domain/models"
)

func TestNormalize_PreservesRowsAndStripsZone(t *testing.T) {
	ny := time.FixedZone("EST", -5*3600)
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, ny)
	series := &models.PriceSeries{Symbol: "AAPL"}
	for i := 0; i < 252; i++ {
		d := start.AddDate(0, 0, i)
		series.Bars = append(series.Bars, models.PriceBar{Time: d, Open: 1, High: 2, Low: 0.5, Close: float64(100 + i)})
	}

	rows := Normalize(series)
	if len(rows) != len(series.Bars) {
		t.Fatalf("got %d rows, want %d", len(rows), len(series.Bars))
	}
	for i, r := range rows {
		if r.Timestamp.Location() != time.UTC {
			t.Fatalf("row %d kept a zone: %v", i, r.Timestamp.Location())
		}
		if r.Timestamp.Day() != series.Bars[i].Time.Day() || r.Timestamp.Hour() != 0 {
			t.Fatalf("row %d wall clock changed: %v vs %v", i, r.Timestamp, series.Bars[i].Time)
		}
		if r.Value != series.Bars[i].Close {
			t.Fatalf("row %d value=%v, want close %v", i, r.Value, series.Bars[i].Close)
		}
		if i > 0 && !r.Timestamp.After(rows[i-1].Timestamp) {
			t.Fatalf("timestamps not strictly increasing at %d", i)
		}
	}
}

func TestNormalize_Nil(t *testing.T) {
	if rows := Normalize(nil); rows != nil {
		t.Fatalf("expected nil rows, got %v", rows)
	}
}

func TestStripZone_KeepsWallClock(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	in := time.Date(2025, 5, 1, 23, 45, 0, 0, ist)
	out := StripZone(in)
	want := time.Date(2025, 5, 1, 23, 45, 0, 0, time.UTC)
	if !out.Equal(want) || out.Location() != time.UTC {
		t.Fatalf("StripZone=%v, want %v", out, want)
	}
}
