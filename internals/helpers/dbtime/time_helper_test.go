package dbtime

import (
	"testing"
	"time"
)

func TestCombineLocal(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{name: "hora e minuto", date: "2026-03-08", clock: "09:30", want: time.Date(2026, 3, 8, 9, 30, 0, 0, loc)},
		{name: "com segundos", date: "2026-03-08", clock: "09:30:45", want: time.Date(2026, 3, 8, 9, 30, 45, 0, loc)},
		{name: "meia-noite", date: "2026-03-08", clock: "00:00", want: time.Date(2026, 3, 8, 0, 0, 0, 0, loc)},
		{name: "espaços em volta", date: " 2026-03-08 ", clock: " 21:15 ", want: time.Date(2026, 3, 8, 21, 15, 0, 0, loc)},
		{name: "data inválida", date: "08/03/2026", clock: "09:30", wantErr: true},
		{name: "hora sem minuto", date: "2026-03-08", clock: "09", wantErr: true},
		{name: "hora fora do range", date: "2026-03-08", clock: "25:00", wantErr: true},
		{name: "minuto fora do range", date: "2026-03-08", clock: "09:75", wantErr: true},
		{name: "lixo", date: "2026-03-08", clock: "banana", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineLocal(tt.date, tt.clock, loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CombineLocal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("CombineLocal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombineLocalNilLocation(t *testing.T) {
	if _, err := CombineLocal("2026-03-08", "09:30", nil); err == nil {
		t.Fatal("esperava erro com location nil")
	}
}

func TestDateStrConvertsZone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC do dia 9 ainda é dia 8 no fuso -03:00
	utc := time.Date(2026, 3, 9, 1, 0, 0, 0, time.UTC)
	if got := DateStr(utc, loc); got != "2026-03-08" {
		t.Errorf("DateStr() = %q, want %q", got, "2026-03-08")
	}
}
