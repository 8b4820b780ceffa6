// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CombineLocal converte (data "YYYY-MM-DD", hora local "HH:MM[:SS]") em um
// instante absoluto no fuso informado. O fuso é sempre parâmetro explícito:
// as colunas start_time/end_time guardam hora de parede local, nunca UTC.
func CombineLocal(dateStr, clockStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, fmt.Errorf("dbtime: location não informada")
	}
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("dbtime: data inválida %q: %w", dateStr, err)
	}
	h, m, s, err := parseClock(clockStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, loc), nil
}

// DateStr retorna a data de t, já convertida para o fuso da igreja.
func DateStr(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

func parseClock(s string) (h, m, sec int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("dbtime: hora inválida %q", s)
	}
	if _, err = fmt.Sscanf(parts[0], "%d", &h); err != nil || h < 0 || h > 23 {
		return 0, 0, 0, fmt.Errorf("dbtime: hora inválida %q", s)
	}
	if _, err = fmt.Sscanf(parts[1], "%d", &m); err != nil || m < 0 || m > 59 {
		return 0, 0, 0, fmt.Errorf("dbtime: hora inválida %q", s)
	}
	if len(parts) == 3 {
		if _, err = fmt.Sscanf(parts[2], "%d", &sec); err != nil || sec < 0 || sec > 59 {
			return 0, 0, 0, fmt.Errorf("dbtime: hora inválida %q", s)
		}
	}
	return h, m, sec, nil
}
