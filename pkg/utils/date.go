package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

var plainDatePattern = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})$`)

var chineseDateReplacer = strings.NewReplacer(
	"年", "-",
	"月", "-",
	"日", " ",
	"号", " ",
	"上午", "",
	"下午", "",
)

// ParseLooseDate interpreta datas em formatos variados ("2024-05-10", "2024/5/10 15:04",
// "2024年05月10日", RFC3339...). Textos sem fuso são lidos em UTC.
// Retorna false quando o valor não é uma data reconhecível.
func ParseLooseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseDateString(v)
	}
	return time.Time{}, false
}

func parseDateString(raw string) (time.Time, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}, false
	}

	morning := strings.Contains(text, "上午")
	afternoon := strings.Contains(text, "下午")
	text = strings.Join(strings.Fields(chineseDateReplacer.Replace(text)), " ")
	text = strings.TrimSuffix(text, "-")

	if m := plainDatePattern.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day {
			return time.Time{}, false
		}
		return date, true
	}

	parsed, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	// 上午 12 é meia-noite e 下午 12 é meio-dia
	switch {
	case morning && parsed.Hour() == 12:
		parsed = parsed.Add(-12 * time.Hour)
	case afternoon && parsed.Hour() < 12:
		parsed = parsed.Add(12 * time.Hour)
	}

	return parsed, true
}
