package jalali

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestFormatKnownDate(t *testing.T) {
	// 21 June 2025 noon Tehran time is 31 Khordad 1404.
	in := time.Date(2025, time.June, 21, 12, 0, 0, 0, ptime.Iran())
	assert.Equal(t, "1404-03-31 12:00:00", Format(in))
}

func TestFormatConvertsToTehran(t *testing.T) {
	tehran := time.Date(2025, time.June, 21, 12, 0, 0, 0, ptime.Iran())
	utc := tehran.UTC()

	assert.Equal(t, Format(tehran), Format(utc))
}

func TestNowShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	assert.Regexp(t, pattern, Now())
}
