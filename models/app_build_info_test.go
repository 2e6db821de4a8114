package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t, "1.0.0 (built 2026-10-01, commit deadbeef)", NewAppBuildInfo("1.0.0", "2026-10-01", "deadbeef").String())
	assert.Equal(t, "N/A (built N/A, commit N/A)", AppBuildInfo{}.String())
	assert.Equal(t, "2.0 (built N/A, commit N/A)", NewAppBuildInfo("2.0", "", "").String())
}
