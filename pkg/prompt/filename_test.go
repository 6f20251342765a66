package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFileName(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{
			name:     "full agency-prefixed pattern",
			prompt:   "광주광역시 남구_전기차 등록 현황_20250311 자세히",
			expected: "광주광역시 남구_전기차 등록 현황_20250311",
		},
		{
			name:     "date-tailed fragment",
			prompt:   "주차장_현황_20240101 상세정보",
			expected: "주차장_현황_20240101",
		},
		{
			name:     "fallback strips request noise",
			prompt:   "버스 정류장 자세히",
			expected: "버스 정류장",
		},
		{
			name:     "empty prompt degrades to empty string",
			prompt:   "",
			expected: "",
		},
		{
			name:     "pure request words degrade to empty string",
			prompt:   "상세정보 자세히",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractFileName(tc.prompt))
		})
	}
}
