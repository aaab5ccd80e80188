package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", " \t\n  ", 0},
		{"single token", "hello", 1},
		{"simple sentence", "hello world again", 3},
		{"xml-ish document", "<prompt><templates /><files /></prompt>", 2},
		{"leading and trailing space", "  a b  ", 2},
		{"mixed whitespace", "a\tb\nc\r\nd", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Estimate(tt.input))
		})
	}
}

func TestEstimateNeverDecreasesOnAppend(t *testing.T) {
	base := "<prompt><templates><template>hi</template></templates></prompt>"
	additions := []string{"x", " word", "\nline\n", "<file path=\"a\">body</file>", " "}

	for _, add := range additions {
		assert.GreaterOrEqual(t, Estimate(base+add), Estimate(base), "appending %q", add)
	}
}
