package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cameronsjo/stevedore/internal/compose"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	params := map[string]string{
		"version": "3.2.0",
		"home":    "/var/www",
		"empty":   "",
	}

	tests := []struct {
		name        string
		in          string
		want        string
		wantMissing []string
	}{
		{
			name: "single token",
			in:   "checkout $version",
			want: "checkout 3.2.0",
		},
		{
			name: "multiple tokens",
			in:   "cd $home && git checkout $version",
			want: "cd /var/www && git checkout 3.2.0",
		},
		{
			name: "repeated token",
			in:   "$version-$version",
			want: "3.2.0-3.2.0",
		},
		{
			name: "empty value substitutes to nothing",
			in:   "x$empty" + "y",
			want: "xy",
		},
		{
			name:        "unknown token kept verbatim",
			in:          "path: $missing_var/data",
			want:        "path: $missing_var/data",
			wantMissing: []string{"missing_var"},
		},
		{
			name:        "unknown token reported once",
			in:          "$nope and $nope again",
			want:        "$nope and $nope again",
			wantMissing: []string{"nope"},
		},
		{
			name: "bare dollar untouched",
			in:   "costs $ 5",
			want: "costs $ 5",
		},
		{
			name: "token ends at non-word character",
			in:   "$home/logs",
			want: "/var/www/logs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, missing := compose.Substitute(tt.in, params)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestSubstituteIsSinglePass(t *testing.T) {
	t.Parallel()

	// A replacement value containing a token is not expanded again.
	params := map[string]string{
		"a": "$b",
		"b": "deep",
	}

	got, missing := compose.Substitute("value: $a", params)
	assert.Equal(t, "value: $b", got)
	assert.Empty(t, missing)
}
