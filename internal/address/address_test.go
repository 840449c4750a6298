package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Components
	}{
		{
			name: "full four part address",
			in:   "123 Main St, Springfield, IL 62701, USA",
			want: Components{Street: "123 Main St", City: "Springfield", State: "IL", Zip: "62701"},
		},
		{
			name: "three parts without country",
			in:   "500 Oak Ave, Austin, TX 78701",
			want: Components{Street: "500 Oak Ave", City: "Austin", State: "TX", Zip: "78701"},
		},
		{
			name: "zip plus four",
			in:   "1 Center Plaza, Boston, MA 02108-1234, USA",
			want: Components{Street: "1 Center Plaza", City: "Boston", State: "MA", Zip: "02108-1234"},
		},
		{
			name: "state only fallback when zip missing",
			in:   "42 Elm St, Denver, CO, USA",
			want: Components{Street: "42 Elm St", City: "Denver", State: "CO"},
		},
		{
			name: "two part fallback",
			in:   "77 Pine Rd, Portland OR 97201",
			want: Components{Street: "77 Pine Rd", City: "Portland", State: "OR", Zip: "97201"},
		},
		{
			name: "two part fallback with multiword city",
			in:   "9 Bay St, San Francisco CA 94111",
			want: Components{Street: "9 Bay St", City: "San Francisco", State: "CA", Zip: "94111"},
		},
		{
			name: "two parts without trailing state zip",
			in:   "somewhere, nowhere",
			want: Components{Street: "somewhere"},
		},
		{
			name: "single part degrades to empty",
			in:   "just a street",
			want: Components{},
		},
		{
			name: "empty input",
			in:   "",
			want: Components{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestExtractZip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123 Main St, Springfield, IL 62701, USA", "62701"},
		{"1 Center Plaza, Boston, MA 02108-1234", "02108"},
		{"no zip here", ""},
		{"", ""},
		{"123456 is six digits", ""},
		{"first 10001 then 10002", "10001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractZip(tt.in), "input %q", tt.in)
	}
}
