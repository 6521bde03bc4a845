package sessioncart

import (
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		raw  map[string]string
		want map[uint]int
	}{
		"empty hash": {
			raw:  map[string]string{},
			want: map[uint]int{},
		},
		"well formed": {
			raw:  map[string]string{"1": "2", "42": "1"},
			want: map[uint]int{1: 2, 42: 1},
		},
		"malformed fields dropped": {
			raw:  map[string]string{"1": "2", "abc": "3", "4": "lots"},
			want: map[uint]int{1: 2},
		},
		"non-positive quantities dropped": {
			raw:  map[string]string{"1": "0", "2": "-3", "3": "1"},
			want: map[uint]int{3: 1},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := decode(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decode(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
