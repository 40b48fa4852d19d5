package bytescan

import (
	"bytes"
	"fmt"
	"testing"
)

// Every scanner is listed once here; the property tests below and the
// guard-page, differential and benchmark suites all range over these
// tables, so adding a variant automatically subjects it to the full
// battery.

type byteVariant struct {
	name string
	fn   func([]byte, byte) int
}

type pairVariant struct {
	name string
	fn   func([]byte, byte, byte) int
}

var byteVariants = []byteVariant{
	{"scalar", IndexByteScalar},
	{"swar32", IndexByteSWAR32},
	{"swar32_aligned", IndexByteSWAR32Aligned},
	{"swar64", IndexByteSWAR64},
	{"swar64_aligned", IndexByteSWAR64Aligned},
	{"vec128", IndexByteVec128},
	{"vec128_aligned", IndexByteVec128Aligned},
	{"hybrid", IndexByteHybrid},
	{"auto", IndexByte},
}

var pairVariants = []pairVariant{
	{"scalar", IndexPairScalar},
	{"swar64", IndexPairSWAR64},
	{"swar64_aligned", IndexPairSWAR64Aligned},
	{"vec128", IndexPairVec128},
	{"vec128_carry", IndexPairVec128Carry},
	{"vec128_aligned", IndexPairVec128Aligned},
	{"auto", IndexPair},
}

func TestByteVariantsBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty", []byte{}, 'a', NotFound},
		{"nil", nil, 'a', NotFound},
		{"single_match", []byte{'a'}, 'a', 0},
		{"single_no_match", []byte{'a'}, 'b', NotFound},
		{"first_position", []byte("hello"), 'h', 0},
		{"middle_position", []byte("hello"), 'l', 2},
		{"last_position", []byte("hello"), 'o', 4},
		{"not_found", []byte("hello"), 'x', NotFound},
		{"multiple_returns_first", []byte("hello world"), 'o', 4},
		{"null_byte", []byte{1, 0, 2, 0}, 0, 1},
		{"high_byte", []byte{1, 2, 255, 4}, 255, 2},
		{"example_string", []byte("Now is the time *# for all good men"), '*', 16},
		{"all_filler", []byte("aaaaaaaaaa"), '*', NotFound},
		{"long_tail", append(bytes.Repeat([]byte{'a'}, 100), 'X'), 'X', 100},
	}

	for _, v := range byteVariants {
		for _, tt := range tests {
			t.Run(v.name+"/"+tt.name, func(t *testing.T) {
				if got := v.fn(tt.haystack, tt.needle); got != tt.want {
					t.Errorf("%s(%q, %q) = %d, want %d", v.name, tt.haystack, tt.needle, got, tt.want)
				}
			})
		}
	}
}

func TestPairVariantsBasic(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		want     int
	}{
		{"empty", []byte{}, NotFound},
		{"single_first_byte_only", []byte{'*'}, NotFound},
		{"exact_pair", []byte("*#"), 0},
		{"pair_at_start", []byte("*#aaaa"), 0},
		{"pair_in_middle", []byte("aaa*#aa"), 3},
		{"pair_at_end", []byte("aaaaa*#"), 5},
		{"trailing_first_byte_no_match", []byte("aaaaaa*"), NotFound},
		{"reversed_pair_no_match", []byte("aa#*aa"), NotFound},
		{"first_of_two_pairs", []byte("aa*#aa*#"), 2},
		{"first_bytes_everywhere", []byte("*****#"), 4},
		{"example_string", []byte("Now is the time *# for all good men"), 16},
	}

	for _, v := range pairVariants {
		for _, tt := range tests {
			t.Run(v.name+"/"+tt.name, func(t *testing.T) {
				if got := v.fn(tt.haystack, '*', '#'); got != tt.want {
					t.Errorf("%s(%q) = %d, want %d", v.name, tt.haystack, got, tt.want)
				}
			})
		}
	}
}

// TestByteVariantsMatchStdlib cross-checks against bytes.IndexByte on
// buffers sized around the 4/8/16-byte stride boundaries.
func TestByteVariantsMatchStdlib(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 23, 24, 31, 32, 33, 47, 48, 63, 64, 65, 127, 128, 129}

	for _, size := range sizes {
		haystack := bytes.Repeat([]byte{'a'}, size)
		for _, spot := range []int{0, size / 2, size - 1} {
			for i := range haystack {
				haystack[i] = 'a'
			}
			haystack[spot] = 'X'
			want := bytes.IndexByte(haystack, 'X')
			for _, v := range byteVariants {
				t.Run(fmt.Sprintf("%s/size_%d_spot_%d", v.name, size, spot), func(t *testing.T) {
					if got := v.fn(haystack, 'X'); got != want {
						t.Errorf("got %d, stdlib %d", got, want)
					}
				})
			}
		}
	}
}

// TestByteVariantsAllAlignments slides a window across a backing buffer so
// every variant sees every base alignment within a 16-byte block, every
// length crossing the stride boundaries, and a match at every position.
// The scalar scanner is the oracle.
func TestByteVariantsAllAlignments(t *testing.T) {
	backing := make([]byte, 96)
	for off := 0; off <= 16; off++ {
		for length := 0; length <= 48; length++ {
			s := backing[off : off+length]
			for pos := -1; pos < length; pos++ {
				for i := range backing {
					backing[i] = 'a'
				}
				if pos >= 0 {
					s[pos] = '*'
				}
				want := IndexByteScalar(s, '*')
				for _, v := range byteVariants[1:] {
					if got := v.fn(s, '*'); got != want {
						t.Fatalf("%s: off %d len %d pos %d: got %d, want %d",
							v.name, off, length, pos, got, want)
					}
				}
			}
		}
	}
}

// TestPairVariantsAllAlignments is the pair analogue; in particular it
// plants matches straddling every 4/8/16-byte boundary the wide scanners
// step over.
func TestPairVariantsAllAlignments(t *testing.T) {
	backing := make([]byte, 96)
	for off := 0; off <= 16; off++ {
		for length := 0; length <= 48; length++ {
			s := backing[off : off+length]
			for pos := -1; pos < length-1; pos++ {
				for i := range backing {
					backing[i] = 'a'
				}
				if pos >= 0 {
					s[pos] = '*'
					s[pos+1] = '#'
				}
				want := IndexPairScalar(s, '*', '#')
				for _, v := range pairVariants[1:] {
					if got := v.fn(s, '*', '#'); got != want {
						t.Fatalf("%s: off %d len %d pos %d: got %d, want %d",
							v.name, off, length, pos, got, want)
					}
				}
			}
		}
	}
}

// TestLeftmostMatchWins plants two occurrences and checks every variant
// reports the earlier one, for every gap between them.
func TestLeftmostMatchWins(t *testing.T) {
	for first := 0; first < 24; first++ {
		for gap := 1; gap < 24; gap++ {
			haystack := bytes.Repeat([]byte{'a'}, 56)
			haystack[first] = '*'
			haystack[first+gap] = '*'
			for _, v := range byteVariants {
				if got := v.fn(haystack, '*'); got != first {
					t.Fatalf("%s: occurrences at %d and %d: got %d", v.name, first, first+gap, got)
				}
			}

			pairHaystack := bytes.Repeat([]byte{'a'}, 56)
			pairHaystack[first] = '*'
			pairHaystack[first+1] = '#'
			pairHaystack[first+gap+1] = '*'
			pairHaystack[first+gap+2] = '#'
			wantPair := IndexPairScalar(pairHaystack, '*', '#')
			for _, v := range pairVariants {
				if got := v.fn(pairHaystack, '*', '#'); got != wantPair {
					t.Fatalf("%s: pairs at %d and %d: got %d, want %d",
						v.name, first, first+gap+1, got, wantPair)
				}
			}
		}
	}
}

// TestBorrowHardening pins the inputs where the classic subtract detector
// would misfire if used unmasked: a needle just outside the scanned window
// followed by needle^0x01, and the needle^0x01 byte sandwiched between the
// two pattern bytes.
func TestBorrowHardening(t *testing.T) {
	t.Run("byte_before_window", func(t *testing.T) {
		// backing[pos] == needle, window starts at pos+1 with needle^0x01.
		// The aligned variants read the word containing both; the lane
		// before the window must neither match nor contaminate the first
		// live lane.
		backing := bytes.Repeat([]byte{'a'}, 64)
		for pos := 0; pos < 32; pos++ {
			for i := range backing {
				backing[i] = 'a'
			}
			backing[pos] = '*'
			backing[pos+1] = '*' ^ 0x01
			s := backing[pos+1 : pos+1+24]
			for _, v := range byteVariants {
				if got := v.fn(s, '*'); got != NotFound {
					t.Fatalf("%s: pos %d: got %d, want NotFound", v.name, pos, got)
				}
			}
		}
	})

	t.Run("pair_with_near_miss_between", func(t *testing.T) {
		// "*+#" contains no "*#" pair, but a borrow out of the '*' lane
		// could fake a first-byte hit on the '+' lane, which lines up with
		// the genuine '#' hit one lane later.
		backing := bytes.Repeat([]byte{'a'}, 64)
		for pos := 0; pos < 32; pos++ {
			for i := range backing {
				backing[i] = 'a'
			}
			backing[pos] = '*'
			backing[pos+1] = '*' ^ 0x01 // '+'
			backing[pos+2] = '#'
			for off := 0; off <= 8 && off <= pos; off++ {
				s := backing[off : off+40]
				want := IndexPairScalar(s, '*', '#')
				for _, v := range pairVariants {
					if got := v.fn(s, '*', '#'); got != want {
						t.Fatalf("%s: pos %d off %d: got %d, want %d", v.name, pos, off, got, want)
					}
				}
			}
		}
	})
}
