package readings

import (
	"testing"

	"github.com/chrissnell/tempstats/internal/types"
	"github.com/google/go-cmp/cmp"
)

func reading(time string, temp float32) types.Reading {
	return types.Reading{Date: "01/01/2024", Time: time, Temperature: temp, Trend: types.TrendSteady}
}

func TestCollectionAppendKeepsFileOrder(t *testing.T) {
	c := New(0)
	c.Append(reading("10:00:00", 20))
	c.Append(reading("11:00:00", 22))
	c.Append(reading("12:00:00", 18))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", c.Len())
	}

	want := []types.Reading{
		reading("10:00:00", 20),
		reading("11:00:00", 22),
		reading("12:00:00", 18),
	}
	if diff := cmp.Diff(want, c.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	if c.At(2).Time != "12:00:00" {
		t.Errorf("At(2).Time = %q, expected 12:00:00", c.At(2).Time)
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	c := FromReadings([]types.Reading{reading("10:00:00", 20)})

	all := c.All()
	all[0].Temperature = 99

	if c.At(0).Temperature != 20 {
		t.Errorf("mutating All() result changed the collection: got %v", c.At(0).Temperature)
	}
}

func TestNilCollection(t *testing.T) {
	var c *Collection
	if c.Len() != 0 {
		t.Errorf("nil Len() = %d, expected 0", c.Len())
	}
	if len(c.All()) != 0 {
		t.Errorf("nil All() returned %d readings", len(c.All()))
	}
}

func TestTemperatures(t *testing.T) {
	c := FromReadings([]types.Reading{reading("a", 1.5), reading("b", -3.25)})
	want := []float64{1.5, -3.25}
	if diff := cmp.Diff(want, c.Temperatures()); diff != "" {
		t.Errorf("Temperatures() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByTemperature(t *testing.T) {
	tests := []struct {
		name  string
		input []types.Reading
		want  []types.Reading
	}{
		{
			name:  "empty",
			input: nil,
			want:  []types.Reading{},
		},
		{
			name:  "single",
			input: []types.Reading{reading("a", 10)},
			want:  []types.Reading{reading("a", 10)},
		},
		{
			name:  "three readings",
			input: []types.Reading{reading("a", 20), reading("b", 22), reading("c", 18)},
			want:  []types.Reading{reading("c", 18), reading("a", 20), reading("b", 22)},
		},
		{
			name:  "already sorted",
			input: []types.Reading{reading("a", 1), reading("b", 2), reading("c", 3)},
			want:  []types.Reading{reading("a", 1), reading("b", 2), reading("c", 3)},
		},
		{
			name:  "reverse order",
			input: []types.Reading{reading("a", 3), reading("b", 2), reading("c", 1)},
			want:  []types.Reading{reading("c", 1), reading("b", 2), reading("a", 3)},
		},
		{
			name: "equal temperatures keep input order",
			input: []types.Reading{
				reading("a", 15), reading("b", 10), reading("c", 15), reading("d", 10), reading("e", 12),
			},
			want: []types.Reading{
				reading("b", 10), reading("d", 10), reading("e", 12), reading("a", 15), reading("c", 15),
			},
		},
		{
			name:  "negative values",
			input: []types.Reading{reading("a", -1.5), reading("b", -10), reading("c", 0)},
			want:  []types.Reading{reading("b", -10), reading("a", -1.5), reading("c", 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FromReadings(tt.input)
			before := in.All()

			sorted := SortByTemperature(in)

			if diff := cmp.Diff(tt.want, sorted.All()); diff != "" {
				t.Errorf("SortByTemperature() mismatch (-want +got):\n%s", diff)
			}
			if !sorted.IsSortedByTemperature() {
				t.Errorf("IsSortedByTemperature() = false after sorting")
			}
			if diff := cmp.Diff(before, in.All()); diff != "" {
				t.Errorf("input collection was modified (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSortByTemperatureIdempotent(t *testing.T) {
	in := FromReadings([]types.Reading{
		reading("a", 21.5), reading("b", 19), reading("c", 21.5), reading("d", 30), reading("e", -2),
	})

	once := SortByTemperature(in)
	twice := SortByTemperature(once)

	if diff := cmp.Diff(once.All(), twice.All()); diff != "" {
		t.Errorf("sorting a sorted collection changed it (-once +twice):\n%s", diff)
	}
}

func TestIsSortedByTemperature(t *testing.T) {
	if !New(0).IsSortedByTemperature() {
		t.Errorf("empty collection should be sorted")
	}
	if FromReadings([]types.Reading{reading("a", 2), reading("b", 1)}).IsSortedByTemperature() {
		t.Errorf("descending collection reported as sorted")
	}
}
