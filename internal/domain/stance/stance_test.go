package stance_test

import (
	"testing"

	"github.com/Skelly0/DuelBot/internal/domain/stance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_Relationship(t *testing.T) {
	tests := []struct {
		name         string
		a, b         stance.Stance
		wantA, wantB stance.Advantage
		asymA, asymB stance.Advantage
	}{
		{name: "one step", a: "Bagr", b: "Radae", wantA: stance.Advantaged, wantB: stance.Disadvantaged, asymA: stance.Advantaged, asymB: stance.Disadvantaged},
		{name: "two steps", a: "Bagr", b: "Darda", wantA: stance.Advantaged, wantB: stance.Disadvantaged, asymA: stance.Advantaged, asymB: stance.Disadvantaged},
		{name: "opposite", a: "Bagr", b: "Tigr", wantA: stance.Neutral, wantB: stance.Neutral, asymA: stance.Neutral, asymB: stance.Neutral},
		{name: "four steps", a: "Bagr", b: "Riposje", wantA: stance.Neutral, wantB: stance.Neutral, asymA: stance.Neutral, asymB: stance.Advantaged},
		{name: "five steps", a: "Bagr", b: "Tortad", wantA: stance.Disadvantaged, wantB: stance.Advantaged, asymA: stance.Disadvantaged, asymB: stance.Advantaged},
		{name: "mirror", a: "Tigr", b: "Tigr", wantA: stance.Neutral, wantB: stance.Neutral, asymA: stance.Neutral, asymB: stance.Neutral},
		{name: "wraps around", a: "Tortad", b: "Radae", wantA: stance.Advantaged, wantB: stance.Disadvantaged, asymA: stance.Advantaged, asymB: stance.Disadvantaged},
		{name: "four steps wrapped", a: "Darda", b: "Bagr", wantA: stance.Neutral, wantB: stance.Neutral, asymA: stance.Neutral, asymB: stance.Advantaged},
	}

	symmetric := stance.NewDefaultRing()
	asymmetric := stance.NewDefaultRing(stance.WithAsymmetricDistanceFour())
	require.False(t, symmetric.AsymmetricDistanceFour())
	require.True(t, asymmetric.AsymmetricDistanceFour())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotA, gotB := symmetric.Relationship(tt.a, tt.b)
			assert.Equal(t, tt.wantA, gotA)
			assert.Equal(t, tt.wantB, gotB)

			gotA, gotB = asymmetric.Relationship(tt.a, tt.b)
			assert.Equal(t, tt.asymA, gotA)
			assert.Equal(t, tt.asymB, gotB)
		})
	}
}

func TestRing_AdjacencyAndOpposition(t *testing.T) {
	ring := stance.NewDefaultRing()
	all := ring.Stances()

	for i, s := range all {
		adjacent := 0
		opposite := 0
		for _, other := range all {
			if ring.Adjacent(s, other) {
				adjacent++
			}
			if ring.Opposite(s, other) {
				opposite++
			}
		}
		assert.Equal(t, 2, adjacent, "%s should have two neighbours", s)
		assert.Equal(t, 1, opposite, "%s should have one opposite", s)

		assert.True(t, ring.Adjacent(s, all[(i+1)%stance.RingSize]))
		assert.True(t, ring.Adjacent(s, all[(i+5)%stance.RingSize]))
		assert.True(t, ring.Opposite(s, all[(i+3)%stance.RingSize]))
		assert.False(t, ring.Adjacent(s, s))
	}

	assert.True(t, ring.Opposite("Radae", "Riposje"))
	assert.True(t, ring.Opposite("Darda", "Tortad"))
	assert.True(t, ring.Adjacent("Tortad", "Bagr"))
}

func TestRing_Parse(t *testing.T) {
	ring := stance.NewDefaultRing()

	tests := []struct {
		input string
		want  stance.Stance
		ok    bool
	}{
		{input: "Bagr", want: "Bagr", ok: true},
		{input: "  radae ", want: "Radae", ok: true},
		{input: "TIGR", want: "Tigr", ok: true},
		{input: "Ri posje", want: "Riposje", ok: true},
		{input: "Sword", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ring.Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, ring.Contains("tortad"))
	assert.False(t, ring.Contains("nope"))
}

func TestRing_Matching(t *testing.T) {
	ring := stance.NewDefaultRing()

	assert.Equal(t, []stance.Stance{"Radae", "Darda", "Tortad"}, ring.Matching("d"))
	assert.Len(t, ring.Matching(""), stance.RingSize)
	assert.Empty(t, ring.Matching("xyz"))
}

func TestNewRing_Validation(t *testing.T) {
	_, err := stance.NewRing([]string{"a", "b", "c"})
	assert.Error(t, err)

	_, err = stance.NewRing([]string{"a", "b", "c", "d", "e", "A"})
	assert.Error(t, err)

	_, err = stance.NewRing([]string{"a", "b", "c", "d", "e", " "})
	assert.Error(t, err)

	ring, err := stance.NewRing([]string{"North", "NE", "SE", "South", "SW", "NW"})
	require.NoError(t, err)
	assert.Equal(t, 3, ring.Distance("North", "South"))
	assert.Equal(t, 5, ring.Distance("North", "NW"))
}

func TestRing_UnknownStancePanics(t *testing.T) {
	ring := stance.NewDefaultRing()
	assert.Panics(t, func() {
		ring.Relationship("Bagr", "Sword")
	})
}

func TestAdvantage_String(t *testing.T) {
	assert.Equal(t, "Advantage", stance.Advantaged.String())
	assert.Equal(t, "Disadvantage", stance.Disadvantaged.String())
	assert.Equal(t, "Neutral", stance.Neutral.String())
}
