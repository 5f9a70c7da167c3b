package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultReferenceFrequency(t *testing.T) {
	assert.Equal(t, 440.0, ReferenceFrequency())
}

func TestSetReferenceFrequency(t *testing.T) {
	t.Cleanup(func() { _ = SetReferenceFrequency(DefaultReferenceFrequency) })

	assert := assert.New(t)
	assert.NoError(SetReferenceFrequency(432.0))
	assert.Equal(432.0, ReferenceFrequency())

	a4, err := mustNote(t, "A").WithOctave(4)
	assert.NoError(err)
	hz, err := a4.Frequency()
	assert.NoError(err)
	assert.InDelta(432.0, hz, 1e-9)
}

func TestSetReferenceFrequencyRejectsNonPositive(t *testing.T) {
	assert.ErrorIs(t, SetReferenceFrequency(0), ErrInvalidTuningValue)
	assert.ErrorIs(t, SetReferenceFrequency(-440), ErrInvalidTuningValue)
}

func TestFrequency(t *testing.T) {
	cases := []struct {
		note   string
		octave int
		want   float64
	}{
		{"A", 4, 440.0},
		{"A", 5, 880.0},
		{"A", 3, 220.0},
		{"C", 4, 261.6255653005986},
		{"E", 4, 329.6275569128699},
		{"C", 0, 16.351597831287414},
	}

	for _, c := range cases {
		t.Run(c.note, func(t *testing.T) {
			assert := assert.New(t)
			n, err := mustNote(t, c.note).WithOctave(c.octave)
			assert.NoError(err)
			hz, err := n.Frequency()
			assert.NoError(err)
			assert.InDelta(c.want, hz, 1e-6)
		})
	}
}

func TestFrequencyAt(t *testing.T) {
	assert := assert.New(t)

	a5, err := mustNote(t, "A").WithOctave(5)
	assert.NoError(err)
	hz, err := a5.FrequencyAt(442.0)
	assert.NoError(err)
	assert.InDelta(884.0, hz, 1e-9)

	_, err = a5.FrequencyAt(0)
	assert.ErrorIs(err, ErrInvalidTuningValue)
}

func TestFrequencyRequiresOctave(t *testing.T) {
	_, err := mustNote(t, "A").Frequency()
	assert.ErrorIs(t, err, ErrMissingOctave)
}

func TestFrequencyOnRest(t *testing.T) {
	_, err := mustNote(t, "R").Frequency()
	assert.ErrorIs(t, err, ErrRestHasNoPitch)
}
