package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/foxgrid/internal/common"
	"github.com/domino14/foxgrid/internal/foxcount"
	"github.com/domino14/foxgrid/internal/stores"
)

func TestProgressModel(t *testing.T) {
	m := newProgressModel("counting")
	assert.Equal(t, 0.0, m.fraction())

	next, cmd := m.Update(progressMsg{done: 25, total: 100})
	assert.Nil(t, cmd)
	m = next.(progressModel)
	assert.InDelta(t, 0.25, m.fraction(), 1e-12)
	assert.Contains(t, m.View(), "25/100")
	assert.True(t, strings.HasPrefix(m.View(), "counting\n"))

	h := foxcount.NewHistogram(1)
	h.Add(1)
	next, cmd = m.Update(finishedMsg{hist: h})
	m = next.(progressModel)
	assert.NotNil(t, cmd)
	assert.Same(t, h, m.hist)
}

func TestProgressModelCtrlC(t *testing.T) {
	m := newProgressModel("counting")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, next.(progressModel).interrupted)
}

func TestRunHistogramRoundTrip(t *testing.T) {
	comp, err := common.ParseComposition("f3o3x3")
	require.NoError(t, err)
	word := common.InitializeWord("fox")
	h := foxcount.NewHistogram(8)
	require.NoError(t, h.AddN(0, 792))
	require.NoError(t, h.AddN(5, 8))

	run := runFromHistogram(comp, word, h, 0)
	assert.Equal(t, "f3o3x3", run.Composition)
	assert.Equal(t, uint64(800), run.Total)
	assert.Equal(t, map[int]uint64{0: 792, 5: 8}, run.Buckets)

	back, err := histogramFromRun(run, 8)
	require.NoError(t, err)
	assert.Equal(t, h.Buckets(), back.Buckets())
	assert.Equal(t, h.Total(), back.Total())
}

func TestHistogramFromRunRejectsNegativeBucket(t *testing.T) {
	_, err := histogramFromRun(&stores.Run{ID: 3, Buckets: map[int]uint64{-1: 3}}, 24)
	assert.ErrorIs(t, err, foxcount.ErrNegativeCount)
}

func TestSetLogLevel(t *testing.T) {
	setLogLevel("DEBUG")
	assert.Equal(t, "debug", zerolog.GlobalLevel().String())
	setLogLevel("bogus")
	assert.Equal(t, "warn", zerolog.GlobalLevel().String())
}
