package binding

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/siherrmann/populationDashboard/chart"
	"github.com/siherrmann/populationDashboard/dataset"
	"github.com/siherrmann/populationDashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dropdownChange = Trigger{InputID: "dropdown-continent", Event: EVENT_CHANGE}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ds, err := dataset.LoadBundled()
	require.NoError(t, err)

	app := NewApp(ds)
	app.Callback(dropdownChange, "graph-population", chart.Bar)
	app.Callback(dropdownChange, "graph-share", chart.Pie)
	app.Callback(dropdownChange, "graph-scatter", chart.Scatter)
	app.Callback(dropdownChange, "graph-box", chart.Box)
	return app
}

func TestDispatch(t *testing.T) {
	app := newTestApp(t)

	t.Run("Returns one update per output in registration order", func(t *testing.T) {
		updates, err := app.Dispatch(context.Background(), dropdownChange, "Oceania")
		require.NoError(t, err)
		require.Len(t, updates, 4)

		assert.Equal(t, "graph-population", updates[0].OutputID)
		assert.Equal(t, model.CHART_KIND_BAR, updates[0].Figure.Kind)
		assert.Equal(t, "graph-share", updates[1].OutputID)
		assert.Equal(t, model.CHART_KIND_PIE, updates[1].Figure.Kind)
		assert.Equal(t, "graph-scatter", updates[2].OutputID)
		assert.Equal(t, model.CHART_KIND_SCATTER, updates[2].Figure.Kind)
		assert.Equal(t, "graph-box", updates[3].OutputID)
		assert.Equal(t, model.CHART_KIND_BOX, updates[3].Figure.Kind)
	})

	t.Run("All charts see the same filtered records", func(t *testing.T) {
		updates, err := app.Dispatch(context.Background(), dropdownChange, "Oceania")
		require.NoError(t, err)

		assert.Equal(t, []string{"Australia", "New Zealand"}, updates[0].Figure.Data[0].X)
		assert.Equal(t, []string{"Australia", "New Zealand"}, updates[1].Figure.Data[0].Labels)
		assert.Len(t, updates[2].Figure.Data, 2)
		assert.Equal(t, 2, updates[3].Figure.Summary.Count)
	})

	t.Run("Same input gives the same updates", func(t *testing.T) {
		first, err := app.Dispatch(context.Background(), dropdownChange, "Europe")
		require.NoError(t, err)
		second, err := app.Dispatch(context.Background(), dropdownChange, "Europe")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Unknown continent gives empty charts", func(t *testing.T) {
		updates, err := app.Dispatch(context.Background(), dropdownChange, "Atlantis")
		require.NoError(t, err)
		require.Len(t, updates, 4)
		assert.Empty(t, updates[0].Figure.Data[0].X)
		assert.Empty(t, updates[2].Figure.Data)
		assert.Nil(t, updates[3].Figure.Summary)
	})

	t.Run("Unknown trigger", func(t *testing.T) {
		_, err := app.Dispatch(context.Background(), Trigger{InputID: "slider", Event: EVENT_CHANGE}, "Asia")
		assert.ErrorIs(t, err, ErrUnknownTrigger)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := app.Dispatch(ctx, dropdownChange, "Asia")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFigure(t *testing.T) {
	app := newTestApp(t)

	t.Run("Single output", func(t *testing.T) {
		figure, err := app.Figure(context.Background(), dropdownChange, "graph-box", "Asia")
		require.NoError(t, err)
		assert.Equal(t, model.CHART_KIND_BOX, figure.Kind)
		assert.Equal(t, 33, figure.Summary.Count)
	})

	t.Run("Unknown output", func(t *testing.T) {
		_, err := app.Figure(context.Background(), dropdownChange, "graph-map", "Asia")
		assert.ErrorIs(t, err, ErrUnknownOutput)
	})

	t.Run("Unknown trigger", func(t *testing.T) {
		_, err := app.Figure(context.Background(), Trigger{InputID: "dropdown-continent", Event: "click"}, "graph-box", "Asia")
		assert.ErrorIs(t, err, ErrUnknownTrigger)
	})
}

func TestCallback(t *testing.T) {
	ds := dataset.New(2007, []model.Record{{Country: "A", Continent: "X", Year: 2007}})
	app := NewApp(ds)

	var calls atomic.Int32
	counting := func(records []model.Record, selection model.Selection) model.Figure {
		calls.Add(1)
		return model.Figure{Kind: model.CHART_KIND_BAR, Title: selection.Continent}
	}

	app.Callback(dropdownChange, "a", chart.Bar)
	app.Callback(dropdownChange, "b", chart.Pie)
	app.Callback(dropdownChange, "a", counting)

	t.Run("Re-registering replaces in place", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, app.Outputs(dropdownChange))
	})

	t.Run("Replaced builder runs", func(t *testing.T) {
		updates, err := app.Dispatch(context.Background(), dropdownChange, "X")
		require.NoError(t, err)
		assert.Equal(t, "X", updates[0].Figure.Title)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, 2007, ds.Year())
	})

	t.Run("Outputs of unknown trigger", func(t *testing.T) {
		assert.Empty(t, app.Outputs(Trigger{InputID: "none"}))
	})
}
