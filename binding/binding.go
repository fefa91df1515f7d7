// Package binding maps UI input events to chart callbacks.
//
// Callbacks are registered explicitly on an App at startup. The App owns
// the immutable dataset and nothing else, so a dispatch is a pure function
// of the trigger and the selected value.
package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/siherrmann/populationDashboard/chart"
	"github.com/siherrmann/populationDashboard/dataset"
	"github.com/siherrmann/populationDashboard/model"

	"golang.org/x/sync/errgroup"
)

type Event string

const EVENT_CHANGE Event = "change"

var (
	ErrUnknownTrigger = errors.New("unknown trigger")
	ErrUnknownOutput  = errors.New("unknown output")
)

// Trigger identifies an input component and the event it fires.
type Trigger struct {
	InputID string `json:"input_id"`
	Event   Event  `json:"event"`
}

// Update is the new figure for one output component.
type Update struct {
	OutputID string       `json:"output_id"`
	Figure   model.Figure `json:"figure"`
}

type callback struct {
	outputID string
	build    chart.Builder
}

// App holds the dataset and the callback table.
type App struct {
	dataset   *dataset.Dataset
	callbacks map[Trigger][]callback
}

func NewApp(ds *dataset.Dataset) *App {
	return &App{
		dataset:   ds,
		callbacks: map[Trigger][]callback{},
	}
}

// Dataset returns the dataset the app was built with
func (a *App) Dataset() *dataset.Dataset {
	return a.dataset
}

// Callback registers build to produce the figure of outputID whenever trigger fires.
// Registering the same output twice for a trigger replaces the earlier builder.
func (a *App) Callback(trigger Trigger, outputID string, build chart.Builder) {
	for i, cb := range a.callbacks[trigger] {
		if cb.outputID == outputID {
			a.callbacks[trigger][i].build = build
			return
		}
	}
	a.callbacks[trigger] = append(a.callbacks[trigger], callback{outputID: outputID, build: build})
}

// Outputs returns the output IDs bound to trigger in registration order.
func (a *App) Outputs(trigger Trigger) []string {
	outputs := []string{}
	for _, cb := range a.callbacks[trigger] {
		outputs = append(outputs, cb.outputID)
	}
	return outputs
}

// Dispatch filters the dataset by value and runs every callback of trigger.
// The callbacks run concurrently, updates come back in registration order.
func (a *App) Dispatch(ctx context.Context, trigger Trigger, value string) ([]Update, error) {
	callbacks, ok := a.callbacks[trigger]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownTrigger, trigger.InputID, trigger.Event)
	}

	records := a.dataset.FilterByContinent(value)
	selection := a.selection(value)

	updates := make([]Update, len(callbacks))
	g, gctx := errgroup.WithContext(ctx)
	for i, cb := range callbacks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			updates[i] = Update{OutputID: cb.outputID, Figure: cb.build(records, selection)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return updates, nil
}

// Figure runs the single callback of trigger bound to outputID.
func (a *App) Figure(ctx context.Context, trigger Trigger, outputID string, value string) (model.Figure, error) {
	callbacks, ok := a.callbacks[trigger]
	if !ok {
		return model.Figure{}, fmt.Errorf("%w: %s/%s", ErrUnknownTrigger, trigger.InputID, trigger.Event)
	}
	if err := ctx.Err(); err != nil {
		return model.Figure{}, err
	}

	for _, cb := range callbacks {
		if cb.outputID == outputID {
			return cb.build(a.dataset.FilterByContinent(value), a.selection(value)), nil
		}
	}
	return model.Figure{}, fmt.Errorf("%w: %s", ErrUnknownOutput, outputID)
}

func (a *App) selection(value string) model.Selection {
	return model.Selection{Continent: value, Year: a.dataset.Year()}
}
