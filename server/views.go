package server

import (
	"context"
	"html/template"
	"time"

	"multigrid/server/gridview"

	channerics "github.com/niceyeti/channerics/channels"
)

// rootView is the index page: the container for the view components, their
// channel wiring, and the websocket bootstrap script.
type rootView struct {
	views   []gridview.ViewComponent
	updates <-chan []gridview.EleUpdate
}

// newRootView builds the page's views over the frame stream.
func newRootView(
	ctx context.Context,
	frames <-chan gridview.Frame,
) (*rootView, error) {
	views, err := gridview.NewViewBuilder[gridview.Frame, [][]gridview.Cell]().
		WithContext(ctx).
		WithModel(frames, gridview.Convert).
		WithView(func(
			done <-chan struct{},
			cells <-chan [][]gridview.Cell) gridview.ViewComponent {
			return gridview.NewTileGrid(done, cells)
		}).
		Build()
	if err != nil {
		return nil, err
	}

	return &rootView{
		views:   views,
		updates: fanIn(ctx.Done(), views),
	}, nil
}

// Updates returns the aggregated ele-update channel for all views.
func (rv *rootView) Updates() <-chan []gridview.EleUpdate {
	return rv.updates
}

// Parse assembles the index template: the func-map shared by child views, the
// websocket bootstrap, and each view's nested template.
func (rv *rootView) Parse(
	parent *template.Template,
) (name string, err error) {
	rt := parent.Funcs(
		template.FuncMap{
			"add":  func(i, j int) int { return i + j },
			"sub":  func(i, j int) int { return i - j },
			"mult": func(i, j int) int { return i * j },
			"div":  func(i, j int) int { return i / j },
		})

	var bodySpec string
	for _, vc := range rv.views {
		tname, parseErr := vc.Parse(rt)
		if parseErr != nil {
			return "", parseErr
		}
		bodySpec += `{{ template "` + tname + `" . }}`
	}

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<!--Client bootstrap: apply pushed ele-updates to the views.-->
			<script>
				const ws = new WebSocket("ws://" + location.host + "/ws");
				ws.onopen = function (event) {
					console.log("web socket opened")
				};
				ws.onerror = function (event) {
					console.log("web socket error: ", event);
				};
				ws.onmessage = function (event) {
					const items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.EleId)
						if (!ele) continue;
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value)
							}
						}
					}
				}
			</script>
		</head>
		<body style="background: #111; color: #ddd;">
		<h3>multigrid: live observation view</h3>
		` + bodySpec + `
		</body></html>
	{{ end }}
	`

	_, err = rt.Parse(indexTemplate)
	return
}

// fanIn aggregates the views' ele-update channels into one batched channel.
func fanIn(
	done <-chan struct{},
	views []gridview.ViewComponent,
) <-chan []gridview.EleUpdate {
	inputs := make([]<-chan []gridview.EleUpdate, len(views))
	for i, view := range views {
		inputs[i] = view.Updates()
	}
	return batchify(
		done,
		channerics.Merge(done, inputs...),
		time.Millisecond*20)
}

// batchify collects updates within the rate window before sending,
// overwriting earlier values for the same ele-id so only the latest value per
// element goes out.
func batchify(
	done <-chan struct{},
	source <-chan []gridview.EleUpdate,
	rate time.Duration,
) <-chan []gridview.EleUpdate {
	output := make(chan []gridview.EleUpdate)

	go func() {
		defer close(output)

		pending := map[string]gridview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, update := range updates {
				pending[update.EleId] = update
			}

			if time.Since(last) > rate && len(pending) > 0 {
				select {
				case output <- slicedVals(pending):
					pending = map[string]gridview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}
	}()

	return output
}

func slicedVals[K comparable, V any](mp map[K]V) (sliced []V) {
	for _, v := range mp {
		sliced = append(sliced, v)
	}
	return
}
