// Package server pushes live grid observations to web clients. The index
// page renders the initial view from a template; thereafter ele-updates are
// pushed over a websocket and applied client-side by id.
package server

import (
	"context"
	"html/template"
	"log"
	"net/http"

	"multigrid/server/gridview"
)

// Server owns the root view over the frame stream and the http handlers
// exposing it.
type Server struct {
	addr string
	root *rootView
	// initialCells seeds the first page render; later state arrives over
	// the websocket.
	initialCells [][]gridview.Cell
}

// NewServer wires the frame stream into the page's views. The initial frame
// is rendered statically into the index page so clients see a complete grid
// before the first pushed update.
func NewServer(
	ctx context.Context,
	addr string,
	initial gridview.Frame,
	frames <-chan gridview.Frame,
) (*Server, error) {
	root, err := newRootView(ctx, frames)
	if err != nil {
		return nil, err
	}

	return &Server{
		addr:         addr,
		root:         root,
		initialCells: gridview.Convert(initial),
	}, nil
}

// Serve blocks, serving the index page and websocket upgrades.
func (server *Server) Serve() error {
	http.HandleFunc("/", server.serveIndex)
	http.HandleFunc("/ws", server.serveWebsocket)
	log.Printf("serving at http://%s", server.addr)
	return http.ListenAndServe(server.addr, nil)
}

func (server *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := newClient(server.root.Updates(), w, r)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer cli.ws.Close()

	if err := cli.Sync(); err != nil {
		log.Println("client closed:", err)
	}
}

func (server *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	t := template.New("index")
	name, err := server.root.Parse(t)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err = t.ExecuteTemplate(w, name, server.initialCells); err != nil {
		log.Println("template execution:", err)
	}
}
