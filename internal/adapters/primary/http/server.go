package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/cors"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/services"
)

const (
	// pollInterval is how often the source file's mtime is checked.
	pollInterval = 500 * time.Millisecond

	// writeWait is the time allowed to write a message to a peer.
	writeWait = 10 * time.Second

	// shutdownTimeout bounds graceful shutdown.
	shutdownTimeout = 5 * time.Second
)

// titleSanitizer strips any markup from titles before they leave the API.
var titleSanitizer = bluemonday.StrictPolicy()

// reloadScript is the client half of live reload: it connects back to the
// preview server's websocket and reloads the page on a "reload" message.
// Only the served preview carries it; written build output stays untouched.
const reloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var socket = new WebSocket(proto + location.host + "/ws");
  socket.onmessage = function (event) {
    if (event.data === "reload") {
      location.reload();
    }
  };
})();
</script>`

// Server serves a compiled presentation for preview, recompiling when the
// source document changes and telling connected browsers to reload.
type Server struct {
	compiler   *services.CompilerService
	sourcePath string
	addr       string
	upgrader   websocket.Upgrader
	httpServer *http.Server
	logger     *log.Logger

	mu           sync.RWMutex
	document     []byte
	presentation *entities.Presentation

	clientsMu sync.Mutex
	clients   map[string]*websocket.Conn
}

// NewServer creates a preview server for the given source document.
func NewServer(compiler *services.CompilerService, sourcePath, host string, port int) *Server {
	return &Server{
		compiler:   compiler,
		sourcePath: sourcePath,
		addr:       fmt.Sprintf("%s:%d", host, port),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  log.New(os.Stderr, "[slidesmith] ", log.LstdFlags),
		clients: make(map[string]*websocket.Conn),
	}
}

// Start compiles the document, begins watching the source file, and
// serves until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.recompile(ctx); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.watch(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Printf("serving %s on http://%s", filepath.Base(s.sourcePath), s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// routes builds the preview server's HTTP handler.
func (s *Server) routes() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/api/slides", s.handleSlides).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.handleWebSocket)
	return cors.Default().Handler(router)
}

// recompile rebuilds the document and the parsed presentation snapshot.
func (s *Server) recompile(ctx context.Context) error {
	content, err := os.ReadFile(s.sourcePath) // #nosec G304 - path is the user-supplied source document
	if err != nil {
		return fmt.Errorf("reading source document: %w", err)
	}

	presentation, err := s.compiler.Parse(content)
	if err != nil {
		return err
	}

	document, err := s.compiler.Render(ctx, presentation, filepath.Dir(s.sourcePath))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.document = injectReloadScript(document)
	s.presentation = presentation
	s.mu.Unlock()
	return nil
}

// injectReloadScript splices the reload client into the served document,
// just before the closing body tag when one exists.
func injectReloadScript(document []byte) []byte {
	closing := []byte("</body>")
	idx := bytes.LastIndex(document, closing)
	if idx < 0 {
		return append(append([]byte{}, document...), []byte("\n"+reloadScript+"\n")...)
	}

	var buf bytes.Buffer
	buf.Grow(len(document) + len(reloadScript) + 1)
	buf.Write(document[:idx])
	buf.WriteString(reloadScript + "\n")
	buf.Write(document[idx:])
	return buf.Bytes()
}

// watch polls the source file's mtime and recompiles on change. A failed
// recompile keeps the last good document and logs the error.
func (s *Server) watch(ctx context.Context) {
	lastMod := time.Time{}
	if info, err := os.Stat(s.sourcePath); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(s.sourcePath)
			if err != nil || !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			if err := s.recompile(ctx); err != nil {
				s.logger.Printf("recompile failed: %v", err)
				continue
			}
			s.broadcastReload()
		}
	}
}

// handleIndex serves the compiled document.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	document := s.document
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(document); err != nil {
		s.logger.Printf("writing response: %v", err)
	}
}

// SlideInfo is one navigation entry in the slides API response.
type SlideInfo struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Template string `json:"template,omitempty"`
}

// SlidesResponse is the /api/slides payload.
type SlidesResponse struct {
	Title      string      `json:"title"`
	SlideCount int         `json:"slideCount"`
	Slides     []SlideInfo `json:"slides"`
}

// handleSlides serves the navigation index as JSON with sanitized titles.
func (s *Server) handleSlides(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	presentation := s.presentation
	s.mu.RUnlock()

	if presentation == nil {
		http.Error(w, "presentation not loaded", http.StatusServiceUnavailable)
		return
	}

	slides := make([]SlideInfo, 0, len(presentation.Slides))
	for i := range presentation.Slides {
		slide := &presentation.Slides[i]

		// Label slides with the same resolved template name the rendered
		// document puts in data-template.
		template := ""
		if tpl, ok := presentation.ResolveTemplate(slide); ok {
			template = tpl.DisplayName()
		}

		slides = append(slides, SlideInfo{
			Index:    i + 1,
			Title:    titleSanitizer.Sanitize(slide.DisplayTitle()),
			Template: template,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(SlidesResponse{
		Title:      titleSanitizer.Sanitize(presentation.Title),
		SlideCount: presentation.SlideCount(),
		Slides:     slides,
	})
	if err != nil {
		s.logger.Printf("encoding slides response: %v", err)
	}
}

// handleWebSocket registers a browser for reload notifications.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade: %v", err)
		return
	}

	id := uuid.New().String()
	s.clientsMu.Lock()
	s.clients[id] = conn
	s.clientsMu.Unlock()

	// Drain reads so close frames are processed; drop the client when the
	// connection dies.
	go func() {
		defer s.removeClient(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcastReload tells every connected browser to reload.
func (s *Server) broadcastReload() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for id, conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			_ = conn.Close()
			delete(s.clients, id)
		}
	}
}

// clientCount reports how many browsers are registered for reloads.
func (s *Server) clientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

func (s *Server) removeClient(id string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if conn, ok := s.clients[id]; ok {
		_ = conn.Close()
		delete(s.clients, id)
	}
}
