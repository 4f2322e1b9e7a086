package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// routes registers both the path-parameter routes and the body-parameter
// routes older clients post to
func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/board", s.handleCreateBoard).Methods(http.MethodPost)
	r.HandleFunc("/boards", s.handleListBoards).Methods(http.MethodGet)

	// body-parameter routes, registered before /board/{boardId} patterns
	r.HandleFunc("/board/add_column", s.handleAddColumn).Methods(http.MethodPost)
	r.HandleFunc("/board/add_task", s.handleAddTask).Methods(http.MethodPost)
	r.HandleFunc("/board/move_task", s.handleMoveTask).Methods(http.MethodPost)

	r.HandleFunc("/board/{boardId}", s.handleGetBoard).Methods(http.MethodGet)
	r.HandleFunc("/board/{boardId}/add_column", s.handleAddColumn).Methods(http.MethodPost)
	r.HandleFunc("/column/{columnId}/add_task", s.handleAddTask).Methods(http.MethodPost)
	r.HandleFunc("/column/{columnId}/reorder", s.handleReorder).Methods(http.MethodPost)
	r.HandleFunc("/task/{taskId}/move", s.handleMoveTask).Methods(http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(s.debug),
	)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(s.observe(recovery(r)))
}
