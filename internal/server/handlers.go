package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	taskservice "github.com/thenoetrevino/kanban/internal/services/task"
)

// Request bodies. Required fields are pointers so absence can be told apart
// from a zero value.

type createBoardRequest struct {
	BoardName *string `json:"board_name"`
}

type addColumnRequest struct {
	BoardID        *string `json:"board_id"`
	ColumnName     *string `json:"column_name"`
	ColumnPosition *int    `json:"column_position"`
}

type addTaskRequest struct {
	ColumnID        *string `json:"column_id"`
	TaskName        *string `json:"task_name"`
	TaskDescription *string `json:"task_description"`
	TaskPosition    *int    `json:"task_position"`
}

type moveTaskRequest struct {
	TaskID              *string `json:"task_id"`
	ColumnID            *string `json:"column_id"`
	SourceColumnID      *string `json:"source_column_id"`
	DestinationColumnID *string `json:"destination_column_id"`
	TaskPosition        *int    `json:"task_position"`
}

type reorderRequest struct {
	Order []string `json:"order"`
}

type createBoardResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// decode reads a JSON body into dst and reports a 400 on failure
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			badRequest(w, "request body is required")
		} else {
			badRequest(w, "invalid JSON body")
		}
		return false
	}
	return true
}

func missing(w http.ResponseWriter, field string) {
	badRequest(w, "missing required field: "+field)
}

// pick prefers the path parameter and falls back to the body field
func pick(r *http.Request, param string, body *string) (string, bool) {
	if v, ok := mux.Vars(r)[param]; ok {
		return v, true
	}
	if body != nil {
		return *body, true
	}
	return "", false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if !decode(w, r, &req) {
		return
	}
	if req.BoardName == nil {
		missing(w, "board_name")
		return
	}

	board, err := s.app.BoardService.CreateBoard(r.Context(), *req.BoardName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createBoardResponse{ID: board.ID, Name: board.Name})
}

func (s *Server) handleAddColumn(w http.ResponseWriter, r *http.Request) {
	var req addColumnRequest
	if !decode(w, r, &req) {
		return
	}
	boardID, ok := pick(r, "boardId", req.BoardID)
	if !ok {
		missing(w, "board_id")
		return
	}
	if req.ColumnName == nil {
		missing(w, "column_name")
		return
	}
	if req.ColumnPosition == nil {
		missing(w, "column_position")
		return
	}

	column, err := s.app.BoardService.AddColumn(r.Context(), boardservice.AddColumnRequest{
		BoardID:  boardID,
		Name:     *req.ColumnName,
		Position: *req.ColumnPosition,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Column created successfully!", ID: column.ID})
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if !decode(w, r, &req) {
		return
	}
	columnID, ok := pick(r, "columnId", req.ColumnID)
	if !ok {
		missing(w, "column_id")
		return
	}
	if req.TaskName == nil {
		missing(w, "task_name")
		return
	}

	task, err := s.app.TaskService.AddTask(r.Context(), taskservice.AddTaskRequest{
		ColumnID:    columnID,
		Name:        *req.TaskName,
		Description: req.TaskDescription,
		Position:    req.TaskPosition,
	})
	if err != nil {
		// an unknown column answers with an empty object, as clients expect
		if errors.Is(err, taskservice.ErrColumnNotFound) {
			writeJSON(w, http.StatusBadRequest, struct{}{})
			return
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Task created successfully!", ID: task.ID})
}

func (s *Server) handleMoveTask(w http.ResponseWriter, r *http.Request) {
	var req moveTaskRequest
	if !decode(w, r, &req) {
		return
	}
	taskID, ok := pick(r, "taskId", req.TaskID)
	if !ok {
		missing(w, "task_id")
		return
	}

	// column_id is the single-column form of destination_column_id
	destination := req.DestinationColumnID
	if destination == nil {
		destination = req.ColumnID
	}
	if destination == nil {
		missing(w, "destination_column_id")
		return
	}
	if req.TaskPosition == nil {
		missing(w, "task_position")
		return
	}

	err := s.app.TaskService.MoveTask(r.Context(), taskservice.MoveTaskRequest{
		TaskID:              taskID,
		SourceColumnID:      deref(req.SourceColumnID),
		DestinationColumnID: *destination,
		Position:            *req.TaskPosition,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Task moved successfully!"})
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	detail, err := s.app.BoardService.GetBoard(r.Context(), mux.Vars(r)["boardId"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.app.BoardService.ListBoards(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Order == nil {
		missing(w, "order")
		return
	}

	if err := s.app.TaskService.ReorderColumn(r.Context(), mux.Vars(r)["columnId"], req.Order); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Tasks reordered successfully!"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}
