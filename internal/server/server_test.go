package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type testServer struct {
	t       *testing.T
	server  *Server
	handler http.Handler
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	store := testutil.SetupTestStore(t)
	srv := New(app.New(store), config.Default())
	return &testServer{t: t, server: srv, handler: srv.Handler()}
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	ts.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func (ts *testServer) createBoard(name string) string {
	rec := ts.do(http.MethodPost, "/board", map[string]any{"board_name": name})
	require.Equal(ts.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[createBoardResponse](ts.t, rec).ID
}

func (ts *testServer) addColumn(boardID, name string, position int) string {
	rec := ts.do(http.MethodPost, "/board/"+boardID+"/add_column", map[string]any{
		"column_name": name, "column_position": position,
	})
	require.Equal(ts.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[messageResponse](ts.t, rec).ID
}

func (ts *testServer) addTask(columnID, name string, position int) string {
	rec := ts.do(http.MethodPost, "/column/"+columnID+"/add_task", map[string]any{
		"task_name": name, "task_position": position,
	})
	require.Equal(ts.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[messageResponse](ts.t, rec).ID
}

func (ts *testServer) board(boardID string) models.BoardDetail {
	rec := ts.do(http.MethodGet, "/board/"+boardID, nil)
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[models.BoardDetail](ts.t, rec)
}

func taskNames(column *models.ColumnDetail) []string {
	names := make([]string, len(column.Tasks))
	for i, task := range column.Tasks {
		names[i] = task.Name
	}
	return names
}

// ============================================================================
// BOARDS AND COLUMNS
// ============================================================================

func TestCreateBoard(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodPost, "/board", map[string]any{"board_name": "Roadmap"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Roadmap", resp["name"])
	assert.NotEmpty(t, resp["id"])
	assert.Len(t, resp, 2)
}

func TestCreateBoard_BadRequests(t *testing.T) {
	ts := setupServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", "{"},
		{"empty body", nil},
		{"missing name", map[string]any{}},
		{"empty name", map[string]any{"board_name": ""}},
		{"long name", map[string]any{"board_name": fmt.Sprintf("%051d", 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, "/board", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody[errorResponse](t, rec).Message)
		})
	}
}

func TestListBoards(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/boards", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	id := ts.createBoard("One")
	rec = ts.do(http.MethodGet, "/boards", nil)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%q,"name":"One"}]`, id), rec.Body.String())
}

func TestAddColumn_BothRouteShapes(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")

	rec := ts.do(http.MethodPost, "/board/"+boardID+"/add_column", map[string]any{
		"column_name": "Todo", "column_position": 0,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Column created successfully!", decodeBody[messageResponse](t, rec).Message)

	rec = ts.do(http.MethodPost, "/board/add_column", map[string]any{
		"board_id": boardID, "column_name": "Done", "column_position": 1,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	detail := ts.board(boardID)
	require.Len(t, detail.Columns, 2)
	assert.Equal(t, "Todo", detail.Columns[0].Name)
	assert.Equal(t, "Done", detail.Columns[1].Name)
}

func TestAddColumn_Errors(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")

	rec := ts.do(http.MethodPost, "/board/missing/add_column", map[string]any{
		"column_name": "Todo", "column_position": 0,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodPost, "/board/"+boardID+"/add_column", map[string]any{"column_name": "Todo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/board/add_column", map[string]any{"column_name": "Todo", "column_position": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/board/"+boardID+"/add_column", map[string]any{
		"column_name": "Todo", "column_position": -1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBoard_NotFound(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/board/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Message, "not found")
}

// ============================================================================
// TASKS
// ============================================================================

func TestAddTask_RoundTrip(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	columnID := ts.addColumn(boardID, "Todo", 0)

	rec := ts.do(http.MethodPost, "/column/"+columnID+"/add_task", map[string]any{
		"task_name": "Write", "task_description": "some **markdown**", "task_position": 0,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Task created successfully!", decodeBody[messageResponse](t, rec).Message)

	rec = ts.do(http.MethodPost, "/board/add_task", map[string]any{
		"column_id": columnID, "task_name": "Review",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodGet, "/board/"+boardID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Columns []struct {
			Tasks []map[string]any `json:"tasks"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Columns, 1)
	tasks := raw.Columns[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "some **markdown**", tasks[0]["description"])
	assert.Nil(t, tasks[1]["description"])
	assert.Equal(t, float64(1), tasks[1]["position"])
	assert.Len(t, tasks[0], 4)
}

func TestAddTask_UnknownColumnIsEmptyBadRequest(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodPost, "/column/missing/add_task", map[string]any{"task_name": "x", "task_position": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/boards", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddTask_Validation(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	columnID := ts.addColumn(boardID, "Todo", 0)

	rec := ts.do(http.MethodPost, "/column/"+columnID+"/add_task", map[string]any{"task_position": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/column/"+columnID+"/add_task", map[string]any{
		"task_name": "x", "task_description": fmt.Sprintf("%0251d", 0),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Message, "description")
}

func TestMoveTask(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	colA := ts.addColumn(boardID, "A", 0)
	colB := ts.addColumn(boardID, "B", 1)
	ts.addTask(colA, "t1", 0)
	t2 := ts.addTask(colA, "t2", 1)
	ts.addTask(colA, "t3", 2)
	ts.addTask(colB, "t4", 0)
	ts.addTask(colB, "t5", 1)

	rec := ts.do(http.MethodPost, "/task/"+t2+"/move", map[string]any{
		"source_column_id": colA, "destination_column_id": colB, "task_position": 1,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Task moved successfully!", decodeBody[messageResponse](t, rec).Message)

	detail := ts.board(boardID)
	assert.Equal(t, []string{"t1", "t3"}, taskNames(detail.Columns[0]))
	assert.Equal(t, []string{"t4", "t2", "t5"}, taskNames(detail.Columns[1]))
	for _, column := range detail.Columns {
		for i, task := range column.Tasks {
			assert.Equal(t, i, task.Position)
		}
	}
}

func TestMoveTask_SingleColumnShape(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	colA := ts.addColumn(boardID, "A", 0)
	t1 := ts.addTask(colA, "t1", 0)
	ts.addTask(colA, "t2", 1)
	ts.addTask(colA, "t3", 2)

	rec := ts.do(http.MethodPost, "/board/move_task", map[string]any{
		"task_id": t1, "column_id": colA, "task_position": 2,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	detail := ts.board(boardID)
	assert.Equal(t, []string{"t2", "t3", "t1"}, taskNames(detail.Columns[0]))
}

func TestMoveTask_Errors(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	colA := ts.addColumn(boardID, "A", 0)
	colB := ts.addColumn(boardID, "B", 1)
	t1 := ts.addTask(colA, "t1", 0)

	tests := []struct {
		name   string
		path   string
		body   map[string]any
		status int
	}{
		{"unknown task", "/task/missing/move", map[string]any{"source_column_id": colA, "destination_column_id": colB, "task_position": 0}, http.StatusNotFound},
		{"unknown destination", "/task/" + t1 + "/move", map[string]any{"source_column_id": colA, "destination_column_id": "missing", "task_position": 0}, http.StatusNotFound},
		{"unknown source", "/task/" + t1 + "/move", map[string]any{"source_column_id": "missing", "destination_column_id": colB, "task_position": 0}, http.StatusNotFound},
		{"wrong source", "/task/" + t1 + "/move", map[string]any{"source_column_id": colB, "destination_column_id": colA, "task_position": 0}, http.StatusBadRequest},
		{"missing position", "/task/" + t1 + "/move", map[string]any{"destination_column_id": colB}, http.StatusBadRequest},
		{"negative position", "/task/" + t1 + "/move", map[string]any{"destination_column_id": colB, "task_position": -1}, http.StatusBadRequest},
		{"missing destination", "/task/" + t1 + "/move", map[string]any{"task_position": 0}, http.StatusBadRequest},
		{"missing task id", "/board/move_task", map[string]any{"column_id": colB, "task_position": 0}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestReorder(t *testing.T) {
	ts := setupServer(t)
	boardID := ts.createBoard("Board")
	colA := ts.addColumn(boardID, "A", 0)
	t1 := ts.addTask(colA, "t1", 0)
	t2 := ts.addTask(colA, "t2", 1)
	t3 := ts.addTask(colA, "t3", 2)

	rec := ts.do(http.MethodPost, "/column/"+colA+"/reorder", map[string]any{"order": []string{t3, t1, t2}})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"t3", "t1", "t2"}, taskNames(ts.board(boardID).Columns[0]))

	rec = ts.do(http.MethodPost, "/column/"+colA+"/reorder", map[string]any{"order": []string{t3, t1}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Message, "order is incomplete")
	assert.Equal(t, []string{"t3", "t1", "t2"}, taskNames(ts.board(boardID).Columns[0]))

	rec = ts.do(http.MethodPost, "/column/"+colA+"/reorder", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/column/missing/reorder", map[string]any{"order": []string{}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ============================================================================
// AMBIENT ROUTES
// ============================================================================

func TestCORS(t *testing.T) {
	ts := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/boards", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/board", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	// POST is a simple method, so the preflight answers with origin and headers only
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestHealthz(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.NoError(t, ts.server.app.Store().Close())
	rec = ts.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := setupServer(t)

	ts.do(http.MethodGet, "/boards", nil)
	ts.do(http.MethodGet, "/board/missing", nil)

	rec := ts.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	snapshot := decodeBody[MetricsSnapshot](t, rec)
	// the metrics request itself is counted and still in flight
	assert.Equal(t, int64(3), snapshot.RequestsTotal)
	assert.Equal(t, int64(1), snapshot.ClientErrors)
	assert.Equal(t, int32(1), snapshot.RequestsInFlight)
}

func TestStartAndShutdown(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := config.Default()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second

	srv, err := NewServer(context.Background(), app.New(store), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	resp, err := http.Get("http://" + srv.Addr().String() + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Expected server to stop after cancel")
	}

	// second shutdown is a no-op
	assert.NoError(t, srv.Shutdown())
}
