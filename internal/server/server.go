// Package server exposes the calculators over the workflow HTTP contract:
// POST {workflow_id, inputs} and receive {result} or {error}.
package server

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/domain"
)

const (
	workflowsPath = "/v1/workflows"
	healthPath    = "/healthz"

	requestIDHeader = "X-Request-ID"
)

// Config holds the HTTP listener settings
type Config struct {
	Addr         string
	Token        string // bearer token; empty disables auth
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodySize  int
}

// DefaultConfig returns the settings used when flags and env are unset
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		MaxBodySize:  64 * 1024,
	}
}

// Server serves calculator workflows
type Server struct {
	engine *calculation.Engine
	cfg    Config
	logger *zap.Logger
	srv    *fasthttp.Server
}

// New creates a server. A nil logger is replaced with zap.NewNop.
func New(engine *calculation.Engine, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = calculation.NewEngine()
	}
	s := &Server{engine: engine, cfg: cfg, logger: logger}
	s.srv = &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "firecalc",
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxBodySize,
	}
	return s
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()), zap.Bool("auth", s.cfg.Token != ""))
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		if err := s.srv.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}

// Handler is the fasthttp request handler
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if _, err := uuid.Parse(requestID); err != nil {
		requestID = uuid.NewString()
	}
	ctx.Response.Header.Set(requestIDHeader, requestID)

	workflowID := ""
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in handler", zap.Any("panic", r), zap.String("request_id", requestID))
			writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
		}
		s.logger.Info("request",
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.String("workflow_id", workflowID),
			zap.String("request_id", requestID),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	switch string(ctx.Path()) {
	case healthPath:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case workflowsPath:
		if !s.authorized(ctx) {
			writeError(ctx, fasthttp.StatusUnauthorized, "missing or invalid authorization")
			return
		}
		switch {
		case ctx.IsPost():
			workflowID = s.handleWorkflow(ctx)
		case ctx.IsGet():
			writeJSON(ctx, fasthttp.StatusOK, map[string][]string{"workflows": WorkflowIDs()})
		default:
			ctx.Response.Header.Set("Allow", "GET, POST")
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		}
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) authorized(ctx *fasthttp.RequestCtx) bool {
	if s.cfg.Token == "" {
		return true
	}
	header := ctx.Request.Header.Peek(fasthttp.HeaderAuthorization)
	const prefix = "Bearer "
	if !bytes.HasPrefix(header, []byte(prefix)) {
		return false
	}
	return subtle.ConstantTimeCompare(header[len(prefix):], []byte(s.cfg.Token)) == 1
}

// handleWorkflow decodes, dispatches and writes the response. It returns the
// workflow id for the access log.
func (s *Server) handleWorkflow(ctx *fasthttp.RequestCtx) string {
	var req WorkflowRequest
	dec := json.NewDecoder(bytes.NewReader(ctx.PostBody()))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return ""
	}
	if req.WorkflowID == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "workflow_id is required")
		return ""
	}

	run, ok := Lookup(req.WorkflowID)
	if !ok {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("unknown workflow_id %q", req.WorkflowID))
		return req.WorkflowID
	}

	inputs, err := stringifyInputs(req.Inputs)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return req.WorkflowID
	}

	result, err := run(s.engine, inputs)
	if err != nil {
		if domain.IsValidationError(err) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return req.WorkflowID
		}
		s.logger.Error("workflow failed", zap.String("workflow_id", req.WorkflowID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
		return req.WorkflowID
	}

	writeJSON(ctx, fasthttp.StatusOK, WorkflowResponse{Result: result})
	return req.WorkflowID
}

// stringifyInputs flattens JSON scalars into the string form the normalizer expects
func stringifyInputs(raw map[string]interface{}) (map[string]string, error) {
	inputs := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			inputs[k] = ""
		case string:
			inputs[k] = val
		case json.Number:
			inputs[k] = val.String()
		case bool:
			inputs[k] = fmt.Sprint(val)
		default:
			return nil, fmt.Errorf("input %q must be a string or number", k)
		}
	}
	return inputs, nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Error: message})
}
