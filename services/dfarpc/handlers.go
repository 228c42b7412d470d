package dfarpc

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/finitekit/dfa"
)

var rpcTracer = otel.Tracer("dfad.rpc")

// handleRPC returns the gin handler for the JSON-RPC endpoint. It owns
// envelope parsing and method dispatch; the per-method handlers own
// parameter binding and the call into the engine.
func handleRPC(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rpcRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("Failed to parse JSON-RPC envelope", "error", err, "request_id", c.GetString(requestIDKey))
			m.observe("unknown", "error", 0)
			c.JSON(http.StatusOK, errorResponse(nil, codeParseError, "parse error"))
			return
		}
		if req.Method == "" {
			m.observe("unknown", "error", 0)
			c.JSON(http.StatusOK, errorResponse(req.ID, codeInvalidRequest, "missing method"))
			return
		}

		start := time.Now()
		var resp rpcResponse
		switch req.Method {
		case "check":
			resp = handleCheck(c.Request.Context(), req)
		case "minimize":
			resp = handleMinimize(c.Request.Context(), req)
		default:
			resp = errorResponse(req.ID, codeMethodNotFound, "method not found: "+req.Method)
		}

		status := "ok"
		if resp.Error != nil {
			status = "error"
		}
		m.observe(req.Method, status, time.Since(start))

		if req.isNotification() {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleCheck serves the "check" method: params [automaton, input],
// result [accepted, trace]. Input properties never fail the call; only
// a malformed automaton does.
func handleCheck(ctx context.Context, req rpcRequest) rpcResponse {
	_, span := rpcTracer.Start(ctx, "dfa.check")
	defer span.End()

	var wire WireAutomaton
	var input string
	if err := bindParams(req.Params, &wire, &input); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "check expects [automaton, input]: "+err.Error())
	}

	model, err := wire.toModel()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return malformedResponse(req.ID, err)
	}

	accepted, trace := model.Check(input)
	return resultResponse(req.ID, []any{accepted, trace})
}

// handleMinimize serves the "minimize" method: params [automaton],
// result [automaton, groups]. The groups value maps each minimal state
// name to the original state names that were merged into it.
func handleMinimize(ctx context.Context, req rpcRequest) rpcResponse {
	_, span := rpcTracer.Start(ctx, "dfa.minimize")
	defer span.End()

	var wire WireAutomaton
	if err := bindParams(req.Params, &wire); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "minimize expects [automaton]: "+err.Error())
	}

	model, err := wire.toModel()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return malformedResponse(req.ID, err)
	}

	minimal, renaming := model.Minimize()
	groups := dfa.GroupByNewName(renaming)
	return resultResponse(req.ID, []any{minimal, groups})
}

// bindParams unmarshals a positional JSON-RPC params array into the
// given destinations, requiring an exact length match.
func bindParams(params json.RawMessage, dests ...any) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(params, &parts); err != nil {
		return errors.New("params must be a positional array")
	}
	if len(parts) != len(dests) {
		return errors.New("wrong number of params")
	}
	for i, dest := range dests {
		if err := json.Unmarshal(parts[i], dest); err != nil {
			return err
		}
	}
	return nil
}

// malformedResponse maps a validation failure onto the invalid-params
// error code, keeping the reason visible to the caller. Anything else
// reports as an internal error.
func malformedResponse(id json.RawMessage, err error) rpcResponse {
	var merr *dfa.MalformedAutomatonError
	if errors.As(err, &merr) {
		return errorResponse(id, codeInvalidParams, merr.Error())
	}
	slog.Error("Unexpected validation failure", "error", err)
	return errorResponse(id, codeInternalError, "internal error")
}
