// Package dfarpc exposes the automaton engine over HTTP as a JSON-RPC
// 2.0 endpoint with two methods:
//
//   - "check"    — params [automaton, input], result [accepted, trace]
//   - "minimize" — params [automaton], result [automaton, groups]
//
// The automaton wire shape is an object with "states", "alphabet",
// "transitions" (list of {from, input, to}), "start" and "accepting"
// fields. Structural validation failures surface as invalid-params
// errors; a stuck check run is an ordinary result.
package dfarpc

import "encoding/json"

// JSON-RPC 2.0 error codes used by this server.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// rpcRequest is an incoming JSON-RPC 2.0 call. Params stay raw so each
// method binds its own positional parameter list. A missing id marks
// the call as a notification, which gets no response body.
type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id,omitempty"`
}

func (r *rpcRequest) isNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

func resultResponse(id json.RawMessage, result any) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", Result: result, ID: id}
}

func errorResponse(id json.RawMessage, code int, message string) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", Error: &rpcError{Code: code, Message: message}, ID: id}
}
