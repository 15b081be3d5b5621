// Package mcp exposes the chatbot to AI assistants over the Model Context Protocol.
package mcp

import "errors"

var ErrMissingResponder = errors.New("mcp: responder is required")
