package domain

import "strings"

// Sample ACP messages. They are fixed, well-formed JSON-RPC literals.
const (
	InitializeRequest = `{"jsonrpc":"2.0","method":"initialize","params":{"protocolVersion":1,"clientCapabilities":{"fs":{"readTextFile":true,"writeTextFile":true},"terminal":true},"clientInfo":{"name":"benchmark","version":"1.0.0"}},"id":1}`

	SessionNewRequest = `{"jsonrpc":"2.0","method":"session/new","params":{"cwd":"/tmp","mcpServers":[]},"id":1}`

	SessionUpdateNotification = `{"jsonrpc":"2.0","method":"session/update","params":{"sessionId":"sess-001","update":{"sessionUpdate":"agent_message_chunk","content":{"type":"text","text":"Hello, this is a test message."}}}}`

	PromptRequest = `{"jsonrpc":"2.0","method":"session/prompt","params":{"sessionId":"sess-001","prompt":[{"type":"text","text":"What is 2+2?"}]},"id":2}`
)

// Identifiers used in synthetic responses.
const (
	JSONRPCVersion      = "2.0"
	ProtocolVersion     = 1
	BenchmarkSessionID  = "sess-benchmark"
	CodecSessionID      = "sess-bench"
	SampleSessionID     = "sess-001"
	AgentMessageChunk   = "agent_message_chunk"
	TokenWord           = "word "
	MethodSessionUpdate = "session/update"
	ContentTypeText     = "text"
)

var samples = [...]string{
	InitializeRequest,
	SessionNewRequest,
	SessionUpdateNotification,
	PromptRequest,
}

// Samples returns the round-robin sample table:
// initialize, session/new, session/update, session/prompt.
func Samples() [][]byte {
	out := make([][]byte, len(samples))
	for i, s := range samples {
		out[i] = []byte(s)
	}
	return out
}

// Response is a JSON-RPC success response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result"`
	ID      any    `json:"id"`
}

// InitializeResult is the result of an initialize response.
type InitializeResult struct {
	ProtocolVersion int `json:"protocolVersion"`
}

// SessionResult is the result of a session/new response.
type SessionResult struct {
	SessionID string `json:"sessionId"`
}

// NewResponse builds a JSON-RPC success response.
func NewResponse(id, result any) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		Result:  result,
		ID:      id,
	}
}

// Notification is a JSON-RPC notification.
type Notification struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// SessionUpdateParams are the params of a session/update notification.
type SessionUpdateParams struct {
	SessionID string        `json:"sessionId"`
	Update    SessionUpdate `json:"update"`
}

// SessionUpdate is a single streamed agent update.
type SessionUpdate struct {
	SessionUpdate string       `json:"sessionUpdate"`
	Content       ContentBlock `json:"content"`
}

// ContentBlock is a typed piece of message content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TokenText returns n repetitions of TokenWord, trailing space included.
func TokenText(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(TokenWord, n)
}

// TokenUpdate builds the session/update notification whose text payload
// carries n tokens.
func TokenUpdate(n int) *Notification {
	return &Notification{
		JSONRPC: JSONRPCVersion,
		Method:  MethodSessionUpdate,
		Params: SessionUpdateParams{
			SessionID: SampleSessionID,
			Update: SessionUpdate{
				SessionUpdate: AgentMessageChunk,
				Content: ContentBlock{
					Type: ContentTypeText,
					Text: TokenText(n),
				},
			},
		},
	}
}
