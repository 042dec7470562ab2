package agent

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/ratchet-works/ratchet/pkg/models"
)

// streamLine is the envelope of one stream-JSON line emitted by the agent
// binary. Only the fields the decoder consumes are declared; everything
// else is ignored so newer agent versions do not break decoding.
type streamLine struct {
	Type      string         `json:"type"`
	Subtype   string         `json:"subtype"`
	SessionID string         `json:"session_id"`
	Model     string         `json:"model"`
	Message   *streamMessage `json:"message"`

	// result line fields
	DurationMS int64        `json:"duration_ms"`
	IsError    bool         `json:"is_error"`
	Result     string       `json:"result"`
	Usage      *streamUsage `json:"usage"`
}

type streamMessage struct {
	Model   string         `json:"model"`
	Content []contentBlock `json:"content"`
	Usage   *streamUsage   `json:"usage"`
}

// contentBlock is a union of the text, tool_use and tool_result block
// shapes; the Type field selects which members are populated.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`

	// tool_use
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`

	// tool_result
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
	IsError   bool            `json:"is_error"`
}

type streamUsage struct {
	InputTokens         int64 `json:"input_tokens"`
	OutputTokens        int64 `json:"output_tokens"`
	CacheCreationTokens int64 `json:"cache_creation_input_tokens"`
	CacheReadTokens     int64 `json:"cache_read_input_tokens"`
}

func (u *streamUsage) tokens() models.TokenUsage {
	if u == nil {
		return models.TokenUsage{}
	}
	return models.TokenUsage{
		Input:         u.InputTokens,
		Output:        u.OutputTokens,
		CacheCreation: u.CacheCreationTokens,
		CacheRead:     u.CacheReadTokens,
	}
}

type pendingTool struct {
	name    string
	started time.Time
}

// streamDecoder turns raw agent output lines into events. It tracks
// in-flight tool uses so results can be labelled with the tool name and
// a duration, and accumulates token usage as a fallback for agents that
// omit usage on the final result line.
type streamDecoder struct {
	logger  *slog.Logger
	now     func() time.Time
	pending map[string]pendingTool
	usage   models.TokenUsage
	end     *EndEvent
}

func newStreamDecoder(logger *slog.Logger) *streamDecoder {
	return &streamDecoder{
		logger:  logger,
		now:     time.Now,
		pending: make(map[string]pendingTool),
	}
}

// decode parses one line and returns the events it yields, in order.
// Malformed lines are logged and skipped; the agent stream is treated as
// advisory rather than authoritative.
func (d *streamDecoder) decode(line []byte) []Event {
	var sl streamLine
	if err := json.Unmarshal(line, &sl); err != nil {
		d.logger.Warn("Skipping unparseable agent output line",
			slog.Int("bytes", len(line)),
			slog.String("error", err.Error()))
		return nil
	}

	switch sl.Type {
	case "system":
		return d.decodeSystem(&sl)
	case "assistant":
		return d.decodeAssistant(&sl)
	case "user":
		return d.decodeUser(&sl)
	case "result":
		return d.decodeResult(&sl)
	default:
		d.logger.Debug("Ignoring unknown agent line type", slog.String("type", sl.Type))
		return nil
	}
}

func (d *streamDecoder) decodeSystem(sl *streamLine) []Event {
	switch sl.Subtype {
	case "init":
		return []Event{StartEvent{AgentSessionID: sl.SessionID, Model: sl.Model}}
	case "compact_boundary":
		return []Event{CompactionEvent{Content: sl.Result}}
	default:
		return []Event{NoticeEvent{Subtype: sl.Subtype, Content: sl.Result}}
	}
}

func (d *streamDecoder) decodeAssistant(sl *streamLine) []Event {
	if sl.Message == nil {
		return nil
	}
	if sl.Message.Usage != nil {
		d.usage.Add(sl.Message.Usage.tokens())
	}
	var out []Event
	for _, block := range sl.Message.Content {
		switch block.Type {
		case "text":
			if block.Text != "" {
				out = append(out, TextEvent{Text: block.Text})
			}
		case "tool_use":
			d.pending[block.ID] = pendingTool{name: block.Name, started: d.now()}
			out = append(out, ToolUseEvent{
				ID:    block.ID,
				Name:  block.Name,
				Input: compactJSON(block.Input),
			})
		}
	}
	return out
}

func (d *streamDecoder) decodeUser(sl *streamLine) []Event {
	if sl.Message == nil {
		return nil
	}
	var out []Event
	for _, block := range sl.Message.Content {
		if block.Type != "tool_result" {
			continue
		}
		ev := ToolResultEvent{
			ToolUseID: block.ToolUseID,
			Content:   resultText(block.Content),
			IsError:   block.IsError,
		}
		if p, ok := d.pending[block.ToolUseID]; ok {
			ev.Name = p.name
			ev.Duration = d.now().Sub(p.started)
			delete(d.pending, block.ToolUseID)
		}
		out = append(out, ev)
	}
	return out
}

// decodeResult records the terminal summary but emits nothing: the run
// loop appends exactly one EndEvent after the process exits, so a result
// line followed by process death cannot produce two terminals.
func (d *streamDecoder) decodeResult(sl *streamLine) []Event {
	status := EndCompleted
	if sl.IsError {
		status = EndFailed
	}
	tokens := d.usage
	if sl.Usage != nil {
		tokens = sl.Usage.tokens()
	}
	d.end = &EndEvent{
		Status:   status,
		Duration: time.Duration(sl.DurationMS) * time.Millisecond,
		Tokens:   tokens,
	}
	return nil
}

// result returns the EndEvent reported by the agent, or nil when the
// stream ended without one.
func (d *streamDecoder) result() *EndEvent {
	return d.end
}

// accumulatedTokens reports usage summed from assistant messages, used
// when the agent dies before writing a result line.
func (d *streamDecoder) accumulatedTokens() models.TokenUsage {
	return d.usage
}

// resultText flattens a tool_result content payload. Agents emit either
// a bare string or a list of typed blocks; anything else is passed
// through as raw JSON.
func resultText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var b bytes.Buffer
		for _, blk := range blocks {
			if blk.Type != "text" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(blk.Text)
		}
		return b.String()
	}
	return string(raw)
}

func compactJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return string(raw)
	}
	return b.String()
}

// readBoundedLine reads one newline-terminated line from r, refusing to
// buffer more than max bytes. Overlong lines are consumed to their
// newline and reported with overflow=true so the caller can surface one
// error and keep decoding. A final unterminated line is returned as a
// normal line; the following call yields io.EOF.
func readBoundedLine(r *bufio.Reader, max int) (line []byte, overflow bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.ReadSlice('\n')
		if len(chunk) > 0 && !overflow {
			if len(buf)+len(chunk) > max {
				overflow = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		switch rerr {
		case nil:
			return bytes.TrimRight(buf, "\r\n"), overflow, nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(buf) > 0 || overflow {
				return bytes.TrimRight(buf, "\r\n"), overflow, nil
			}
			return nil, false, io.EOF
		default:
			return nil, overflow, rerr
		}
	}
}
