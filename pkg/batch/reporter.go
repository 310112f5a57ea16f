package batch

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Result is one ingested document as it lands in the report.
type Result struct {
	Path      string            `json:"path"`
	Format    string            `json:"format"`
	Parser    string            `json:"parser,omitempty"`
	Hash      string            `json:"sha256,omitempty"`
	Size      int               `json:"size"`
	Snippet   string            `json:"snippet,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp string            `json:"timestamp"`
}

type Reporter interface {
	Report(Result)
	Close()
}

// JSONReporter writes one JSON object per line.
type JSONReporter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

func NewJSONReporter(path string) (*JSONReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONReporter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

func (r *JSONReporter) Report(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.Timestamp == "" {
		res.Timestamp = time.Now().Format(time.RFC3339)
	}
	r.enc.Encode(res)
}

func (r *JSONReporter) Close() {
	if r.file != nil {
		r.file.Close()
	}
}

// ConsoleReporter is a no-op sink; console output is handled by the logger.
type ConsoleReporter struct{}

func (c *ConsoleReporter) Report(res Result) {}
func (c *ConsoleReporter) Close()            {}
