package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"walletScope/internal/model"
)

// JSONSink writes each view as one indented JSON document. An empty or "-"
// path writes to stdout; any other path is replaced atomically so a
// concurrent reader never sees a torn view.
type JSONSink struct {
	path string
	mu   sync.Mutex
}

func NewJSONSink(path string) *JSONSink {
	return &JSONSink{path: path}
}

func (s *JSONSink) WriteView(view model.WalletView) error {
	payload, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal view: %w", err)
	}
	payload = append(payload, '\n')

	if s.path == "" || s.path == "-" {
		_, err := os.Stdout.Write(payload)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write view tmp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename view file: %w", err)
	}
	return nil
}
