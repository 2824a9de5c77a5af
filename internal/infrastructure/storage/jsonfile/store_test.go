package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

type record struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStore_ReadAbsent(t *testing.T) {
	s := newTestStore(t)

	recs := []record{{ID: "default"}}
	outcome, err := s.Read("missing", &recs)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if outcome != Absent {
		t.Fatalf("expected Absent, got %v", outcome)
	}
	if len(recs) != 1 || recs[0].ID != "default" {
		t.Fatalf("default value was modified: %+v", recs)
	}
}

func TestStore_ReadCorrupt(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(filepath.Join(s.dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	recs := []record{}
	outcome, err := s.Read("broken", &recs)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if outcome != Corrupt {
		t.Fatalf("expected Corrupt, got %v", outcome)
	}
	if len(recs) != 0 {
		t.Fatalf("expected untouched default, got %+v", recs)
	}
}

func TestStore_WriteThenRead(t *testing.T) {
	s := newTestStore(t)

	in := []record{{ID: "a", Value: "one"}, {ID: "b", Value: "two"}}
	if err := s.Write("things", in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := []record{}
	outcome, err := s.Read("things", &out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if outcome != Found {
		t.Fatalf("expected Found, got %v", outcome)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Value != "two" {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

// The rename must be the sole mutation of the final path: after a write, no
// temp files may remain, and a corrupt pre-existing target is only replaced
// by a complete new serialization.
func TestStore_WriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.Write("things", []record{{ID: fmt.Sprintf("r%d", i)}}); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("leftover temp file: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly the collection file, got %d entries", len(entries))
	}
}

func TestStore_MarshalFailureLeavesTargetUntouched(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write("things", []record{{ID: "keep"}}); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(s.dir, "things.json"))
	if err != nil {
		t.Fatalf("read seed: %v", err)
	}

	// Channels are not JSON-serializable, so this write must fail before
	// touching the target path.
	if err := s.Write("things", make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}

	after, err := os.ReadFile(filepath.Join(s.dir, "things.json"))
	if err != nil {
		t.Fatalf("read after failed write: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("target file changed despite failed write")
	}
}

func TestStore_MutateSerializesWriters(t *testing.T) {
	s := newTestStore(t)
	repo := NewMessageRepository(s)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := &domain.ContactMessage{ID: fmt.Sprintf("msg_%d", i), Name: "n", Email: "e", Message: "m"}
			if err := repo.Append(context.Background(), msg); err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	messages := []domain.ContactMessage{}
	if _, err := s.Read(messagesCollection, &messages); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(messages) != n {
		t.Fatalf("lost writes: expected %d messages, got %d", n, len(messages))
	}
}
