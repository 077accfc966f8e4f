package glide

import (
	"errors"
	"strings"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	if _, ok, err := s.LoadPosition("page"); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := s.SavePosition("page", 1234.5); err != nil {
		t.Fatal(err)
	}
	y, ok, err := s.LoadPosition("page")
	if err != nil || !ok || y != 1234.5 {
		t.Errorf("LoadPosition = (%f, %v, %v), want 1234.5", y, ok, err)
	}
}

func TestMemoryStoreCorruptData(t *testing.T) {
	s := NewMemoryStore()
	s.items["page"] = []byte("{")
	if _, _, err := s.LoadPosition("page"); err == nil {
		t.Error("expected decode error")
	}
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) LoadPosition(string) (float64, bool, error) { return 0, false, errTestStore }
func (failingStore) SavePosition(string, float64) error         { return errTestStore }

var errTestStore = errors.New("store offline")

func TestControllerLogsStoreErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestoreKey = "page"
	c, _, _ := newTestPage()
	logger, buf := bufLogger()
	ctl, err := Mount(c, cfg, Environment{}, WithInput(noInput{}), WithLogger(logger), WithPositionStore(failingStore{}))
	if err != nil {
		t.Fatal(err)
	}
	ctl.Start()
	ctl.Stop()
	if got := buf.String(); !strings.Contains(got, "could not restore") || !strings.Contains(got, "could not save") {
		t.Errorf("log = %q", got)
	}
}
