package host_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/testutil"
)

func TestCapabilitiesStandalone(t *testing.T) {
	if !(host.Capabilities{}).Standalone() {
		t.Fatalf("expected empty capabilities to be standalone")
	}
	fake := testutil.NewHost("")
	caps := host.Capabilities{Opener: fake}
	if caps.Standalone() {
		t.Fatalf("expected opener-only capabilities not to be standalone")
	}
	if got := caps.Names(); !reflect.DeepEqual(got, []string{"opener"}) {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestDispatcherRunsJobsInOrder(t *testing.T) {
	fake := testutil.NewHost("")
	d := host.NewDispatcher(fake.Capabilities(), 0)
	for _, url := range []string{"https://a/fr", "https://a/de", "https://a/es"} {
		if err := d.OpenTab(url); err != nil {
			t.Fatalf("open tab: %v", err)
		}
	}
	if err := d.SaveSelection([]string{"fr"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := d.SaveSelection([]string{"fr", "de"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	d.Stop()
	d.Wait()

	want := []string{"https://a/fr", "https://a/de", "https://a/es"}
	if got := fake.Opened(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected opened %v, got %v", want, got)
	}
	if got := fake.Stored; !reflect.DeepEqual(got, []string{"fr", "de"}) {
		t.Fatalf("expected last write to win, got %v", got)
	}
	if len(fake.Saved()) != 2 {
		t.Fatalf("expected two writes, got %d", len(fake.Saved()))
	}
}

func TestDispatcherRejectsMissingCapabilities(t *testing.T) {
	d := host.NewDispatcher(host.Capabilities{}, 0)
	defer d.Wait()
	defer d.Stop()
	if err := d.OpenTab("https://example.com"); !errors.Is(err, host.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := d.SaveSelection(nil); !errors.Is(err, host.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDispatcherRejectsAfterStop(t *testing.T) {
	fake := testutil.NewHost("")
	d := host.NewDispatcher(fake.Capabilities(), 0)
	d.Stop()
	d.Stop()
	d.Wait()
	if err := d.OpenTab("https://example.com"); !errors.Is(err, host.ErrDispatcherStopped) {
		t.Fatalf("expected ErrDispatcherStopped, got %v", err)
	}
}

func TestDispatcherPublishesFailures(t *testing.T) {
	fake := testutil.NewHost("")
	fake.OpenErr = errors.New("browser gone")
	d := host.NewDispatcher(fake.Capabilities(), 0)
	if err := d.OpenTab("https://example.com/fr"); err != nil {
		t.Fatalf("open tab: %v", err)
	}
	d.Stop()

	var got []host.Event
	for evt := range d.Events() {
		got = append(got, evt)
	}
	if len(got) != 1 {
		t.Fatalf("expected one event, got %#v", got)
	}
	if got[0].Kind != host.JobOpenTab || got[0].Target != "https://example.com/fr" {
		t.Fatalf("unexpected event %#v", got[0])
	}
	if got[0].Err == nil || got[0].Err.Error() != "browser gone" {
		t.Fatalf("expected open error, got %v", got[0].Err)
	}
}

func TestDispatcherPacesTabOpens(t *testing.T) {
	fake := testutil.NewHost("")
	d := host.NewDispatcher(fake.Capabilities(), 20*time.Millisecond)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := d.OpenTab("https://example.com"); err != nil {
			t.Fatalf("open tab: %v", err)
		}
	}
	d.Stop()
	d.Wait()
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("expected paced opens to take at least 40ms, took %s", elapsed)
	}
	if len(fake.Opened()) != 3 {
		t.Fatalf("expected three opens, got %d", len(fake.Opened()))
	}
}
