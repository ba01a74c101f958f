package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/sequence"
)

type exportedSpan struct {
	Name       string
	Attributes []struct {
		Key   string
		Value struct {
			Value any
		}
	}
}

func decodeSpans(t *testing.T, r io.Reader) []exportedSpan {
	t.Helper()
	var spans []exportedSpan
	dec := json.NewDecoder(r)
	for {
		var s exportedSpan
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return spans
		}
		if err != nil {
			t.Fatalf("decode span: %v", err)
		}
		spans = append(spans, s)
	}
}

func TestNewProviderExportsSortSpans(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tp, err := NewProvider(&buf, "test")
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	store := sequence.New([]int{4, 2, 8, 3, 1, 5, 7, 6})
	d := quicksort.NewDriver(quicksort.Hoare{}, store, nil, quicksort.WithTracer(tp.Tracer("test")))
	if err := d.Sort(context.Background()); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	counts := map[string]int{}
	for _, s := range decodeSpans(t, &buf) {
		counts[s.Name]++
		if s.Name != "quicksort.Partition" {
			continue
		}
		keys := map[string]bool{}
		for _, a := range s.Attributes {
			keys[a.Key] = true
		}
		for _, k := range []string{"scheme", "depth", "split"} {
			if !keys[k] {
				t.Errorf("partition span lacks %q: %+v", k, s.Attributes)
			}
		}
	}
	if counts["quicksort.Sort"] != 1 {
		t.Errorf("exported %d sort spans, want 1", counts["quicksort.Sort"])
	}
	if got, want := counts["quicksort.Partition"], int(d.Stats().Partitions); got != want {
		t.Errorf("exported %d partition spans, want %d", got, want)
	}
}

func TestSetupInstallsGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	shutdown, err := Setup(&buf, "test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("global provider is %T, want the SDK provider", otel.GetTracerProvider())
	}

	_, span := otel.Tracer("test").Start(context.Background(), "setup")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
	spans := decodeSpans(t, &buf)
	if len(spans) != 1 || spans[0].Name != "setup" {
		t.Errorf("exported %+v, want one span", spans)
	}
}
