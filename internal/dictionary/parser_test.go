package dictionary

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParser tests homophone extraction from dictionary pages.
func TestParser(t *testing.T) {
	t.Parallel()

	t.Run("extracts matches in document order", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<ul><li><span class="homophones">Homophones:
				<span><a href="/wiki/their">their</a></span>,
				<span><a href="/wiki/they%27re">they're</a></span>
			</span></li></ul>
		</body></html>`

		parser, err := NewParser(DefaultSelector)
		if err != nil {
			t.Fatalf("failed to create parser: %v", err)
		}

		got, err := parser.Extract(strings.NewReader(page))
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{"their", "they're"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trims text and skips empty matches", func(t *testing.T) {
		t.Parallel()

		page := `<span class="homophones"><span><a>  sun
		</a></span><span><a>   </a></span><span><a><i>sonne</i></a></span></span>`

		parser, err := NewParser(DefaultSelector)
		if err != nil {
			t.Fatalf("failed to create parser: %v", err)
		}

		got, err := parser.Extract(strings.NewReader(page))
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}

		want := []string{"sun", "sonne"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("page without matches yields nothing", func(t *testing.T) {
		t.Parallel()

		parser, err := NewParser(DefaultSelector)
		if err != nil {
			t.Fatalf("failed to create parser: %v", err)
		}

		got, err := parser.Extract(strings.NewReader(`<html><body><a>cat</a></body></html>`))
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", got)
		}
	})

	t.Run("custom selector", func(t *testing.T) {
		t.Parallel()

		parser, err := NewParser("li.sound")
		if err != nil {
			t.Fatalf("failed to create parser: %v", err)
		}
		if parser.Selector() != "li.sound" {
			t.Errorf("expected selector 'li.sound', got %q", parser.Selector())
		}

		got, err := parser.Extract(strings.NewReader(`<ul><li class="sound">knight</li><li>day</li></ul>`))
		if err != nil {
			t.Fatalf("failed to extract: %v", err)
		}
		if diff := cmp.Diff([]string{"knight"}, got); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid selector", func(t *testing.T) {
		t.Parallel()

		for _, selector := range []string{"", "span[", "a >"} {
			if _, err := NewParser(selector); !errors.Is(err, ErrInvalidSelector) {
				t.Errorf("NewParser(%q): expected ErrInvalidSelector, got %v", selector, err)
			}
		}
	})
}
