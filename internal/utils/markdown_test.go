package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownStripsScript(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert(1)</script> world"))
	if strings.Contains(out, "<script") {
		t.Errorf("Expected script tags to be stripped, got %q", out)
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("Expected surrounding text to survive, got %q", out)
	}
}

func TestRenderMarkdownRendersFormatting(t *testing.T) {
	out := string(RenderMarkdown("**bold** and `code`"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected bold markup, got %q", out)
	}
	if !strings.Contains(out, "<code>code</code>") {
		t.Errorf("Expected code markup, got %q", out)
	}
}
