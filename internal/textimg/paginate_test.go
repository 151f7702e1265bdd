package textimg

import (
	"reflect"
	"strings"
	"testing"
)

func TestPaginate_Scenario(t *testing.T) {
	pages, trunc, err := Paginate("ABCDE\n\nFG", 3, 2, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if trunc.Truncated {
		t.Error("unexpected truncation")
	}

	if len(pages) != 2 {
		t.Fatalf("pages: got %d, want 2", len(pages))
	}
	if !reflect.DeepEqual(pages[0].Lines, []string{"ABC", "DE"}) {
		t.Errorf("page 1 lines: got %q", pages[0].Lines)
	}
	if !reflect.DeepEqual(pages[1].Lines, []string{"", "FG"}) {
		t.Errorf("page 2 lines: got %q", pages[1].Lines)
	}
	for _, p := range pages {
		if p.Total != 2 {
			t.Errorf("page %d total: got %d, want 2", p.Index, p.Total)
		}
	}
}

func TestPaginate_EmptyContent(t *testing.T) {
	pages, _, err := Paginate("", 10, 10, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("pages: got %d, want 1", len(pages))
	}
	if len(pages[0].Lines) != 0 {
		t.Errorf("lines: got %d, want 0", len(pages[0].Lines))
	}
	if pages[0].Index != 1 || pages[0].Total != 1 {
		t.Errorf("index/total: got %d/%d, want 1/1", pages[0].Index, pages[0].Total)
	}
}

func TestPaginate_Reconstruction(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		charsPerLine int
		linesPerPage int
	}{
		{"short ascii", "hello world", 4, 3},
		{"multiline", "alpha\nbeta\ngamma delta epsilon", 5, 2},
		{"cjk", "这是一个很长的中文句子需要分页处理", 3, 2},
		{"exact multiples", "abcdefgh", 4, 1},
		{"single char lines", "a\nb\nc", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, _, err := Paginate(tt.content, tt.charsPerLine, tt.linesPerPage, 0)
			if err != nil {
				t.Fatalf("Paginate failed: %v", err)
			}

			var got strings.Builder
			for _, p := range pages {
				for _, line := range p.Lines {
					got.WriteString(line)
				}
			}

			want := strings.ReplaceAll(tt.content, "\n", "")
			if got.String() != want {
				t.Errorf("reconstruction mismatch:\ngot  %q\nwant %q", got.String(), want)
			}
		})
	}
}

func TestPaginate_ChunkWidthNeverExceeded(t *testing.T) {
	pages, _, err := Paginate("abcdefghijklmnopqrstuvwxyz\n中文字符串测试", 4, 3, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	for _, p := range pages {
		if len(p.Lines) > 3 {
			t.Errorf("page %d has %d lines, cap is 3", p.Index, len(p.Lines))
		}
		for _, line := range p.Lines {
			if n := len([]rune(line)); n > 4 {
				t.Errorf("line %q has %d runes, cap is 4", line, n)
			}
		}
	}
}

func TestPaginate_BlankLinePreservation(t *testing.T) {
	// Three consecutive blank source lines must survive as three blank
	// display lines, distributed across pages by the capacity rule.
	pages, _, err := Paginate("x\n\n\n\ny", 10, 2, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	blanks := 0
	for _, p := range pages {
		for _, line := range p.Lines {
			if line == "" {
				blanks++
			}
		}
	}
	if blanks != 3 {
		t.Errorf("blank lines: got %d, want 3", blanks)
	}
}

func TestPaginate_BlankLineOpensNewPage(t *testing.T) {
	// A blank line arriving on a full page starts the next page with one
	// blank line already counted.
	pages, _, err := Paginate("aa\nbb\n\ncc", 2, 2, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("pages: got %d, want 2", len(pages))
	}
	if !reflect.DeepEqual(pages[1].Lines, []string{"", "cc"}) {
		t.Errorf("page 2 lines: got %q, want [\"\" \"cc\"]", pages[1].Lines)
	}
}

func TestPaginate_Determinism(t *testing.T) {
	content := "The quick brown fox\n\njumps over the lazy dog\n多语言内容测试"
	first, _, err := Paginate(content, 7, 3, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	second, _, err := Paginate(content, 7, 3, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different page sequences")
	}
}

func TestPaginate_Truncation(t *testing.T) {
	// 26 single-char lines at 1 line per page produce 26 pages uncapped.
	content := strings.Join(strings.Split("abcdefghijklmnopqrstuvwxyz", ""), "\n")

	pages, trunc, err := Paginate(content, 5, 1, 4)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}

	if len(pages) != 4 {
		t.Fatalf("pages: got %d, want 4", len(pages))
	}
	for _, p := range pages {
		if p.Total != 4 {
			t.Errorf("page %d total: got %d, want 4", p.Index, p.Total)
		}
	}
	if !trunc.Truncated {
		t.Fatal("expected truncation to be reported")
	}
	if trunc.DroppedPages != 22 {
		t.Errorf("dropped pages: got %d, want 22", trunc.DroppedPages)
	}
	if trunc.DroppedLines != 22 || trunc.DroppedChars != 22 {
		t.Errorf("dropped lines/chars: got %d/%d, want 22/22", trunc.DroppedLines, trunc.DroppedChars)
	}
}

func TestPaginate_IndexesAreSequential(t *testing.T) {
	pages, _, err := Paginate(strings.Repeat("line\n", 40), 10, 3, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	for i, p := range pages {
		if p.Index != i+1 {
			t.Errorf("page at position %d has index %d", i, p.Index)
		}
		if p.Total != len(pages) {
			t.Errorf("page %d total: got %d, want %d", p.Index, p.Total, len(pages))
		}
	}
}

func TestPaginate_InvalidCapacity(t *testing.T) {
	tests := []struct {
		name         string
		charsPerLine int
		linesPerPage int
	}{
		{"zero chars", 0, 5},
		{"negative chars", -1, 5},
		{"zero lines", 5, 0},
		{"negative lines", 5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Paginate("content", tt.charsPerLine, tt.linesPerPage, 0)
			if err == nil {
				t.Error("expected configuration error, got nil")
			}
		})
	}
}

func TestPaginate_WhitespaceOnlyLineIsBlank(t *testing.T) {
	pages, _, err := Paginate("a\n   \nb", 5, 10, 0)
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if !reflect.DeepEqual(pages[0].Lines, []string{"a", "", "b"}) {
		t.Errorf("lines: got %q, want [a \"\" b]", pages[0].Lines)
	}
}
