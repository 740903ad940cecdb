package editor_test

import (
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func TestPickerDisabledInSimpleMode(t *testing.T) {
	s := editor.NewSession(editor.ModeSimple)
	p := editor.NewBlockPicker(s)

	if err := p.Open(); err != editor.ErrBlocksDisabled {
		t.Errorf("Open in simple mode = %v, want ErrBlocksDisabled", err)
	}
	if p.IsOpen() {
		t.Error("picker open after rejected Open")
	}
	if kinds := p.Kinds(); kinds != nil {
		t.Errorf("Kinds in simple mode = %v, want nil", kinds)
	}
}

func TestPickerListsAllKinds(t *testing.T) {
	s := editor.NewSession(editor.ModeBlocks)
	p := editor.NewBlockPicker(s)

	if err := p.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	kinds := p.Kinds()
	if len(kinds) != 6 {
		t.Fatalf("Kinds count = %d, want 6", len(kinds))
	}
	want := []edtypes.BlockKind{
		edtypes.KindHero,
		edtypes.KindProductGrid,
		edtypes.KindTestimonial,
		edtypes.KindGallery,
		edtypes.KindVideoEmbed,
		edtypes.KindCallToAction,
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestPickInsertsAtCursorAndCloses(t *testing.T) {
	s := editor.NewSession(editor.ModeBlocks)
	if _, err := s.InsertParagraph("до"); err != nil {
		t.Fatal(err)
	}
	p := editor.NewBlockPicker(s)
	if err := p.Open(); err != nil {
		t.Fatal(err)
	}

	s.SetCursor(0)
	index, err := p.Pick(edtypes.KindProductGrid)
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if index != 0 {
		t.Errorf("insert index = %d, want 0", index)
	}
	if p.IsOpen() {
		t.Error("picker still open after Pick")
	}

	grid, ok := s.Document().Elements[0].(*edtypes.ProductGrid)
	if !ok {
		t.Fatalf("element 0 is %T, want *ProductGrid", s.Document().Elements[0])
	}
	if grid.Columns != 3 || !grid.ShowPrice {
		t.Errorf("picked block has non-default attrs: %+v", grid)
	}
	if grid.ProductIDs == nil || len(grid.ProductIDs) != 0 {
		t.Errorf("ProductIDs = %v, want empty non-nil slice", grid.ProductIDs)
	}
}
