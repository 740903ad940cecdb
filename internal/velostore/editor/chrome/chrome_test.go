package chrome_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/chrome"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func newBlockSession(t *testing.T, kind edtypes.BlockKind, attrs map[string]any) (*editor.Session, *chrome.BlockChrome) {
	t.Helper()
	s := editor.NewSession(editor.ModeBlocks)
	index, err := s.InsertBlock(kind, attrs)
	if err != nil {
		t.Fatal(err)
	}
	c, err := chrome.NewBlockChrome(s, index)
	if err != nil {
		t.Fatal(err)
	}
	return s, c
}

func TestChromeRejectsNonBlock(t *testing.T) {
	s := editor.NewSession(editor.ModeBlocks)
	if _, err := s.InsertParagraph("текст"); err != nil {
		t.Fatal(err)
	}

	if _, err := chrome.NewBlockChrome(s, 0); !errors.Is(err, editor.ErrNotABlock) {
		t.Errorf("NewBlockChrome on paragraph = %v, want ErrNotABlock", err)
	}
	if _, err := chrome.NewBlockChrome(s, 5); !errors.Is(err, editor.ErrIndexOutOfRange) {
		t.Errorf("NewBlockChrome out of range = %v, want ErrIndexOutOfRange", err)
	}
}

func TestEveryKindHasForm(t *testing.T) {
	for _, kind := range edtypes.Kinds() {
		if len(chrome.FormFor(kind)) == 0 {
			t.Errorf("kind %s has no attribute form", kind)
		}
	}
	if chrome.FormFor("unknown") != nil {
		t.Error("unknown kind returned a form")
	}
}

func TestFormReturnsCurrentValues(t *testing.T) {
	_, c := newBlockSession(t, edtypes.KindHero, map[string]any{"title": "Лето"})

	fields, values, err := c.Form()
	if err != nil {
		t.Fatalf("Form failed: %v", err)
	}
	if len(fields) == 0 {
		t.Fatal("empty field schema")
	}
	if values["title"] != "Лето" {
		t.Errorf("values[title] = %v", values["title"])
	}
	// каждое поле схемы имеет значение в атрибутах
	for _, f := range fields {
		if _, ok := values[f.Key]; !ok {
			t.Errorf("field %s has no value in attrs", f.Key)
		}
	}
}

func TestApplyPatchMergesAttrs(t *testing.T) {
	s, c := newBlockSession(t, edtypes.KindTestimonial, map[string]any{
		"quote":      "Отлично",
		"authorName": "Иван",
	})

	if err := c.ApplyPatch(map[string]any{"rating": 5}); err != nil {
		t.Fatalf("ApplyPatch failed: %v", err)
	}

	b := s.Document().Elements[0].(*edtypes.Testimonial)
	if b.Rating != 5 {
		t.Errorf("Rating = %d, want 5", b.Rating)
	}
	if b.Quote != "Отлично" || b.AuthorName != "Иван" {
		t.Errorf("patch touched omitted keys: %+v", b)
	}
}

func TestDeleteRemovesBlock(t *testing.T) {
	s, c := newBlockSession(t, edtypes.KindGallery, nil)

	if err := c.Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(s.Document().Elements) != 0 {
		t.Errorf("block survived delete")
	}
}

type staticSource struct {
	products []dto.ProductCard
	err      error
}

func (s staticSource) Products(ctx context.Context) ([]dto.ProductCard, error) {
	return s.products, s.err
}

func TestToggleProductMembership(t *testing.T) {
	_, c := newBlockSession(t, edtypes.KindProductGrid, map[string]any{
		"productIds": []string{"a", "b", "c"},
	})
	ps := chrome.NewProductSelector(c, staticSource{})

	// удаление из середины сохраняет порядок остальных
	if err := ps.ToggleProduct("b"); err != nil {
		t.Fatal(err)
	}
	ids, err := ps.Selected()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids, []string{"a", "c"}) {
		t.Errorf("after remove = %v", ids)
	}

	// добавление - в конец
	if err := ps.ToggleProduct("d"); err != nil {
		t.Fatal(err)
	}
	ids, _ = ps.Selected()
	if !slices.Equal(ids, []string{"a", "c", "d"}) {
		t.Errorf("after add = %v", ids)
	}

	// повторное переключение убирает добавленный товар, а удаленный добавляет в конец
	if err := ps.ToggleProduct("d"); err != nil {
		t.Fatal(err)
	}
	if err := ps.ToggleProduct("b"); err != nil {
		t.Fatal(err)
	}
	ids, _ = ps.Selected()
	if !slices.Equal(ids, []string{"a", "c", "b"}) {
		t.Errorf("after toggle back = %v", ids)
	}
}

func TestSelectorLoadFailureDegradesToEmpty(t *testing.T) {
	_, c := newBlockSession(t, edtypes.KindProductGrid, nil)
	ps := chrome.NewProductSelector(c, staticSource{err: errors.New("catalog down")})

	ps.Load(context.Background())
	if got := ps.Available(); len(got) != 0 {
		t.Errorf("Available = %v, want empty", got)
	}
}

func TestSelectorLoad(t *testing.T) {
	_, c := newBlockSession(t, edtypes.KindProductGrid, nil)
	ps := chrome.NewProductSelector(c, staticSource{products: []dto.ProductCard{
		{Id: "a", Name: "Модель A"},
	}})

	ps.Load(context.Background())
	if got := ps.Available(); len(got) != 1 || got[0].Id != "a" {
		t.Errorf("Available = %v", got)
	}
}

func TestSelectorOnNonGridBlock(t *testing.T) {
	_, c := newBlockSession(t, edtypes.KindHero, nil)
	ps := chrome.NewProductSelector(c, staticSource{})

	if err := ps.ToggleProduct("a"); !errors.Is(err, chrome.ErrNotProductGrid) {
		t.Errorf("ToggleProduct on hero = %v, want ErrNotProductGrid", err)
	}
}
