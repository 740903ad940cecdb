// Пакет edtypes содержит модель данных структурированного контента velostore.
// Документ представляет собой дерево нод: стандартные текстовые элементы
// (параграфы, заголовки, списки, цитаты) и атомарные контент-блоки витрины
// (hero, сетка товаров, отзыв, галерея, видео, призыв к действию).
//
// Основные возможности:
//   - Представление документа в виде дерева типизированных структур.
//   - Сериализация/десериализация документа в JSON редактора через зарегистрированные функции.
//   - Хранение документа в PostgreSQL JSONB колонке (driver.Valuer / sql.Scanner).
//   - Парсинг и сериализация цветов (hex, rgb()).
package edtypes

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

type TextAlign int

const (
	LeftAlign TextAlign = iota
	CenterAlign
	RightAlign
	JustifyAlign
)

var (
	colorReg = regexp.MustCompile(`[rgb()#\s"]`)
)

// EditorParser - функция для парсинга JSON документа редактора, устанавливается из пакета tiptap
var EditorParser func(io.Reader) (*Document, error)

// EditorSerializer - функция для сериализации Document в JSON редактора, устанавливается из пакета tiptap
var EditorSerializer func(*Document) ([]byte, error)

type Document struct {
	Elements []any
}

// UnmarshalJSON реализует десериализацию JSON редактора в Document.
// Вызывает зарегистрированный EditorParser.
func (d *Document) UnmarshalJSON(data []byte) error {
	if EditorParser == nil {
		return errors.New("EditorParser not registered, import tiptap package to enable document parsing")
	}

	doc, err := EditorParser(bytes.NewReader(data))
	if err != nil {
		return err
	}

	d.Elements = doc.Elements
	return nil
}

// MarshalJSON реализует сериализацию Document в JSON редактора.
// Вызывает зарегистрированный EditorSerializer.
func (d Document) MarshalJSON() ([]byte, error) {
	if EditorSerializer == nil {
		return nil, errors.New("EditorSerializer not registered, import tiptap package to enable document serialization")
	}

	return EditorSerializer(&d)
}

// Value реализует интерфейс driver.Valuer для сохранения Document в PostgreSQL JSONB.
func (d Document) Value() (driver.Value, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan реализует интерфейс sql.Scanner для чтения Document из PostgreSQL JSONB.
// Некорректный JSON не роняет запрос: документ деградирует до пустого,
// проблема уходит в лог.
func (d *Document) Scan(value interface{}) error {
	if value == nil {
		*d = Document{Elements: make([]any, 0)}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	if err := d.UnmarshalJSON(raw); err != nil {
		slog.Error("Malformed document in DB, fallback to empty", "err", err)
		*d = Document{Elements: make([]any, 0)}
	}
	return nil
}

// GormDataType указывает GORM использовать тип JSONB для PostgreSQL колонок.
func (Document) GormDataType() string {
	return "jsonb"
}

type Paragraph struct {
	Content []any
	Align   TextAlign
}

type Heading struct {
	Content []any
	Level   int // 1..3
	Align   TextAlign
}

type Text struct {
	Content string

	Strong        bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Code          bool

	Color   *Color
	BgColor *Color

	URL *url.URL
}

type ListElement struct {
	Content []Paragraph
}

type List struct {
	Elements []ListElement
	Numbered bool
}

type Quote struct {
	Content []Paragraph
}

type HardBreak struct {
	// Пустая структура для представления переноса строки <br>
}

type Color color.RGBA

func ParseColor(raw string) (Color, error) {
	if len(raw) < 2 {
		return Color{}, errors.New("unsupported color format")
	}
	isDecRGB := strings.Contains(raw, "rgb(")
	isHex := raw[0] == '#' || raw[1] == '#'
	raw = colorReg.ReplaceAllString(raw, "")
	if isDecRGB {
		c := Color{}
		for i, n := range strings.Split(raw, ",") {
			nn, err := strconv.ParseUint(n, 10, 8)
			if err != nil {
				return c, err
			}

			switch i {
			case 0:
				c.R = uint8(nn)
			case 1:
				c.G = uint8(nn)
			case 2:
				c.B = uint8(nn)
			case 3:
				c.A = uint8(nn)
			}
		}
		return c, nil
	} else if isHex {
		b, err := hex.DecodeString(raw)
		if err != nil {
			return Color{}, err
		}
		if len(b) < 3 {
			return Color{}, errors.New("unsupported color format")
		}
		c := Color{
			R: b[0],
			G: b[1],
			B: b[2],
		}
		if len(b) > 3 {
			c.A = b[3]
		}
		return c, nil
	}
	return Color{}, errors.New("unsupported color format")
}

func (c Color) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, "\"#%s\"", hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})), nil
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	cc, err := ParseColor(string(data))
	*c = cc

	return err
}
