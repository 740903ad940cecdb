// Логирование SQL запросов и сводная статистика по ним.
//
// Основные возможности:
//   - Подсчет количества выполнений каждого SQL запроса через gorm.
//   - HTML отчет со статистикой для отладки.
package dao

import (
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	recordsTemplate = `<html><body><table><tr><th>Query</th><th>Count</th></tr>{{ range $i, $r := .Records}}<tr><td>{{$r}}</td><td>{{index $.Map $r}}</td><tr>{{end}}</table></body></html>`
)

type QueryLogger struct {
	mu      sync.RWMutex
	Records map[string]int
	tmpl    *template.Template
}

func NewQueryLogger() *QueryLogger {
	tmpl, err := template.New("records").Parse(recordsTemplate)
	if err != nil {
		slog.Error("Parse query template", "err", err)
	}
	return &QueryLogger{Records: make(map[string]int), tmpl: tmpl}
}

// CountEndpoint отображает статистику по количеству выполненных SQL запросов.
func (ql *QueryLogger) CountEndpoint(c echo.Context) error {
	ql.mu.RLock()
	defer ql.mu.RUnlock()
	keys := []string{}
	total := 0
	for k, v := range ql.Records {
		keys = append(keys, strings.ReplaceAll(k, "\n", ""))
		total += v
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return ql.Records[keys[i]] > ql.Records[keys[j]]
	})

	if err := ql.tmpl.Execute(c.Response(), struct {
		Records []string
		Map     map[string]int
	}{keys, ql.Records}); err != nil {
		return c.HTML(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusOK)
}

// QueryCallback регистрирует каждый выполненный SQL запрос.
func (ql *QueryLogger) QueryCallback(scope *gorm.DB) {
	ql.mu.Lock()
	defer ql.mu.Unlock()
	ql.Records[scope.Statement.SQL.String()] += 1
}
