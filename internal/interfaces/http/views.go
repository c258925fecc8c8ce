package http

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/renatoaf/profitflow/pkg/money"
)

//go:embed views/*.html views/layouts/*.html views/partials/*.html
var viewsFS embed.FS

// NewViewEngine constrói o engine de templates embutido no binário, com os
// filtros de formatação usados pelas páginas e pelos fragmentos de linha.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")

	// moeda: centavos → "R$ 1.234,56"
	engine.AddFunc("moeda", func(centavos int64) string {
		return money.FormatBRL(centavos)
	})
	// valor: centavos → "1234,56" (sem prefixo, para inputs de edição)
	engine.AddFunc("valor", func(centavos int64) string {
		return money.FormatValor(centavos)
	})
	// percent: decimal → string sem zeros à direita ("20", "8,5")
	engine.AddFunc("percent", func(d decimal.Decimal) string {
		return strings.ReplaceAll(d.String(), ".", ",")
	})
	// data: "02/01/2006" para exibição
	engine.AddFunc("data", func(t time.Time) string {
		return t.Format("02/01/2006")
	})
	// dataISO: "2006-01-02" para inputs type=date
	engine.AddFunc("dataISO", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	// dataPtr / dataPtrISO: variantes para datas opcionais (vencimento)
	engine.AddFunc("dataPtr", func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("02/01/2006")
	})
	engine.AddFunc("dataPtrISO", func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	})
	// valorPtr: override opcional → "35,90" ou vazio
	engine.AddFunc("valorPtr", func(centavos *int64) string {
		if centavos == nil {
			return ""
		}
		return money.FormatValor(*centavos)
	})
	// statusLabel: "aberto" → "Aberto"
	engine.AddFunc("statusLabel", func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	})
	return engine
}
