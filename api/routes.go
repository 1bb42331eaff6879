package api

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/vecha2468/stockquote/pkg/endpoint"
	"github.com/vecha2468/stockquote/pkg/service"
	httptransport "github.com/vecha2468/stockquote/pkg/transport/http"
	"go.uber.org/zap"
)

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>Stock Price Viewer</title></head>
<body>
<h1>Stock Price Viewer</h1>
<form action="/quote" method="get">
  <label for="symbol">Enter Stock Symbol:</label>
  <input type="text" id="symbol" name="symbol" value="{{.Symbol}}">
  <button type="submit">Get Quote</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Company}}
<h2>{{.Company}}</h2>
<dl>
  <dt>Price</dt><dd>{{.Price}}</dd>
  <dt>Change</dt><dd>{{.Change}}</dd>
  <dt>Percent</dt><dd>{{.Percent}}</dd>
</dl>
{{end}}
</body>
</html>`

// SetupRouter wires the web form UI and the JSON API onto one gin engine.
func SetupRouter(svc service.Service, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogging(logger))
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexTemplate)))

	h := NewHandler(svc)
	r.GET("/", h.Index)
	r.GET("/quote", h.GetQuote)

	jsonAPI := httptransport.NewHTTPHandler(endpoint.MakeEndpoints(svc), logger)
	r.GET("/api/v1/quote", gin.WrapH(jsonAPI))
	r.GET("/health", gin.WrapH(jsonAPI))

	return r
}
