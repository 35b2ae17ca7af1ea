package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

var swaggerPage = template.Must(template.New("swagger").Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "{{.DocURL}}",
                dom_id: '#swagger-ui',
                deepLinking: true,
                requestInterceptor: (request) => {
                    request.headers['X-Request-ID'] = request.headers['X-Request-ID'] || crypto.randomUUID();
                    return request;
                }
            });
        };
    </script>
</body>
</html>
`))

// SwaggerUI serves a standalone Swagger UI page that tags each "try it out"
// call with a request ID.
func SwaggerUI(docURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		swaggerPage.Execute(c.Writer, map[string]string{
			"Title":  "AgriSync API Documentation",
			"DocURL": docURL,
		})
	}
}
