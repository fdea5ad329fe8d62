package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>resumecraft — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the resume endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "resumecraft-api", "version": "v0.1.0" },
  "paths": {
    "/api/resumes": {
      "get": { "summary": "List the caller's resumes", "responses": { "200": { "description": "resume summaries" } } },
      "post": {
        "summary": "Create a resume",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"document":{"type":"object"}}}}}},
        "responses": { "201": { "description": "created resume" } }
      }
    },
    "/api/resumes/{id}": {
      "get": { "summary": "Get a resume with its full document", "responses": { "200": { "description": "resume" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a resume's document", "responses": { "200": { "description": "updated resume" } } },
      "delete": { "summary": "Delete a resume", "responses": { "204": { "description": "deleted" } } }
    },
    "/api/resumes/{id}/sections/{section}": {
      "patch": { "summary": "Update one document section", "responses": { "200": { "description": "change flag" }, "400": { "description": "unknown section or bad payload" } } }
    },
    "/api/resumes/{id}/preview": {
      "get": { "summary": "Render the resume as HTML", "responses": { "200": { "description": "rendered page" } } }
    },
    "/api/resumes/{id}/export": {
      "post": { "summary": "Export the resume as a paginated A4 PDF", "responses": { "200": { "description": "PDF or download URL" }, "422": { "description": "validation errors" }, "502": { "description": "renderer failure" } } }
    },
    "/api/enhance": {
      "post": {
        "summary": "Rewrite text for a resume (remote with local fallback)",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"text":{"type":"string"}}}}}},
        "responses": { "200": { "description": "rewritten text" }, "400": { "description": "text too short" }, "429": { "description": "rate limited" } }
      }
    },
    "/api/draft": {
      "get": { "summary": "Load the session draft", "responses": { "200": { "description": "draft document" } } },
      "put": { "summary": "Save the session draft", "responses": { "200": { "description": "saved" } } },
      "delete": { "summary": "Discard the session draft", "responses": { "204": { "description": "discarded" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
