// Package docs registers the swagger spec for the Level Test API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/levels/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["levels"],
                "summary": "List active levels",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/start-session/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Start a test session",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/questions/{session_id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Questions for a session",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/submit-test/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Submit answers for grading",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/test-results/{session_id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Result for a session",
                "parameters": [
                    {"type": "string", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/statistics/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Aggregate statistics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/results/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Recent results",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Level Test API",
	Description:      "Language proficiency quiz platform with Telegram notifications",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
