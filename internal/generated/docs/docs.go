// Package docs registers the Swagger 2.0 description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/shipment/{id}": {
            "get": {
                "produces": ["application/json", "text/plain"],
                "summary": "Current state of one shipment",
                "parameters": [
                    {"type": "string", "description": "Shipment identifier", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/servers.Shipment"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        },
        "/subscribe": {
            "get": {
                "produces": ["text/event-stream"],
                "summary": "Stream changed shipment identifiers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/update": {
            "post": {
                "consumes": ["text/plain"],
                "produces": ["text/plain"],
                "summary": "Submit one event record",
                "parameters": [
                    {"description": "timestamp,id,operation[,args...]", "name": "record", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "406": {"description": "Not Acceptable", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "servers.Shipment": {
            "type": "object",
            "properties": {
                "expectedDelivery": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "notes": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "type": {"type": "string"},
                "updates": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shipment Tracking API",
	Description:      "Accepts shipment lifecycle events and serves current shipment state.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
