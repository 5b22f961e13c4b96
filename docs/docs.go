// Package docs serves the Swagger document for the handlers carrying swag
// annotations. It is maintained by hand in the layout swag emits; update it
// together with any @Router annotation.
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
        "/admin/orders/{id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Move an order to a new status",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Target status", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/join": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["join"],
                "summary": "Apply to join the studio team",
                "parameters": [
                    {"description": "Application form", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.JoinRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.JoinResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Signed-in profile and role",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Edit name, phone and company",
                "parameters": [
                    {"description": "Profile fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders": {
            "post": {
                "description": "Public order form. A bearer token links the order to the caller.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Submit an order",
                "parameters": [
                    {"description": "Order form", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders/me": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List the caller's orders",
                "parameters": [
                    {"type": "string", "description": "all|pending|working|delivered|cancelled", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OrderListResponse"}}
                }
            }
        },
        "/orders/{id}/review": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Review a delivered order",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Rating 1-5 and text", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ReviewResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders/{id}/timeline": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Order status timeline",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.TimelineResponse"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "request.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "budget": {"type": "string"},
                "deadline": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "project_description": {"type": "string"},
                "raw_file_link": {"type": "string"},
                "service_type": {"type": "string"},
                "whatsapp": {"type": "string"}
            }
        },
        "request.JoinRequest": {
            "type": "object",
            "required": ["device", "durability", "email", "full_name", "phone", "position", "software", "why_join"],
            "properties": {
                "device": {"type": "string"},
                "durability": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "phone": {"type": "string"},
                "portfolio": {"type": "string"},
                "position": {"type": "string"},
                "software": {"type": "string"},
                "why_join": {"type": "string"}
            }
        },
        "request.ReviewRequest": {
            "type": "object",
            "required": ["rating"],
            "properties": {
                "rating": {"type": "integer"},
                "review": {"type": "string"}
            }
        },
        "request.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "note": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "request.UpdateProfileRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "company": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "response.JoinResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.MeResponse": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "display_name": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "is_admin": {"type": "boolean"},
                "phone": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "response.OrderListResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "orders": {"type": "array", "items": {"$ref": "#/definitions/response.OrderResponse"}},
                "status": {"type": "string"}
            }
        },
        "response.OrderResponse": {
            "type": "object",
            "properties": {
                "budget": {"type": "string"},
                "created_at": {"type": "string"},
                "deadline": {"type": "string"},
                "delivered_at": {"type": "string"},
                "download_urls": {"type": "array", "items": {"type": "string"}},
                "file_urls": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "price": {"type": "string"},
                "project_description": {"type": "string"},
                "raw_file_link": {"type": "string"},
                "service_type": {"type": "string"},
                "status": {"type": "string"},
                "status_history": {"type": "array", "items": {"$ref": "#/definitions/response.StatusHistoryResponse"}},
                "status_label": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_email": {"type": "string"},
                "user_id": {"type": "string"},
                "user_name": {"type": "string"},
                "user_whatsapp": {"type": "string"}
            }
        },
        "response.ReviewResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "order_id": {"type": "string"},
                "rating": {"type": "integer"},
                "review": {"type": "string"},
                "service_type": {"type": "string"},
                "user_name": {"type": "string"}
            }
        },
        "response.StatusHistoryResponse": {
            "type": "object",
            "properties": {
                "note": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "updated_by": {"type": "string"},
                "updated_by_name": {"type": "string"}
            }
        },
        "response.TimelineResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/timeline.Entry"}},
                "order_id": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "timeline.Entry": {
            "type": "object",
            "properties": {
                "formatted_time": {"type": "string"},
                "is_current": {"type": "boolean"},
                "label": {"type": "string"},
                "note": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "updated_by": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "M2 Studio Orders API",
	Description:      "Order portal for M2 Studio: submissions, status lifecycle, deliverables, chat, reviews and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
