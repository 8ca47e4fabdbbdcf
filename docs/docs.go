// Package docs provides the generated OpenAPI specification served at
// /swagger/*. Regenerate with: swag init -g cmd/api/main.go
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/quotes": {
            "get": {
                "tags": ["quotes"],
                "summary": "List quotes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["quotes"],
                "summary": "Create a quote",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/quotes/random": {
            "get": {
                "tags": ["quotes"],
                "summary": "Get a random quote",
                "responses": {"200": {"description": "OK"}, "204": {"description": "The pool is empty"}}
            }
        },
        "/quotes/{id}": {
            "get": {
                "tags": ["quotes"],
                "summary": "Get a quote by id",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["quotes"],
                "summary": "Update a quote",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Updated"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["quotes"],
                "summary": "Delete a quote",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not Found"}}
            }
        },
        "/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["categories"],
                "summary": "Create a category",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/categories/{id}": {
            "get": {
                "tags": ["categories"],
                "summary": "Get a category by id",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["categories"],
                "summary": "Update a category",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Updated"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["categories"],
                "summary": "Delete a category",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "412": {"description": "Precondition Failed"}}
            }
        },
        "/suggestions": {
            "post": {
                "tags": ["suggestions"],
                "summary": "Submit a quote suggestion",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/suggestions/user": {
            "get": {
                "tags": ["suggestions"],
                "summary": "List the caller's suggestions",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/suggestions/user/random": {
            "get": {
                "tags": ["suggestions"],
                "summary": "Get a random suggestion of the caller's own",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "204": {"description": "No suggestions"}}
            }
        },
        "/suggestions/admin/all": {
            "get": {
                "tags": ["suggestions"],
                "summary": "List all suggestions for moderation",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/suggestions/{id}/approve": {
            "post": {
                "tags": ["suggestions"],
                "summary": "Approve a suggestion",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/suggestions/{id}/reject": {
            "post": {
                "tags": ["suggestions"],
                "summary": "Reject a suggestion",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Rejected"}, "409": {"description": "Conflict"}}
            }
        },
        "/likes": {
            "post": {
                "tags": ["likes"],
                "summary": "Like a quote",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/likes/user": {
            "get": {
                "tags": ["likes"],
                "summary": "List the caller's liked quotes",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/likes/user/{quote_id}": {
            "get": {
                "tags": ["likes"],
                "summary": "Check whether the caller liked a quote",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/likes/{quote_id}": {
            "delete": {
                "tags": ["likes"],
                "summary": "Remove a like",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "Unliked"}, "404": {"description": "Not Found"}}
            }
        },
        "/ai-quotes": {
            "post": {
                "tags": ["ai"],
                "summary": "Generate a quote with AI",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quotify API",
	Description:      "Quote sharing service with random selection, community suggestions, moderation and likes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
