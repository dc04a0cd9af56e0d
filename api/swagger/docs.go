// Package swagger registers the OpenAPI document served at /swagger.
package swagger

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
        "/subjects/{class}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Get subjects by class",
                "parameters": [
                    {"type": "string", "name": "class", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/get-approved-user/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "Get approved user by email",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/students-request": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List pending student requests grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/instructors-request": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List pending instructor requests grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/approved-students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List approved students grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/approved-instructors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List approved instructors grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rejected-students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List rejected students grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rejected-instructors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["queries"],
                "summary": "List rejected instructors grouped by class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/get-current-students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List current students grouped by class, sorted by roll",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/get-instructor-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Instructor dashboard stats",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store Unavailable"}
                }
            }
        },
        "/get-admin-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Admin dashboard stats",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Store Unavailable"}
                }
            }
        },
        "/store-student-request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Submit student request",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation Failed"}
                }
            }
        },
        "/store-instructor-request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Submit instructor request",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation Failed"}
                }
            }
        },
        "/store-approved-student/{id}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Approve student request",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/store-approved-instructor": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Approve instructor request",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/store-current-student": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Store current student",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation Failed"}
                }
            }
        },
        "/update-current-student/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Merge fields into a current student",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/reject-student-request/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Reject student request",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/delete-instructor-request/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Reject instructor request",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/delete-rejected-student/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Permanently delete a rejected student",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/delete-approved-student/{email}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "Permanently delete an approved student and its user entry",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/delete-current-student/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Permanently delete a current student",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "School Management API",
	Description:      "HTTP API for the school-management request lifecycle: submissions, approvals, rejections, lookups and collection stats.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
