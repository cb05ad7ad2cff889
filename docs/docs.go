// Package docs holds the Swagger document served at /swagger/index.html.
// Regenerate with `swag init` after changing handler annotations.
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
        "/jobs": {
            "get": {
                "tags": ["jobs"],
                "summary": "List open jobs",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "remote_level", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "Page of open jobs", "schema": {"$ref": "#/definitions/dto.JobListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Post a job for a company the caller owns",
                "parameters": [{"name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateJobRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.JobResponse"}},
                    "400": {"description": "Validation failed"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Company not owned by caller"},
                    "404": {"description": "Company not found"}
                }
            }
        },
        "/jobs/{id}": {
            "get": {
                "tags": ["jobs"],
                "summary": "Get an open job",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.JobResponse"}},
                    "404": {"description": "Missing or not open"}
                }
            }
        },
        "/jobs/{id}/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["job_applications"],
                "summary": "Apply to a job",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "success", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}},
                    "401": {"description": "not_authenticated", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}},
                    "409": {"description": "already_applied", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}},
                    "410": {"description": "job_unavailable", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}},
                    "422": {"description": "profile_incomplete", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}},
                    "429": {"description": "Rate limited"},
                    "502": {"description": "submission_failed", "schema": {"$ref": "#/definitions/dto.SubmitApplicationResponse"}}
                }
            }
        },
        "/jobs/{id}/apply-status": {
            "get": {
                "tags": ["job_applications"],
                "summary": "Apply button state",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ApplyStatusResponse"}}}
            }
        },
        "/applications/my": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["job_applications"],
                "summary": "List the caller's applications",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ApplicationResponse"}}}}
            }
        },
        "/applications/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["job_applications"],
                "summary": "Cancel an application",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "Cancelled"}, "404": {"description": "Not found or not owned"}}
            }
        },
        "/companies": {
            "get": {
                "tags": ["companies"],
                "summary": "List companies with open job counts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CompanyResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Create a company",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CompanyResponse"}}}
            }
        },
        "/companies/my": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "List the caller's companies",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CompanyResponse"}}}}
            }
        },
        "/companies/{id}": {
            "get": {
                "tags": ["companies"],
                "summary": "Get a company",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CompanyResponse"}}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["companies"],
                "summary": "Update a company the caller owns",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CompanyResponse"}}, "404": {"description": "Not found or not owned"}}
            }
        },
        "/companies/{id}/jobs": {
            "get": {
                "tags": ["jobs"],
                "summary": "List a company's jobs",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}}}}
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Get the caller's profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileResponse"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Create or update the caller's profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileResponse"}}}
            }
        },
        "/relay/job-application-email": {
            "post": {
                "tags": ["relay"],
                "summary": "Send the application confirmation mail",
                "responses": {
                    "200": {"description": "Email sent", "schema": {"$ref": "#/definitions/dto.RelayResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/dto.RelayResponse"}},
                    "500": {"description": "SMTP failure", "schema": {"$ref": "#/definitions/dto.RelayResponse"}}
                }
            }
        },
        "/relay/verification-email": {
            "post": {
                "tags": ["relay"],
                "summary": "Send the verification call mail",
                "responses": {
                    "200": {"description": "Email sent", "schema": {"$ref": "#/definitions/dto.RelayResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/dto.RelayResponse"}},
                    "500": {"description": "SMTP failure", "schema": {"$ref": "#/definitions/dto.RelayResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.JobResponse": {"type": "object"},
        "dto.JobListResponse": {
            "type": "object",
            "properties": {
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/dto.JobResponse"}},
                "total": {"type": "integer"},
                "has_more": {"type": "boolean"}
            }
        },
        "dto.CreateJobRequest": {"type": "object"},
        "dto.SubmitApplicationResponse": {
            "type": "object",
            "properties": {
                "outcome": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "apply_disabled": {"type": "boolean"},
                "application": {"$ref": "#/definitions/dto.ApplicationResponse"}
            }
        },
        "dto.ApplyStatusResponse": {
            "type": "object",
            "properties": {"job_id": {"type": "string"}, "apply_disabled": {"type": "boolean"}}
        },
        "dto.ApplicationResponse": {"type": "object"},
        "dto.CompanyResponse": {"type": "object"},
        "dto.ProfileResponse": {"type": "object"},
        "dto.RelayResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "messageId": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the identity provider access token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Remote Jobs API",
	Description:      "Job board and application workflow for remote positions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
