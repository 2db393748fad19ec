// Package docs holds the OpenAPI document for the quiz API.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Root"],
                "summary": "Service metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.RootResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}}
                }
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "Question statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatsResponse"}}
                }
            }
        },
        "/api/questions": {
            "get": {
                "description": "Returns all questions in bank order. Answers are omitted; use the submit endpoint to check them.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/api.QuestionResponse"}}}
                }
            }
        },
        "/api/questions/random": {
            "get": {
                "description": "Picks a question ID uniformly at random on every call.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get a random question",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.QuestionResponse"}}
                }
            }
        },
        "/api/questions/{questionID}": {
            "get": {
                "description": "Returns the question with the given zero-based ID, without the answer.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID (0 to total_questions-1)", "name": "questionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.QuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/api/questions/{questionID}/detail": {
            "get": {
                "description": "Includes the correct answer and explanation. Intended for internal use.",
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get question details",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "questionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.QuestionDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/api/quiz/submit": {
            "post": {
                "description": "Checks the chosen option and returns the correct answer with its explanation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Quiz"],
                "summary": "Submit an answer",
                "parameters": [
                    {"description": "Answer to check", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SubmitAnswerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AnswerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.AnswerResponse": {
            "type": "object",
            "properties": {
                "correct_answer": {"type": "string", "example": "c"},
                "correct_answer_text": {"type": "string", "example": ".py"},
                "explanation": {"type": "string", "example": ".py is the standard extension for Python source files."},
                "is_correct": {"type": "boolean", "example": true}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "Question with ID 99 not found. Available IDs: 0-4"},
                "field": {"type": "string", "example": "answer"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "API is running"},
                "status": {"type": "string", "example": "healthy"}
            }
        },
        "api.QuestionDetailResponse": {
            "type": "object",
            "properties": {
                "correct_option_key": {"type": "string", "example": "c"},
                "explanation": {"type": "string", "example": ".py is the standard extension for Python source files."},
                "id": {"type": "integer", "example": 0},
                "options": {"type": "array", "items": {"type": "string"}},
                "question_text": {"type": "string", "example": "What is the correct file extension for Python files?"}
            }
        },
        "api.QuestionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 0},
                "options": {"type": "array", "items": {"type": "string"}},
                "question_text": {"type": "string", "example": "What is the correct file extension for Python files?"}
            }
        },
        "api.RootResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string", "example": "Python Quiz API"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "api.StatsResponse": {
            "type": "object",
            "properties": {
                "total_questions": {"type": "integer", "example": 5}
            }
        },
        "api.SubmitAnswerRequest": {
            "type": "object",
            "required": ["answer", "question_id"],
            "properties": {
                "answer": {"type": "string", "pattern": "^[a-d]$", "example": "c"},
                "question_id": {"type": "integer", "minimum": 0, "example": 0}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Python Quiz API",
	Description:      "REST API for Python beginner-level quiz questions",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
