package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "TaskFlow API Documentation",
        "title": "TaskFlow API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "List of users"}
                }
            },
            "post": {
                "tags": ["users"],
                "summary": "Create a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "user",
                        "description": "User data",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "username": {"type": "string"},
                                "email": {"type": "string"},
                                "name": {"type": "string"},
                                "password": {"type": "string"},
                                "avatar": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created user"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get user by ID",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "User"},
                    "404": {"description": "User not found"}
                }
            },
            "put": {
                "tags": ["users"],
                "summary": "Update user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated user"},
                    "404": {"description": "User not found"}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete user",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deletion result"},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/teams": {
            "get": {
                "tags": ["teams"],
                "summary": "List teams",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "List of teams"}
                }
            },
            "post": {
                "tags": ["teams"],
                "summary": "Create a new team",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created team"},
                    "400": {"description": "Validation failed"}
                }
            }
        },
        "/teams/{id}/members": {
            "get": {
                "tags": ["teams"],
                "summary": "List team members",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Members with user records embedded"},
                    "404": {"description": "Team not found"}
                }
            },
            "post": {
                "tags": ["teams"],
                "summary": "Add a team member",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created membership"},
                    "404": {"description": "Team or user not found"}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "teamId", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "List of projects"}
                }
            },
            "post": {
                "tags": ["projects"],
                "summary": "Create a new project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created project"},
                    "404": {"description": "Team not found"}
                }
            }
        },
        "/projects/{id}/stats": {
            "get": {
                "tags": ["projects"],
                "summary": "Get project statistics",
                "description": "Task counters for a project, recomputed on every call",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Project statistics"},
                    "404": {"description": "Project not found"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["tasks"],
                "summary": "List tasks",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "projectId", "type": "integer", "required": false},
                    {"in": "query", "name": "assigneeId", "type": "integer", "required": false},
                    {"in": "query", "name": "status", "type": "string", "required": false}
                ],
                "responses": {
                    "200": {"description": "Tasks with assignee and creator embedded"}
                }
            },
            "post": {
                "tags": ["tasks"],
                "summary": "Create a new task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created task"},
                    "400": {"description": "Validation failed"},
                    "404": {"description": "Project, creator or assignee not found"}
                }
            }
        },
        "/tasks/{id}/comments": {
            "get": {
                "tags": ["tasks"],
                "summary": "List task comments",
                "description": "Comments oldest first with authors embedded",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "List of comments"},
                    "404": {"description": "Task not found"}
                }
            },
            "post": {
                "tags": ["tasks"],
                "summary": "Add a comment to a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created comment"},
                    "404": {"description": "Task or user not found"}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Get dashboard statistics",
                "description": "Project counts by status and the number of overdue tasks",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Dashboard overview"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "TaskFlow API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
